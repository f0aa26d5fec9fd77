package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"redmedicos-be/internal/order"
	"redmedicos-be/internal/product"
	"redmedicos-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type checkoutRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handlers) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		utils.WriteJSONError(w, "상품을 선택해주세요", http.StatusBadRequest)
		return
	}

	c, err := h.Orders.PrepareCheckout(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			utils.WriteJSONError(w, "상품을 찾을 수 없습니다", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "주문 준비에 실패했습니다", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.GetOrders(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "주문 목록을 불러오지 못했습니다", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handlers) listMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	orders, err := h.Orders.GetUserOrders(r.Context(), userID)
	if err != nil {
		utils.WriteJSONError(w, "주문 목록을 불러오지 못했습니다", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handlers) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}

	err := h.Orders.UpdateStatus(r.Context(), orderID, order.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			utils.WriteJSONError(w, "유효하지 않은 주문 상태입니다", http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			utils.WriteJSONError(w, "주문을 찾을 수 없습니다", http.StatusNotFound)
		default:
			utils.WriteJSONError(w, "주문 상태 변경에 실패했습니다", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"id": orderID, "status": req.Status})
}
