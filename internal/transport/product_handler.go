package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"redmedicos-be/internal/product"
	"redmedicos-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.GetAll(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "상품 목록을 불러오지 못했습니다", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *Handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.Products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			utils.WriteJSONError(w, "상품을 찾을 수 없습니다", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "상품 조회에 실패했습니다", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handlers) createProduct(w http.ResponseWriter, r *http.Request) {
	var in product.UpsertInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}

	p, err := h.Products.Create(r.Context(), in)
	if err != nil {
		writeProductError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handlers) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in product.UpsertInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}

	p, err := h.Products.Update(r.Context(), id, in)
	if err != nil {
		writeProductError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handlers) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Products.Delete(r.Context(), id); err != nil {
		writeProductError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}

func writeProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		utils.WriteJSONError(w, "상품을 찾을 수 없습니다", http.StatusNotFound)
	case errors.Is(err, product.ErrInvalidProduct), errors.Is(err, product.ErrInvalidCategory):
		utils.WriteJSONError(w, "상품 정보가 올바르지 않습니다", http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "상품 처리에 실패했습니다", http.StatusInternalServerError)
	}
}
