package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"redmedicos-be/internal/logger"
	"redmedicos-be/internal/order"
	"redmedicos-be/internal/payment"
	"redmedicos-be/internal/utils"

	"go.uber.org/zap"
)

type confirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

// confirmPayment proxies a confirmation straight to the gateway without
// touching the order store. The storefront uses it when it manages orders
// itself and only needs the server-held credential.
func (h *Handlers) confirmPayment(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}
	if req.PaymentKey == "" || req.OrderID == "" || req.Amount <= 0 {
		utils.WriteJSONError(w, "필수 결제 정보가 누락되었습니다", http.StatusBadRequest)
		return
	}

	approval, err := h.Gateway.Confirm(r.Context(), req.PaymentKey, req.OrderID, req.Amount)
	if err != nil {
		writePaymentError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, approval)
}

type reconcileRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
}

type reconcileResponse struct {
	Outcome string       `json:"outcome"`
	Order   *order.Order `json:"order,omitempty"`
}

// reconcilePayment runs the success-redirect flow: confirm with the
// provider if needed and make sure exactly one order row exists.
func (h *Handlers) reconcilePayment(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}

	in := order.ReconcileInput{
		PaymentKey: req.PaymentKey,
		OrderID:    req.OrderID,
		Amount:     req.Amount,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	}
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		in.UserID = userID
		in.UserEmail = utils.GetUserEmailFromContext(r.Context())
	}

	result, err := h.Orders.Reconcile(r.Context(), in)
	if err != nil {
		if errors.Is(err, order.ErrMissingParameters) {
			utils.WriteJSONError(w, "필수 결제 정보가 누락되었습니다", http.StatusBadRequest)
			return
		}
		writePaymentError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, reconcileResponse{
		Outcome: string(result.Outcome),
		Order:   result.Order,
	})
}

// writePaymentError maps gateway failures to responses without ever leaking
// the credential or the raw provider payload beyond its message.
func writePaymentError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromCtx(r.Context())

	if errors.Is(err, payment.ErrMissingSecretKey) {
		log.Error("payment secret key is not configured")
		utils.WriteJSONError(w, "결제 설정 오류입니다. 관리자에게 문의하세요.", http.StatusInternalServerError)
		return
	}

	var pe *payment.ProviderError
	if errors.As(err, &pe) {
		status := pe.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		log.Warn("gateway rejected confirmation",
			zap.Int("provider_status", pe.StatusCode),
			zap.String("provider_code", pe.Code),
		)
		utils.WriteJSONError(w, pe.UserMessage(), status)
		return
	}

	log.Error("payment confirmation failed", zap.Error(err))
	utils.WriteJSONError(w, "결제 승인 중 오류가 발생했습니다", http.StatusBadGateway)
}
