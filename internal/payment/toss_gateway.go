package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"redmedicos-be/internal/logger"

	"go.uber.org/zap"
)

const (
	tossBaseURL = "https://api.tosspayments.com"
	confirmPath = "/v1/payments/confirm"
)

type tossGateway struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

func NewTossGateway(secretKey string) Gateway {
	if secretKey == "" {
		logger.L().Warn("Toss secret key is empty")
	}

	return &tossGateway{
		secretKey: secretKey,
		baseURL:   tossBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ----------------- Confirm -----------------

type tossConfirmResponse struct {
	OrderID     string `json:"orderId"`
	OrderName   string `json:"orderName"`
	TotalAmount int64  `json:"totalAmount"`
	Method      string `json:"method"`
	ApprovedAt  string `json:"approvedAt"`
}

type tossErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (t *tossGateway) Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (*Approval, error) {
	if t.secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	log := logger.L().With(
		zap.String("order_id", orderID),
		zap.Int64("amount", amount),
	)

	body := map[string]interface{}{
		"paymentKey": paymentKey,
		"orderId":    orderID,
		"amount":     amount,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal confirm request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", t.baseURL+confirmPath, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	// Toss authenticates with basic auth: base64(secretKey + ":").
	req.SetBasicAuth(t.secretKey, "")
	req.Header.Add("Content-Type", "application/json")

	log.Info("Sending confirm request to Toss")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		log.Error("Toss request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read toss response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var fail tossErrorResponse
		_ = json.Unmarshal(bodyBytes, &fail)

		log.Error("Toss returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("code", fail.Code),
			zap.String("provider_message", fail.Message),
		)
		return nil, &ProviderError{
			StatusCode: resp.StatusCode,
			Code:       fail.Code,
			Message:    fail.Message,
		}
	}

	var res tossConfirmResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Toss response", zap.Error(err))
		return nil, err
	}

	log.Info("Toss payment confirmed",
		zap.String("order_name", res.OrderName),
		zap.String("method", res.Method),
		zap.String("approved_at", res.ApprovedAt),
	)

	return &Approval{
		OrderID:     res.OrderID,
		OrderName:   res.OrderName,
		TotalAmount: res.TotalAmount,
		Method:      res.Method,
		ApprovedAt:  res.ApprovedAt,
	}, nil
}
