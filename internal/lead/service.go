package lead

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"redmedicos-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingFields        = errors.New("name and phone are required")
	ErrPrivacyRequired      = errors.New("privacy consent is required")
	ErrWebhookNotConfigured = errors.New("lead webhook url is not configured")
)

type Service interface {
	Submit(ctx context.Context, l Lead) (string, error)
}

type service struct {
	webhookURL string
	httpClient *http.Client
}

func NewService(webhookURL string) Service {
	if webhookURL == "" {
		logger.L().Warn("lead webhook URL is empty")
	}

	return &service{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Submit validates the form and forwards it to the spreadsheet webhook as a
// URL-encoded POST. Fire and forget: the webhook's response body is not
// parsed and a delivery failure is logged, not surfaced to the visitor.
func (s *service) Submit(ctx context.Context, l Lead) (string, error) {
	if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.Phone) == "" {
		return "", ErrMissingFields
	}
	if !l.Privacy {
		return "", ErrPrivacyRequired
	}
	if s.webhookURL == "" {
		return "", ErrWebhookNotConfigured
	}

	submissionID := uuid.NewString()
	log := logger.FromCtx(ctx).With(
		zap.String("submission_id", submissionID),
		zap.String("name", l.Name),
	)

	params := url.Values{}
	params.Set("name", l.Name)
	params.Set("phone", l.Phone)
	params.Set("email", l.Email)
	params.Set("categories", strings.Join(l.Categories, ", "))
	params.Set("quantity", l.Quantity)
	params.Set("message", l.Message)
	if l.Privacy {
		params.Set("privacy", "Y")
	} else {
		params.Set("privacy", "N")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.webhookURL, strings.NewReader(params.Encode()))
	if err != nil {
		log.Error("failed building webhook request", zap.Error(err))
		return submissionID, nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Warn("lead webhook delivery failed", zap.Error(err))
		return submissionID, nil
	}
	defer resp.Body.Close()

	log.Info("lead forwarded", zap.Int("webhook_status", resp.StatusCode))
	return submissionID, nil
}
