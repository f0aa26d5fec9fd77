package payment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingSecretKey means the server-side credential was never configured.
// Distinct from a provider rejection so callers can report a 500, not a 4xx.
var ErrMissingSecretKey = errors.New("payment secret key is not configured")

// ProviderError carries the provider's status code and raw error payload.
// Code and Message are kept verbatim; duplicate detection depends on them.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("toss error (%d %s): %s", e.StatusCode, e.Code, e.Message)
}

// UserMessage returns the short localized text shown to the end user.
func (e *ProviderError) UserMessage() string {
	if e.StatusCode == 401 || e.StatusCode == 403 ||
		e.Code == "UNAUTHORIZED_KEY" || e.Code == "INVALID_API_KEY" {
		return "결제 API 키가 유효하지 않습니다. 관리자에게 문의하세요."
	}
	if e.Message != "" {
		return e.Message
	}
	return "결제 승인에 실패했습니다."
}

// Known already-processed signals: the dedicated error code, plus the S008
// code and the "기존 요청" phrasing Toss embeds in retried-confirmation
// messages.
var duplicateSubstrings = []string{"S008", "기존 요청"}

// IsDuplicate reports whether err is the provider telling us the payment was
// already confirmed. Callers recover this case as success.
func IsDuplicate(err error) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return false
	}
	if pe.Code == "ALREADY_PROCESSED_PAYMENT" {
		return true
	}
	for _, s := range duplicateSubstrings {
		if strings.Contains(pe.Message, s) {
			return true
		}
	}
	return false
}
