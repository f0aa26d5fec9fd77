package payment

import "context"

// Gateway approves an authorized charge server-side. The secret credential
// stays inside the implementation and is never echoed back to callers.
type Gateway interface {
	Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (*Approval, error)
}
