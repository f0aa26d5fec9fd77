package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCompleted:
		return true
	}
	return false
}

// Order is created exactly once by the reconciliation flow (or an admin
// backfill); afterwards only Status changes. ID doubles as the payment
// provider's order reference and the idempotency key.
type Order struct {
	ID         string    `json:"id"`
	UserID     uint      `json:"userId"`
	UserEmail  *string   `json:"userEmail,omitempty"`
	ProductID  string    `json:"productId"`
	Quantity   int       `json:"quantity"`
	Amount     int64     `json:"amount"`
	Status     Status    `json:"status"`
	PaymentKey string    `json:"paymentKey"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Checkout is what the storefront needs before handing off to the provider
// SDK: a fresh order id and the server-computed total.
type Checkout struct {
	OrderID   string `json:"orderId"`
	OrderName string `json:"orderName"`
	Amount    int64  `json:"amount"`
	Quantity  int    `json:"quantity"`
}
