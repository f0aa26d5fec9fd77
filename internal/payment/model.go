package payment

// Approval is the normalized result of a successful confirmation call.
type Approval struct {
	OrderID     string `json:"orderId"`
	OrderName   string `json:"orderName"`
	TotalAmount int64  `json:"totalAmount"`
	Method      string `json:"method"`
	ApprovedAt  string `json:"approvedAt"`
}
