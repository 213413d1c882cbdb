package request

// WebhookBody is the body Mercado Pago POSTs on webhook deliveries. Topic and
// payment id may arrive in the query string instead, so every field is
// optional here.
type WebhookBody struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ConfirmPaymentRequest is the manual reconciliation payload.
type ConfirmPaymentRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
}
