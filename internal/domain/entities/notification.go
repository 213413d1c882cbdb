package entities

// PaidOrderNotificationItem is a line-item summary inside a paid-order
// notification.
type PaidOrderNotificationItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// PaidOrderNotification is the channel-agnostic payload handed to every
// registered notification adapter when an order transitions to paid.
type PaidOrderNotification struct {
	OrderID         string                      `json:"orderId"`
	CustomerName    string                      `json:"customerName"`
	CustomerPhone   string                      `json:"customerPhone,omitempty"`
	CustomerEmail   string                      `json:"customerEmail,omitempty"`
	ShippingAddress string                      `json:"shippingAddress"`
	Department      string                      `json:"department"`
	City            string                      `json:"city"`
	Country         string                      `json:"country"`
	ShippingCost    float64                     `json:"shippingCost"`
	TotalPaid       float64                     `json:"totalPaid"`
	Currency        string                      `json:"currency"`
	Items           []PaidOrderNotificationItem `json:"items"`
}
