package entities

import "time"

// OrderStatus represents the lifecycle of a storefront order.
//
// Domain notes:
//   - checkout_created is the only initial status; every other status is
//     reached through a webhook-driven transition (see payment usecase).
//   - payment_pending may still transition on a later webhook delivery.

type OrderStatus string

const (
	OrderStatusCheckoutCreated OrderStatus = "checkout_created"
	OrderStatusPaid            OrderStatus = "paid"
	OrderStatusPaymentPending  OrderStatus = "payment_pending"
	OrderStatusPaymentFailed   OrderStatus = "payment_failed"
	OrderStatusPaymentUnknown  OrderStatus = "payment_unknown"
)

// Customer holds buyer contact data. Immutable after order creation.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ShippingInfo snapshots the resolved shipping selection and its quoted cost.
// Cost is authoritative from the shipping quote, never mutated afterward.
type ShippingInfo struct {
	Country         string  `json:"country"`
	CountryCode     string  `json:"countryCode"`
	Department      string  `json:"department"`
	DepartmentCode  string  `json:"departmentCode"`
	City            string  `json:"city"`
	CityCode        string  `json:"cityCode"`
	Address         string  `json:"address,omitempty"`
	PostalCode      string  `json:"postalCode,omitempty"`
	Cost            float64 `json:"cost"`
	Currency        string  `json:"currency"`
	PricingProvider string  `json:"pricingProvider"`
}

// Totals are computed at checkout. TotalPaid is appended only on confirmed
// payment, with the amount reported by the gateway.
type Totals struct {
	Subtotal  float64  `json:"subtotal"`
	Shipping  float64  `json:"shipping"`
	Total     float64  `json:"total"`
	Currency  string   `json:"currency"`
	TotalPaid *float64 `json:"totalPaid,omitempty"`
}

// OrderItem is a checkout line item. Price and quantity are re-coerced to
// numeric types at the request boundary since the originating cart payload is
// untrusted.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Size        string  `json:"size,omitempty"`
	Gender      string  `json:"gender,omitempty"`
}

// PaymentInfo carries gateway correlation data. It is populated in two stages:
// preference linkage right after order creation, then the settlement outcome
// when the webhook is processed.
type PaymentInfo struct {
	Provider          string     `json:"provider"`
	PreferenceID      string     `json:"preferenceId,omitempty"`
	InitPoint         string     `json:"initPoint,omitempty"`
	Status            string     `json:"status,omitempty"`
	PaymentID         string     `json:"paymentId,omitempty"`
	StatusDetail      string     `json:"statusDetail,omitempty"`
	PaidAt            *time.Time `json:"paidAt,omitempty"`
	TransactionAmount *float64   `json:"transactionAmount,omitempty"`
	Currency          string     `json:"currency,omitempty"`
}

// Order is the aggregate root persisted by the storefront.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The id doubles as the external_reference handed to the payment gateway, so
// lookup-by-external-reference is an exact match on id.
type Order struct {
	ID              string       `json:"id"`
	Status          OrderStatus  `json:"status"`
	PaymentProvider string       `json:"paymentProvider"`
	Customer        Customer     `json:"customer"`
	Shipping        ShippingInfo `json:"shipping"`
	Totals          Totals       `json:"totals"`
	Items           []OrderItem  `json:"items"`
	Payment         *PaymentInfo `json:"payment,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}
