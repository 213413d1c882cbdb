package entities

import "time"

// PaymentProviderMercadoPago tags orders owned by the Mercado Pago
// integration. Modeled as data so a second gateway can coexist later.
const PaymentProviderMercadoPago = "mercadopago"

// CheckoutPreference is the gateway-issued redirectable checkout session.
type CheckoutPreference struct {
	ID        string `json:"id"`
	InitPoint string `json:"initPoint"`
}

// PreferenceOrder is what the gateway needs to build a preference for an
// order: the order id travels as external_reference so the later webhook can
// round-trip back to the order.
type PreferenceOrder struct {
	OrderID      string
	Customer     Customer
	Items        []OrderItem
	ShippingCost float64
}

// PaymentRecord is the authoritative settlement record fetched from the
// gateway, kept in the gateway's own vocabulary. Status mapping into
// OrderStatus happens in the payment usecase.
type PaymentRecord struct {
	ID                string     `json:"id"`
	ExternalReference string     `json:"external_reference"`
	Status            string     `json:"status"`
	StatusDetail      string     `json:"status_detail"`
	DateApproved      *time.Time `json:"date_approved,omitempty"`
	TransactionAmount float64    `json:"transaction_amount"`
	CurrencyID        string     `json:"currency_id"`
}
