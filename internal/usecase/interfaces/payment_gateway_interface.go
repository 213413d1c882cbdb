package interfaces

import (
	"context"

	"atuestampa_api/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePreference opens a redirectable checkout session carrying the order id
// as external_reference. GetPaymentByID fetches the authoritative settlement
// record for a webhook-reported payment id.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, order entities.PreferenceOrder) (entities.CheckoutPreference, error)
	GetPaymentByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error)
}
