package interfaces

import (
	"context"

	"atuestampa_api/internal/domain/entities"
)

// IShippingPricingProvider computes the shipping price for an already
// validated location selection. Pluggable so a carrier-backed provider can
// replace the fixed-price one without touching the quoting flow.
type IShippingPricingProvider interface {
	GetQuote(ctx context.Context, query entities.ShippingQuoteQuery) (entities.ShippingPricingQuote, error)
}
