package usecase

import (
	"context"
	"math"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"
)

const (
	defaultShippingCostCOP  = 20000
	fixedPricingProviderTag = "fixed-default"
)

// FixedShippingPricingProvider prices every validated selection at one
// configured flat amount, independent of the resolved location. It is the
// reference IShippingPricingProvider until a carrier integration exists.
type FixedShippingPricingProvider struct {
	amount   float64
	currency string
}

var _ interfaces.IShippingPricingProvider = (*FixedShippingPricingProvider)(nil)

// NewFixedShippingPricingProvider guards the configured amount: non-finite or
// negative values fall back to the default flat rate.
func NewFixedShippingPricingProvider(amount float64, currency string) *FixedShippingPricingProvider {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = defaultShippingCostCOP
	}
	if currency == "" {
		currency = "COP"
	}
	return &FixedShippingPricingProvider{amount: amount, currency: currency}
}

func (p *FixedShippingPricingProvider) GetQuote(_ context.Context, _ entities.ShippingQuoteQuery) (entities.ShippingPricingQuote, error) {
	return entities.ShippingPricingQuote{
		Amount:   p.amount,
		Currency: p.currency,
		Provider: fixedPricingProviderTag,
	}, nil
}
