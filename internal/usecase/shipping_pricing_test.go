package usecase

import (
	"context"
	"math"
	"testing"

	"atuestampa_api/internal/domain/entities"
)

func TestFixedShippingPricingProvider(t *testing.T) {
	t.Run("configured amount", func(t *testing.T) {
		p := NewFixedShippingPricingProvider(15000, "COP")
		quote, err := p.GetQuote(context.Background(), entities.ShippingQuoteQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Amount != 15000 || quote.Currency != "COP" || quote.Provider != "fixed-default" {
			t.Fatalf("unexpected quote: %+v", quote)
		}
	})

	t.Run("invalid amounts fall back to the flat default", func(t *testing.T) {
		for _, amount := range []float64{math.NaN(), math.Inf(1), -1} {
			p := NewFixedShippingPricingProvider(amount, "")
			quote, _ := p.GetQuote(context.Background(), entities.ShippingQuoteQuery{})
			if quote.Amount != 20000 || quote.Currency != "COP" {
				t.Fatalf("amount %v: unexpected quote %+v", amount, quote)
			}
		}
	})
}
