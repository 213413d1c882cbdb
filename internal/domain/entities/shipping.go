package entities

import "time"

// LocationRef is a resolved code/name pair inside a shipping quote.
type LocationRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ShippingQuoteQuery is the normalized location selection a quote is computed
// for.
type ShippingQuoteQuery struct {
	CountryCode    string `json:"countryCode"`
	DepartmentCode string `json:"departmentCode"`
	CityCode       string `json:"cityCode"`
}

// ShippingPricingQuote is what a pricing provider answers for a validated
// location selection.
type ShippingPricingQuote struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Provider string  `json:"provider"`
}

// ShippingQuote is a value object produced fresh on every request; orders
// snapshot it into their shipping/totals instead of referencing it live.
type ShippingQuote struct {
	Country      LocationRef `json:"country"`
	Department   LocationRef `json:"department"`
	City         LocationRef `json:"city"`
	Amount       float64     `json:"amount"`
	Currency     string      `json:"currency"`
	Provider     string      `json:"provider"`
	CalculatedAt time.Time   `json:"calculatedAt"`
}
