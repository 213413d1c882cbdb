package response

import (
	"time"

	"atuestampa_api/internal/domain/entities"
)

type LocationRefResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ShippingQuoteResponse struct {
	Country      LocationRefResponse `json:"country"`
	Department   LocationRefResponse `json:"department"`
	City         LocationRefResponse `json:"city"`
	Amount       float64             `json:"amount"`
	Currency     string              `json:"currency"`
	Provider     string              `json:"provider"`
	CalculatedAt time.Time           `json:"calculatedAt"`
}

func FromShippingQuote(q entities.ShippingQuote) ShippingQuoteResponse {
	return ShippingQuoteResponse{
		Country:      LocationRefResponse{Code: q.Country.Code, Name: q.Country.Name},
		Department:   LocationRefResponse{Code: q.Department.Code, Name: q.Department.Name},
		City:         LocationRefResponse{Code: q.City.Code, Name: q.City.Name},
		Amount:       q.Amount,
		Currency:     q.Currency,
		Provider:     q.Provider,
		CalculatedAt: q.CalculatedAt,
	}
}
