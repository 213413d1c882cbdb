package response

import (
	"time"

	"atuestampa_api/internal/domain/entities"
)

type CustomerResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ShippingResponse struct {
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

type TotalsResponse struct {
	Subtotal  float64  `json:"subtotal"`
	Shipping  float64  `json:"shipping"`
	Total     float64  `json:"total"`
	Currency  string   `json:"currency"`
	TotalPaid *float64 `json:"totalPaid,omitempty"`
}

type OrderItemResponse struct {
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

type PaymentResponse struct {
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

type OrderResponse struct {
	ID              string              `json:"id"`
	Status          string              `json:"status"`
	PaymentProvider string              `json:"paymentProvider"`
	Customer        CustomerResponse    `json:"customer"`
	Shipping        ShippingResponse    `json:"shipping"`
	Totals          TotalsResponse      `json:"totals"`
	Items           []OrderItemResponse `json:"items"`
	Payment         *PaymentResponse    `json:"payment,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type CheckoutResponse struct {
	OrderID     string `json:"orderId"`
	CheckoutURL string `json:"checkoutUrl"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Description: item.Description,
			Image:       item.Image,
			Category:    item.Category,
			Size:        item.Size,
			Gender:      item.Gender,
		})
	}

	resp := OrderResponse{
		ID:              o.ID,
		Status:          string(o.Status),
		PaymentProvider: o.PaymentProvider,
		Customer: CustomerResponse{
			FirstName: o.Customer.FirstName,
			LastName:  o.Customer.LastName,
			Email:     o.Customer.Email,
			Phone:     o.Customer.Phone,
		},
		Shipping: ShippingResponse{
			Country:         o.Shipping.Country,
			CountryCode:     o.Shipping.CountryCode,
			Department:      o.Shipping.Department,
			DepartmentCode:  o.Shipping.DepartmentCode,
			City:            o.Shipping.City,
			CityCode:        o.Shipping.CityCode,
			Address:         o.Shipping.Address,
			PostalCode:      o.Shipping.PostalCode,
			Cost:            o.Shipping.Cost,
			Currency:        o.Shipping.Currency,
			PricingProvider: o.Shipping.PricingProvider,
		},
		Totals: TotalsResponse{
			Subtotal:  o.Totals.Subtotal,
			Shipping:  o.Totals.Shipping,
			Total:     o.Totals.Total,
			Currency:  o.Totals.Currency,
			TotalPaid: o.Totals.TotalPaid,
		},
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if o.Payment != nil {
		resp.Payment = &PaymentResponse{
			Provider:          o.Payment.Provider,
			PreferenceID:      o.Payment.PreferenceID,
			InitPoint:         o.Payment.InitPoint,
			Status:            o.Payment.Status,
			PaymentID:         o.Payment.PaymentID,
			StatusDetail:      o.Payment.StatusDetail,
			PaidAt:            o.Payment.PaidAt,
			TransactionAmount: o.Payment.TransactionAmount,
			Currency:          o.Payment.Currency,
		}
	}

	return resp
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
