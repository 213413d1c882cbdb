package request

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase"
)

var (
	ErrInvalidItemPrice    = errors.New("invalid item price")
	ErrInvalidItemQuantity = errors.New("invalid item quantity")
)

// FlexNumber accepts both JSON numbers and numeric strings. Cart payloads come
// from an untrusted client that sometimes serializes prices as strings, so the
// boundary re-coerces instead of trusting the wire type.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	raw = strings.Trim(raw, `"`)
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*n = FlexNumber(parsed)
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

type CheckoutItemRequest struct {
	ProductID   string     `json:"productId" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Price       FlexNumber `json:"price"`
	Quantity    FlexNumber `json:"quantity"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Size        string     `json:"size"`
	Gender      string     `json:"gender"`
}

type CheckoutCustomerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

type CheckoutShippingRequest struct {
	CountryCode    string `json:"countryCode" binding:"required"`
	DepartmentCode string `json:"departmentCode" binding:"required"`
	CityCode       string `json:"cityCode" binding:"required"`
	Address        string `json:"address"`
	PostalCode     string `json:"postalCode"`
}

// CheckoutRequest is the storefront checkout submission.
type CheckoutRequest struct {
	Items    []CheckoutItemRequest   `json:"items" binding:"required,min=1,dive"`
	Customer CheckoutCustomerRequest `json:"customer" binding:"required"`
	Shipping CheckoutShippingRequest `json:"shipping" binding:"required"`
}

// ToInput normalizes the request into the usecase's checkout input, rejecting
// non-positive quantities and negative prices.
func (r CheckoutRequest) ToInput() (usecase.CheckoutInput, error) {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		price := float64(item.Price)
		if price < 0 {
			return usecase.CheckoutInput{}, ErrInvalidItemPrice
		}
		quantity := int(item.Quantity)
		if quantity < 1 {
			return usecase.CheckoutInput{}, ErrInvalidItemQuantity
		}
		items = append(items, entities.OrderItem{
			ProductID:   strings.TrimSpace(item.ProductID),
			Name:        strings.TrimSpace(item.Name),
			Price:       price,
			Quantity:    quantity,
			Description: item.Description,
			Image:       item.Image,
			Category:    item.Category,
			Size:        item.Size,
			Gender:      item.Gender,
		})
	}

	return usecase.CheckoutInput{
		Items: items,
		Customer: entities.Customer{
			FirstName: strings.TrimSpace(r.Customer.FirstName),
			LastName:  strings.TrimSpace(r.Customer.LastName),
			Email:     strings.TrimSpace(r.Customer.Email),
			Phone:     strings.TrimSpace(r.Customer.Phone),
		},
		Shipping: usecase.CheckoutShippingSelection{
			CountryCode:    r.Shipping.CountryCode,
			DepartmentCode: r.Shipping.DepartmentCode,
			CityCode:       r.Shipping.CityCode,
			Address:        strings.TrimSpace(r.Shipping.Address),
			PostalCode:     strings.TrimSpace(r.Shipping.PostalCode),
		},
	}, nil
}
