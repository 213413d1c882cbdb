package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoItems                  = errors.New("checkout requires at least one item")
	ErrOrderNotFound            = errors.New("order not found")
	ErrOrderUpdateFailed        = errors.New("failed to update order")
	ErrPreferenceCreationFailed = errors.New("failed to create payment preference")
)

// CheckoutShippingSelection is the location the buyer picked at checkout.
// Address is free text; the codes are validated against the location catalog
// through the shipping usecase.
type CheckoutShippingSelection struct {
	CountryCode    string
	DepartmentCode string
	CityCode       string
	Address        string
	PostalCode     string
}

// CheckoutInput is the normalized checkout submission.
type CheckoutInput struct {
	Items    []entities.OrderItem
	Customer entities.Customer
	Shipping CheckoutShippingSelection
}

// CheckoutResult pairs the persisted order with the gateway redirect URL.
type CheckoutResult struct {
	Order       entities.Order
	CheckoutURL string
}

// IOrderUseCase drives order creation and reads.
type IOrderUseCase interface {
	CreateOrderWithCheckout(ctx context.Context, input CheckoutInput) (CheckoutResult, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	shipping IShippingUseCase
	gateway  interfaces.IPaymentGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, shipping IShippingUseCase, gateway interfaces.IPaymentGateway) *OrderUseCase {
	return &OrderUseCase{repo: repo, shipping: shipping, gateway: gateway}
}

// CreateOrderWithCheckout persists a new order and opens a payment preference
// for it.
//
// The order row is written twice on the happy path: once with status
// checkout_created and payment=nil, then again to attach the preference
// linkage. If the second write fails the row stays dangling with payment=nil;
// that partial-failure mode is surfaced as ErrOrderUpdateFailed and never
// silently retried (the created preference is not rolled back either).
func (u *OrderUseCase) CreateOrderWithCheckout(ctx context.Context, input CheckoutInput) (CheckoutResult, error) {
	if len(input.Items) == 0 {
		log.Printf("[order][usecase] checkout rejected: empty items")
		return CheckoutResult{}, ErrNoItems
	}

	quote, err := u.shipping.CalculateQuote(ctx, entities.ShippingQuoteQuery{
		CountryCode:    input.Shipping.CountryCode,
		DepartmentCode: input.Shipping.DepartmentCode,
		CityCode:       input.Shipping.CityCode,
	})
	if err != nil {
		log.Printf("[order][usecase] shipping quote failed country=%s department=%s city=%s err=%v",
			input.Shipping.CountryCode, input.Shipping.DepartmentCode, input.Shipping.CityCode, err)
		return CheckoutResult{}, err
	}

	subtotal := 0.0
	for _, item := range input.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	total := subtotal + quote.Amount

	orderID := uuid.NewString()
	now := time.Now().UTC()

	order := entities.Order{
		ID:              orderID,
		Status:          entities.OrderStatusCheckoutCreated,
		PaymentProvider: entities.PaymentProviderMercadoPago,
		Customer:        input.Customer,
		Shipping: entities.ShippingInfo{
			Country:         quote.Country.Name,
			CountryCode:     quote.Country.Code,
			Department:      quote.Department.Name,
			DepartmentCode:  quote.Department.Code,
			City:            quote.City.Name,
			CityCode:        quote.City.Code,
			Address:         input.Shipping.Address,
			PostalCode:      input.Shipping.PostalCode,
			Cost:            quote.Amount,
			Currency:        quote.Currency,
			PricingProvider: quote.Provider,
		},
		Totals: entities.Totals{
			Subtotal: subtotal,
			Shipping: quote.Amount,
			Total:    total,
			Currency: quote.Currency,
		},
		Items:     input.Items,
		Payment:   nil,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] order create failed order_id=%s err=%v", orderID, err)
		return CheckoutResult{}, err
	}
	log.Printf("[order][usecase] order created order_id=%s subtotal=%.2f shipping=%.2f total=%.2f", orderID, subtotal, quote.Amount, total)

	preference, err := u.gateway.CreatePreference(ctx, entities.PreferenceOrder{
		OrderID:      orderID,
		Customer:     input.Customer,
		Items:        input.Items,
		ShippingCost: quote.Amount,
	})
	if err != nil {
		log.Printf("[order][usecase] preference creation failed order_id=%s err=%v", orderID, err)
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrPreferenceCreationFailed, err)
	}

	updated, err := u.repo.Update(ctx, created.ID, func(current entities.Order) entities.Order {
		current.UpdatedAt = time.Now().UTC()
		current.Payment = &entities.PaymentInfo{
			Provider:     entities.PaymentProviderMercadoPago,
			PreferenceID: preference.ID,
			InitPoint:    preference.InitPoint,
			Status:       "pending",
		}
		return current
	})
	if err != nil {
		log.Printf("[order][usecase] preference linkage failed order_id=%s preference_id=%s err=%v", orderID, preference.ID, err)
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrOrderUpdateFailed, err)
	}
	if updated.ID == "" {
		log.Printf("[order][usecase] preference linkage lost order order_id=%s preference_id=%s", orderID, preference.ID)
		return CheckoutResult{}, ErrOrderUpdateFailed
	}
	log.Printf("[order][usecase] checkout ready order_id=%s preference_id=%s", orderID, preference.ID)

	return CheckoutResult{Order: updated, CheckoutURL: preference.InitPoint}, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
