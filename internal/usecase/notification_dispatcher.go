package usecase

import (
	"context"
	"log"
	"strings"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"
)

// INotificationDispatcher fans a paid-order event out to every registered
// channel adapter.
type INotificationDispatcher interface {
	NotifyPaidOrder(ctx context.Context, order entities.Order) error
}

// NotificationDispatcher is best-effort: adapter failures are logged per
// channel and never propagated, so one broken channel cannot block the others
// or fail the webhook that triggered the dispatch.
type NotificationDispatcher struct {
	adapters []interfaces.INotificationAdapter
}

var _ INotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(adapters ...interfaces.INotificationAdapter) *NotificationDispatcher {
	return &NotificationDispatcher{adapters: adapters}
}

func (d *NotificationDispatcher) NotifyPaidOrder(ctx context.Context, order entities.Order) error {
	payload := buildPaidOrderNotification(order)

	for _, adapter := range d.adapters {
		if err := adapter.SendPaidOrderNotification(ctx, payload); err != nil {
			log.Printf("[notification][dispatcher] channel=%s order_id=%s err=%v", adapter.Channel(), order.ID, err)
		}
	}
	return nil
}

func buildPaidOrderNotification(order entities.Order) entities.PaidOrderNotification {
	name := strings.TrimSpace(strings.TrimSpace(order.Customer.FirstName) + " " + strings.TrimSpace(order.Customer.LastName))
	if name == "" {
		name = "Cliente"
	}

	totalPaid := order.Totals.Total
	if order.Totals.TotalPaid != nil {
		totalPaid = *order.Totals.TotalPaid
	}

	currency := order.Totals.Currency
	if currency == "" {
		currency = "COP"
	}

	items := make([]entities.PaidOrderNotificationItem, 0, len(order.Items))
	for _, item := range order.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		itemName := strings.TrimSpace(item.Name)
		if itemName == "" {
			itemName = "Producto"
		}
		items = append(items, entities.PaidOrderNotificationItem{Name: itemName, Quantity: quantity})
	}

	return entities.PaidOrderNotification{
		OrderID:         order.ID,
		CustomerName:    name,
		CustomerPhone:   strings.TrimSpace(order.Customer.Phone),
		CustomerEmail:   strings.TrimSpace(order.Customer.Email),
		ShippingAddress: fallback(order.Shipping.Address, "Sin dirección"),
		Department:      fallback(order.Shipping.Department, "Sin departamento"),
		City:            fallback(order.Shipping.City, "Sin ciudad"),
		Country:         fallback(order.Shipping.Country, "Colombia"),
		ShippingCost:    order.Shipping.Cost,
		TotalPaid:       totalPaid,
		Currency:        currency,
		Items:           items,
	}
}

func fallback(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}
