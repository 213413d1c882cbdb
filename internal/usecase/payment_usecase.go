package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"
)

var (
	ErrPaymentLookupFailed      = errors.New("failed to retrieve payment from gateway")
	ErrMissingExternalReference = errors.New("payment missing external_reference")
	ErrMissingPaymentStatus     = errors.New("payment missing status")
)

// MapGatewayStatus maps Mercado Pago's settlement vocabulary into the order
// state machine. Total: any unrecognized or empty status lands on
// payment_unknown.
func MapGatewayStatus(gatewayStatus string) entities.OrderStatus {
	switch gatewayStatus {
	case "approved":
		return entities.OrderStatusPaid
	case "in_process", "pending", "authorized":
		return entities.OrderStatusPaymentPending
	case "cancelled", "rejected", "refunded", "charged_back":
		return entities.OrderStatusPaymentFailed
	default:
		return entities.OrderStatusPaymentUnknown
	}
}

// IPaymentUseCase reconciles asynchronous gateway callbacks into order state.
type IPaymentUseCase interface {
	ProcessWebhook(ctx context.Context, paymentID string) (entities.Order, error)
}

type PaymentUseCase struct {
	repo       interfaces.IOrderRepository
	gateway    interfaces.IPaymentGateway
	dispatcher INotificationDispatcher
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, dispatcher INotificationDispatcher) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway, dispatcher: dispatcher}
}

// ProcessWebhook fetches the authoritative payment record, correlates it to an
// order via external_reference and applies the resulting status transition.
//
// The paid notification fires at most once per order: the pre-update status is
// read before mutating, and a replayed approved webhook observes wasPaid and
// skips the dispatcher. Under truly concurrent delivery of two approved events
// both callers can read wasPaid=false; closing that window needs a conditional
// update at the store layer, which this repository contract does not offer.
// Webhook deliveries for the same order are not ordered either: a stale
// pending event arriving after approved overwrites status back to
// payment_pending (last write wins).
func (u *PaymentUseCase) ProcessWebhook(ctx context.Context, paymentID string) (entities.Order, error) {
	log.Printf("[payment][usecase] webhook start payment_id=%s", paymentID)

	record, err := u.gateway.GetPaymentByID(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] payment lookup failed payment_id=%s err=%v", paymentID, err)
		return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentLookupFailed, err)
	}

	if record.ExternalReference == "" {
		log.Printf("[payment][usecase] payment missing external_reference payment_id=%s", paymentID)
		return entities.Order{}, ErrMissingExternalReference
	}

	order, err := u.repo.GetByExternalReference(ctx, record.ExternalReference)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		log.Printf("[payment][usecase] order not found external_reference=%s payment_id=%s", record.ExternalReference, paymentID)
		return entities.Order{}, fmt.Errorf("%w: external_reference=%s", ErrOrderNotFound, record.ExternalReference)
	}

	if record.Status == "" {
		log.Printf("[payment][usecase] payment missing status payment_id=%s order_id=%s", paymentID, order.ID)
		return entities.Order{}, ErrMissingPaymentStatus
	}

	newStatus := MapGatewayStatus(record.Status)
	wasPaid := order.Status == entities.OrderStatusPaid

	updated, err := u.repo.Update(ctx, order.ID, func(current entities.Order) entities.Order {
		current.UpdatedAt = time.Now().UTC()
		current.Status = newStatus

		payment := entities.PaymentInfo{}
		if current.Payment != nil {
			payment = *current.Payment
		}
		payment.Provider = entities.PaymentProviderMercadoPago
		payment.PaymentID = record.ID
		payment.Status = record.Status
		payment.StatusDetail = record.StatusDetail
		payment.PaidAt = record.DateApproved
		if newStatus == entities.OrderStatusPaid {
			amount := settledAmount(record.TransactionAmount, current.Totals.Total)
			payment.TransactionAmount = &amount
			payment.Currency = record.CurrencyID

			current.Totals.TotalPaid = &amount
			if record.CurrencyID != "" {
				current.Totals.Currency = record.CurrencyID
			}
		}
		current.Payment = &payment

		return current
	})
	if err != nil {
		log.Printf("[payment][usecase] order update failed order_id=%s err=%v", order.ID, err)
		return entities.Order{}, fmt.Errorf("%w: %v", ErrOrderUpdateFailed, err)
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderUpdateFailed
	}
	log.Printf("[payment][usecase] order updated order_id=%s status=%s gateway_status=%s", updated.ID, updated.Status, record.Status)

	if newStatus == entities.OrderStatusPaid && !wasPaid {
		if err := u.dispatcher.NotifyPaidOrder(ctx, updated); err != nil {
			// Best effort: a notification failure must not fail the webhook.
			log.Printf("[payment][usecase] paid notification failed order_id=%s err=%v", updated.ID, err)
		}
	}

	return updated, nil
}

// settledAmount guards against the gateway reporting a non-finite or negative
// amount; the previously computed order total wins in that case.
func settledAmount(reported, priorTotal float64) float64 {
	if math.IsNaN(reported) || math.IsInf(reported, 0) || reported < 0 {
		return priorTotal
	}
	return reported
}
