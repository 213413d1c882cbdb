package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrInvalidPaymentID = errors.New("invalid gateway payment id")

// MercadoPagoGateway adapts the Mercado Pago SDK to IPaymentGateway.
//
// It is constructed once at startup with a validated access token; there is no
// lazy client initialization.
type MercadoPagoGateway struct {
	preferenceClient preference.Client
	paymentClient    payment.Client
	frontendURL      string
	notificationURL  string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, frontendURL, backendURL string) (*MercadoPagoGateway, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferenceClient: preference.NewClient(cfg),
		paymentClient:    payment.NewClient(cfg),
		frontendURL:      strings.TrimRight(frontendURL, "/"),
		notificationURL:  strings.TrimRight(backendURL, "/") + "/v1/payments/mercadopago/webhook",
	}, nil
}

// CreatePreference opens a checkout session for the order. Shipping travels as
// a synthetic line item when its cost is positive, and the order id is
// attached as external_reference for webhook correlation.
func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, order entities.PreferenceOrder) (entities.CheckoutPreference, error) {
	items := make([]preference.ItemRequest, 0, len(order.Items)+1)
	for _, item := range order.Items {
		description := item.Description
		if description == "" {
			description = fmt.Sprintf("%s · %s", item.Category, item.Size)
		}
		items = append(items, preference.ItemRequest{
			ID:          item.ProductID,
			Title:       item.Name,
			Description: description,
			Quantity:    item.Quantity,
			CurrencyID:  "COP",
			UnitPrice:   sanitizeUnitPrice(item.Price),
			PictureURL:  item.Image,
			CategoryID:  item.Category,
		})
	}

	if order.ShippingCost > 0 {
		items = append(items, preference.ItemRequest{
			ID:          "shipping-" + order.OrderID,
			Title:       "Costo de envío",
			Description: "Costo de envío",
			Quantity:    1,
			CurrencyID:  "COP",
			UnitPrice:   sanitizeUnitPrice(order.ShippingCost),
			CategoryID:  "shipping",
		})
	}

	req := preference.Request{
		ExternalReference:   order.OrderID,
		StatementDescriptor: "ATUESTAMPA",
		Items:               items,
		Payer: &preference.PayerRequest{
			Name:    order.Customer.FirstName,
			Surname: order.Customer.LastName,
			Email:   order.Customer.Email,
			Phone:   &preference.PhoneRequest{Number: order.Customer.Phone},
		},
		Metadata: map[string]any{"order_id": order.OrderID},
		BackURLs: &preference.BackURLsRequest{
			Success: g.frontendURL + "/checkout/success",
			Failure: g.frontendURL + "/checkout/cancel",
			Pending: g.frontendURL + "/checkout/pending",
		},
		NotificationURL: g.notificationURL,
	}
	// auto_return requires a public https success URL.
	if strings.HasPrefix(g.frontendURL, "https://") {
		req.AutoReturn = "approved"
	}

	log.Printf("[payment][gateway] preference create start order_id=%s items=%d", order.OrderID, len(items))
	resp, err := g.preferenceClient.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed order_id=%s err=%v", order.OrderID, err)
		return entities.CheckoutPreference{}, err
	}
	log.Printf("[payment][gateway] preference create success order_id=%s preference_id=%s", order.OrderID, resp.ID)

	return entities.CheckoutPreference{ID: resp.ID, InitPoint: resp.InitPoint}, nil
}

// GetPaymentByID fetches the authoritative settlement record for a payment id
// as delivered by the webhook (stringly typed on the wire, numeric in the
// SDK).
func (g *MercadoPagoGateway) GetPaymentByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		log.Printf("[payment][gateway] invalid payment id payment_id=%q err=%v", paymentID, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %q", ErrInvalidPaymentID, paymentID)
	}

	resp, err := g.paymentClient.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] payment get failed payment_id=%d err=%v", id, err)
		return entities.PaymentRecord{}, err
	}

	record := entities.PaymentRecord{
		ID:                strconv.Itoa(resp.ID),
		ExternalReference: resp.ExternalReference,
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		TransactionAmount: resp.TransactionAmount,
		CurrencyID:        resp.CurrencyID,
	}
	if !resp.DateApproved.IsZero() {
		approved := resp.DateApproved.UTC()
		record.DateApproved = &approved
	}
	log.Printf("[payment][gateway] payment get success payment_id=%d status=%s external_reference=%s", id, resp.Status, resp.ExternalReference)

	return record, nil
}

func sanitizeUnitPrice(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return math.Round(value*100) / 100
}
