package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"
)

const (
	whatsAppChannel      = "whatsapp-cloud"
	maxNotifiedItemLines = 5
)

// WhatsAppCloudAdapter posts a paid-order text message through the WhatsApp
// Cloud (Graph) API. When the token or phone number id is missing the adapter
// logs and skips instead of failing, so a half-configured environment does not
// poison the dispatcher loop.
type WhatsAppCloudAdapter struct {
	token         string
	phoneNumberID string
	apiVersion    string
	toNumber      string
	httpClient    *http.Client
}

var _ interfaces.INotificationAdapter = (*WhatsAppCloudAdapter)(nil)

func NewWhatsAppCloudAdapter(token, phoneNumberID, apiVersion, toNumber string) *WhatsAppCloudAdapter {
	if apiVersion == "" {
		apiVersion = "v22.0"
	}
	return &WhatsAppCloudAdapter{
		token:         token,
		phoneNumberID: phoneNumberID,
		apiVersion:    apiVersion,
		toNumber:      toNumber,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *WhatsAppCloudAdapter) Channel() string { return whatsAppChannel }

func (a *WhatsAppCloudAdapter) SendPaidOrderNotification(ctx context.Context, payload entities.PaidOrderNotification) error {
	if a.token == "" || a.phoneNumberID == "" {
		log.Printf("[notification][whatsapp] not configured, skipping order_id=%s", payload.OrderID)
		return nil
	}

	endpoint := fmt.Sprintf("https://graph.facebook.com/%s/%s/messages", a.apiVersion, a.phoneNumberID)
	body := map[string]any{
		"messaging_product": "whatsapp",
		"to":                a.toNumber,
		"type":              "text",
		"text": map[string]string{
			"body": buildMessage(payload),
		},
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("whatsapp cloud api error (%d): %s", resp.StatusCode, string(detail))
	}
	return nil
}

func buildMessage(payload entities.PaidOrderNotification) string {
	itemLines := make([]string, 0, maxNotifiedItemLines)
	for i, item := range payload.Items {
		if i == maxNotifiedItemLines {
			break
		}
		itemLines = append(itemLines, fmt.Sprintf("- %s x%d", item.Name, item.Quantity))
	}
	itemsSummary := strings.Join(itemLines, "\n")
	if itemsSummary == "" {
		itemsSummary = "- Sin detalle"
	}

	email := payload.CustomerEmail
	if email == "" {
		email = "N/A"
	}
	phone := payload.CustomerPhone
	if phone == "" {
		phone = "N/A"
	}

	return strings.Join([]string{
		fmt.Sprintf("Nuevo pedido pagado #%s", payload.OrderID),
		"Cliente: " + payload.CustomerName,
		"Email: " + email,
		"Tel: " + phone,
		fmt.Sprintf("Envío: %s, %s, %s, %s", payload.ShippingAddress, payload.City, payload.Department, payload.Country),
		fmt.Sprintf("Costo envío: %v %s", payload.ShippingCost, payload.Currency),
		fmt.Sprintf("Total pagado: %v %s", payload.TotalPaid, payload.Currency),
		"Productos:",
		itemsSummary,
	}, "\n")
}
