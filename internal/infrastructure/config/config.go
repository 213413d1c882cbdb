package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// webhookSecretPlaceholder ships in .env.example; a secret still set to it is
// treated as unset so signature checking stays an explicit, logged bypass.
const webhookSecretPlaceholder = "your_webhook_secret_here"

// Config is the full environment surface of the API, resolved once at
// startup. Required values are validated eagerly so a misconfigured gateway
// fails at boot instead of on the first checkout.
type Config struct {
	Port string

	MercadoPagoAccessToken string
	WebhookSecret          string

	FrontendURL string
	BackendURL  string

	SupportedCountryCode string
	ShippingDefaultCost  float64
	ShippingCurrency     string

	WhatsAppToken         string
	WhatsAppPhoneNumberID string
	WhatsAppAPIVersion    string
	WhatsAppToNumber      string
}

// Load reads the environment (godotenv has already hydrated it in main).
func Load() (Config, error) {
	cfg := Config{
		Port: getenvDefault("PORT", "8080"),

		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		WebhookSecret:          normalizeWebhookSecret(os.Getenv("MERCADOPAGO_WEBHOOK_SECRET")),

		FrontendURL: getenvDefault("FRONTEND_URL", "http://localhost:8080"),
		BackendURL:  getenvDefault("BACKEND_URL", "http://localhost:4242"),

		SupportedCountryCode: getenvDefault("SHIPPING_COUNTRY_CODE", "CO"),
		ShippingDefaultCost:  getenvFloat("SHIPPING_DEFAULT_COST_COP", 20000),
		ShippingCurrency:     getenvDefault("SHIPPING_CURRENCY", "COP"),

		WhatsAppToken:         strings.TrimSpace(os.Getenv("WHATSAPP_CLOUD_API_TOKEN")),
		WhatsAppPhoneNumberID: strings.TrimSpace(os.Getenv("WHATSAPP_CLOUD_PHONE_NUMBER_ID")),
		WhatsAppAPIVersion:    getenvDefault("WHATSAPP_CLOUD_API_VERSION", "v22.0"),
		WhatsAppToNumber:      getenvDefault("WHATSAPP_CLOUD_TO_NUMBER", "+573000000000"),
	}

	if cfg.MercadoPagoAccessToken == "" {
		return Config{}, ErrMissingMercadoPagoAccessToken
	}

	return cfg, nil
}

func normalizeWebhookSecret(raw string) string {
	secret := strings.TrimSpace(raw)
	if strings.Contains(secret, webhookSecretPlaceholder) {
		return ""
	}
	return secret
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return parsed
}
