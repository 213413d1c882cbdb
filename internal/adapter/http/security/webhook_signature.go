package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"strings"
)

// WebhookSignatureParams carries everything Mercado Pago signs on a POST
// webhook delivery: the x-signature header, the x-request-id header and the
// resolved data.id.
type WebhookSignatureParams struct {
	Signature string
	RequestID string
	DataID    string
}

// BuildSignatureManifest assembles the canonical string Mercado Pago signs:
//
//	id:<data.id>;request-id:<x-request-id>;ts:<ts>;
//
// Absent fields are omitted entirely, never substituted with an empty value;
// the result must match the gateway's signed bytes exactly.
func BuildSignatureManifest(dataID, requestID, timestamp string) string {
	parts := make([]string, 0, 3)
	if dataID != "" {
		parts = append(parts, "id:"+dataID)
	}
	if requestID != "" {
		parts = append(parts, "request-id:"+requestID)
	}
	parts = append(parts, "ts:"+timestamp)
	return strings.Join(parts, ";") + ";"
}

// VerifyWebhookSignature checks the HMAC-SHA256 signature of a POST webhook
// delivery.
//
// An empty secret (unset, or the placeholder value filtered out by config) is
// a deliberate development-mode escape hatch: verification is skipped with a
// warning, never silently. Every malformed input past that point fails closed.
func VerifyWebhookSignature(secret string, params WebhookSignatureParams) bool {
	if secret == "" {
		log.Printf("[webhook][signature] MERCADOPAGO_WEBHOOK_SECRET not configured, signature validation skipped")
		return true
	}

	if params.Signature == "" {
		log.Printf("[webhook][signature] missing x-signature header")
		return false
	}

	signatureParts := map[string]string{}
	for _, rawPart := range strings.Split(params.Signature, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(rawPart), "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			signatureParts[key] = value
		}
	}

	timestamp := signatureParts["ts"]
	receivedHash := signatureParts["v1"]
	if timestamp == "" || receivedHash == "" {
		log.Printf("[webhook][signature] invalid signature format")
		return false
	}

	manifest := BuildSignatureManifest(params.DataID, params.RequestID, timestamp)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	computed := mac.Sum(nil)

	received, err := hex.DecodeString(receivedHash)
	if err != nil {
		log.Printf("[webhook][signature] received hash is not valid hex")
		return false
	}
	if len(received) != len(computed) {
		log.Printf("[webhook][signature] signature length mismatch")
		return false
	}

	if subtle.ConstantTimeCompare(received, computed) != 1 {
		log.Printf("[webhook][signature] signature validation failed request_id=%s received=%s...", params.RequestID, safePrefix(receivedHash, 16))
		return false
	}
	return true
}

func safePrefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
