package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	request "atuestampa_api/internal/adapter/http/dto/request"
	"atuestampa_api/internal/adapter/http/security"
	"atuestampa_api/internal/usecase"
	"atuestampa_api/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookHandler authenticates and normalizes Mercado Pago callbacks
// before handing off to the payment usecase.
type PaymentWebhookHandler struct {
	usecase       usecase.IPaymentUseCase
	webhookSecret string
}

func NewPaymentWebhookHandler(uc usecase.IPaymentUseCase, webhookSecret string) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{usecase: uc, webhookSecret: webhookSecret}
}

// Webhook serves POST and GET deliveries.
//
// The gateway retries aggressively on non-2xx responses and retrying an
// unprocessable event never helps, so every lifecycle error is logged and
// acknowledged with {ok:true}. The only non-2xx path is signature rejection.
// GET deliveries are not signed by the gateway and skip the signature check.
func (h *PaymentWebhookHandler) Webhook(c *gin.Context) {
	var body request.WebhookBody
	if c.Request.Method == http.MethodPost {
		// Body is optional; the gateway also delivers id/topic via query.
		_ = c.ShouldBindJSON(&body)
	}

	topic := c.Query("topic")
	if topic == "" {
		topic = c.Query("type")
	}
	if topic == "" {
		topic = body.Type
	}

	paymentID := c.Query("data.id")
	if paymentID == "" {
		paymentID = c.Query("id")
	}
	if paymentID == "" {
		paymentID = body.Data.ID
	}

	if c.Request.Method == http.MethodPost {
		ok := security.VerifyWebhookSignature(h.webhookSecret, security.WebhookSignatureParams{
			Signature: c.GetHeader("x-signature"),
			RequestID: c.GetHeader("x-request-id"),
			DataID:    paymentID,
		})
		if !ok {
			log.Printf("[webhook][handler] invalid signature, rejecting request payment_id=%s", paymentID)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid webhook signature"})
			return
		}
	}

	if topic != "payment" || paymentID == "" {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if _, err := h.usecase.ProcessWebhook(c.Request.Context(), paymentID); err != nil {
		log.Printf("[webhook][handler] failed to process webhook payment_id=%s err=%v", paymentID, err)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Confirm is the manual reconciliation endpoint: same processing as the
// webhook but errors surface to the caller.
func (h *PaymentWebhookHandler) Confirm(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Mercado Pago payment ids are numeric; reject junk before it reaches the
	// gateway lookup.
	paymentID := strings.TrimSpace(payload.PaymentID)
	if _, err := strconv.Atoi(paymentID); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "Payment id must be numeric", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.ProcessWebhook(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[webhook][handler] confirm failed payment_id=%s err=%v", payload.PaymentID, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"orderId": order.ID,
		"status":  string(order.Status),
	})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found for this payment", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingExternalReference), errors.Is(err, usecase.ErrMissingPaymentStatus):
		return pkg.NewDomainError("INVALID_PAYMENT_RECORD", "Payment record is missing required data", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentLookupFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Failed to retrieve payment", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
