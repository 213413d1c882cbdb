package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"atuestampa_api/internal/adapter/http/handlers/mocks"
	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "test-secret"

func signedHeader(dataID, requestID, ts string) string {
	manifest := ""
	if dataID != "" {
		manifest += "id:" + dataID + ";"
	}
	if requestID != "" {
		manifest += "request-id:" + requestID + ";"
	}
	manifest += "ts:" + ts + ";"

	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(manifest))
	return "ts=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func webhookRouter(h *PaymentWebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/mercadopago/webhook", h.Webhook)
	r.GET("/v1/payments/mercadopago/webhook", h.Webhook)
	r.POST("/v1/payments/mercadopago/confirm", h.Confirm)
	return r
}

func TestPaymentWebhookHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid signed POST processes the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ProcessWebhook(gomock.Any(), "1001").Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}, nil)

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/webhook?topic=payment&data.id=1001", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-request-id", "req-7")
		req.Header.Set("x-signature", signedHeader("1001", "req-7", "1700000000"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["ok"] != true {
			t.Fatalf("expected ok=true, got %v", body)
		}
	})

	t.Run("invalid signature returns 401 and never processes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/webhook?topic=payment&data.id=1001", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-signature", "ts=1700000000,v1=deadbeef")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unsigned POST rejected when secret configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/webhook?topic=payment&data.id=1001", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("GET delivery is processed without signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ProcessWebhook(gomock.Any(), "1001").Return(entities.Order{ID: "order-1"}, nil)

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/mercadopago/webhook?topic=payment&id=1001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-payment topic acknowledged without processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/mercadopago/webhook?topic=merchant_order&id=777", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing payment id acknowledged without processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/mercadopago/webhook?topic=payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("payment id and topic resolved from POST body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ProcessWebhook(gomock.Any(), "1001").Return(entities.Order{ID: "order-1"}, nil)

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/webhook", bytes.NewBufferString(`{"type":"payment","data":{"id":"1001"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-request-id", "req-7")
		req.Header.Set("x-signature", signedHeader("1001", "req-7", "1700000000"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("processing failure still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ProcessWebhook(gomock.Any(), "1001").Return(entities.Order{}, errors.New("boom"))

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/mercadopago/webhook?topic=payment&id=1001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("gateway retries on non-2xx, expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentWebhookHandler_Confirm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns order state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ProcessWebhook(gomock.Any(), "1001").Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}, nil)

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/confirm", bytes.NewBufferString(`{"paymentId":"1001"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["orderId"] != "order-1" || body["status"] != "paid" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("non-numeric payment id rejected before gateway lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/confirm", bytes.NewBufferString(`{"paymentId":"not-a-number"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("payment id is trimmed before processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ProcessWebhook(gomock.Any(), "1001").Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}, nil)

		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/confirm", bytes.NewBufferString(`{"paymentId":" 1001 "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc, testWebhookSecret)
		r := webhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/confirm", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"order not found", usecase.ErrOrderNotFound, http.StatusNotFound},
			{"missing external reference", usecase.ErrMissingExternalReference, http.StatusUnprocessableEntity},
			{"missing payment status", usecase.ErrMissingPaymentStatus, http.StatusUnprocessableEntity},
			{"gateway lookup failed", usecase.ErrPaymentLookupFailed, http.StatusBadGateway},
			{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				uc := mocks.NewMockIPaymentUseCase(ctrl)
				uc.EXPECT().ProcessWebhook(gomock.Any(), "1001").Return(entities.Order{}, tc.err)

				h := NewPaymentWebhookHandler(uc, testWebhookSecret)
				r := webhookRouter(h)

				req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/confirm", bytes.NewBufferString(`{"paymentId":"1001"}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.code {
					t.Fatalf("expected %d, got %d body=%s", tc.code, w.Code, w.Body.String())
				}
			})
		}
	})
}
