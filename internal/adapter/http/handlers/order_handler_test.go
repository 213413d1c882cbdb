package handlers

import (
	"bytes"
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

const validCheckoutJSON = `{
	"items": [
		{"productId": "p-1", "name": "Camiseta estampada", "price": 60000, "quantity": 2, "size": "M"}
	],
	"customer": {"firstName": "Laura", "lastName": "Gómez", "email": "laura@example.com", "phone": "3001234567"},
	"shipping": {"countryCode": "CO", "departmentCode": "05", "cityCode": "05001", "address": "Calle 10 # 20-30"}
}`

func orderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders/checkout", h.Checkout)
	r.GET("/v1/orders", h.List)
	r.GET("/v1/orders/:id", h.GetByID)
	return r
}

func TestOrderHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns order id and checkout url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CreateOrderWithCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input usecase.CheckoutInput) (usecase.CheckoutResult, error) {
				if len(input.Items) != 1 || input.Items[0].Price != 60000 || input.Items[0].Quantity != 2 {
					t.Errorf("unexpected normalized items: %+v", input.Items)
				}
				return usecase.CheckoutResult{
					Order:       entities.Order{ID: "order-1", Status: entities.OrderStatusCheckoutCreated},
					CheckoutURL: "https://mp.example/init",
				}, nil
			})

		h := NewOrderHandler(uc)
		r := orderRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/checkout", bytes.NewBufferString(validCheckoutJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["orderId"] != "order-1" || body["checkoutUrl"] != "https://mp.example/init" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("string-typed price and quantity are coerced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CreateOrderWithCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input usecase.CheckoutInput) (usecase.CheckoutResult, error) {
				if input.Items[0].Price != 60000 || input.Items[0].Quantity != 2 {
					t.Errorf("coercion failed: %+v", input.Items[0])
				}
				return usecase.CheckoutResult{Order: entities.Order{ID: "order-1"}}, nil
			})

		h := NewOrderHandler(uc)
		r := orderRouter(h)

		payload := `{
			"items": [{"productId": "p-1", "name": "Camiseta", "price": "60000", "quantity": "2"}],
			"customer": {"firstName": "Laura", "lastName": "Gómez", "email": "laura@example.com", "phone": "3001234567"},
			"shipping": {"countryCode": "CO", "departmentCode": "05", "cityCode": "05001"}
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/checkout", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)
		r := orderRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero quantity rejected at the boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)
		r := orderRouter(h)

		payload := `{
			"items": [{"productId": "p-1", "name": "Camiseta", "price": 60000, "quantity": 0}],
			"customer": {"firstName": "Laura", "lastName": "Gómez", "email": "laura@example.com", "phone": "3001234567"},
			"shipping": {"countryCode": "CO", "departmentCode": "05", "cityCode": "05001"}
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/checkout", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("usecase errors map to status codes", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"empty cart", usecase.ErrNoItems, http.StatusBadRequest},
			{"unsupported country", usecase.ErrUnsupportedCountry, http.StatusBadRequest},
			{"invalid city", usecase.ErrInvalidCity, http.StatusBadRequest},
			{"preference creation failed", usecase.ErrPreferenceCreationFailed, http.StatusBadGateway},
			{"linkage failed", usecase.ErrOrderUpdateFailed, http.StatusInternalServerError},
			{"unknown", errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				uc := mocks.NewMockIOrderUseCase(ctrl)
				uc.EXPECT().CreateOrderWithCheckout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, tc.err)

				h := NewOrderHandler(uc)
				r := orderRouter(h)

				req := httptest.NewRequest(http.MethodPost, "/v1/orders/checkout", bytes.NewBufferString(validCheckoutJSON))
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

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIOrderUseCase(ctrl)
	uc.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{
		{ID: "order-1", Status: entities.OrderStatusPaid},
		{ID: "order-2", Status: entities.OrderStatusCheckoutCreated},
	}, nil)

	h := NewOrderHandler(uc)
	r := orderRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Orders []json.RawMessage `json:"orders"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(body.Orders))
	}
}

func TestOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)

		h := NewOrderHandler(uc)
		r := orderRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().GetOrderByID(gomock.Any(), "ghost").Return(entities.Order{}, usecase.ErrOrderNotFound)

		h := NewOrderHandler(uc)
		r := orderRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
