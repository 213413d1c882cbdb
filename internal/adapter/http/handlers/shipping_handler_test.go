package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atuestampa_api/internal/adapter/http/handlers/mocks"
	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func shippingRouter(h *ShippingHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/shipping/quote", h.GetQuote)
	return r
}

func TestShippingHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIShippingUseCase(ctrl)
		uc.EXPECT().CalculateQuote(gomock.Any(), entities.ShippingQuoteQuery{
			CountryCode: "CO", DepartmentCode: "05", CityCode: "05001",
		}).Return(entities.ShippingQuote{
			Country:      entities.LocationRef{Code: "CO", Name: "Colombia"},
			Department:   entities.LocationRef{Code: "05", Name: "Antioquia"},
			City:         entities.LocationRef{Code: "05001", Name: "Medellín"},
			Amount:       20000,
			Currency:     "COP",
			Provider:     "fixed-default",
			CalculatedAt: time.Now().UTC(),
		}, nil)

		h := NewShippingHandler(uc)
		r := shippingRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/shipping/quote?countryCode=CO&departmentCode=05&cityCode=05001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			Quote struct {
				Amount   float64 `json:"amount"`
				Currency string  `json:"currency"`
			} `json:"quote"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Quote.Amount != 20000 || body.Quote.Currency != "COP" {
			t.Fatalf("unexpected quote: %+v", body.Quote)
		}
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
		}{
			{"missing fields", usecase.ErrMissingLocationFields},
			{"unsupported country", usecase.ErrUnsupportedCountry},
			{"invalid department", usecase.ErrInvalidDepartment},
			{"invalid city", usecase.ErrInvalidCity},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				uc := mocks.NewMockIShippingUseCase(ctrl)
				uc.EXPECT().CalculateQuote(gomock.Any(), gomock.Any()).Return(entities.ShippingQuote{}, tc.err)

				h := NewShippingHandler(uc)
				r := shippingRouter(h)

				req := httptest.NewRequest(http.MethodGet, "/v1/shipping/quote?countryCode=EC&departmentCode=01&cityCode=0101", nil)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", w.Code)
				}
			})
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIShippingUseCase(ctrl)
		uc.EXPECT().CalculateQuote(gomock.Any(), gomock.Any()).Return(entities.ShippingQuote{}, errors.New("dynamodb unavailable"))

		h := NewShippingHandler(uc)
		r := shippingRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/shipping/quote?countryCode=CO&departmentCode=05&cityCode=05001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
