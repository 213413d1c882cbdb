package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"atuestampa_api/internal/adapter/http/handlers/mocks"
	"atuestampa_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func locationRouter(h *LocationHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/locations/countries", h.ListCountries)
	r.GET("/v1/locations/departments", h.ListDepartments)
	r.GET("/v1/locations/cities", h.ListCities)
	return r
}

func TestLocationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list countries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockILocationUseCase(ctrl)
		uc.EXPECT().ListCountries(gomock.Any()).Return([]entities.Country{{Code: "CO", Name: "Colombia"}}, nil)

		h := NewLocationHandler(uc)
		r := locationRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/locations/countries", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Countries []entities.Country `json:"countries"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body.Countries) != 1 || body.Countries[0].Code != "CO" {
			t.Fatalf("unexpected countries: %+v", body.Countries)
		}
	})

	t.Run("list departments passes country code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockILocationUseCase(ctrl)
		uc.EXPECT().ListDepartments(gomock.Any(), "CO").Return([]entities.Department{{Code: "05", Name: "Antioquia"}}, nil)

		h := NewLocationHandler(uc)
		r := locationRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/locations/departments?countryCode=CO", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list cities passes department code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockILocationUseCase(ctrl)
		uc.EXPECT().ListCities(gomock.Any(), "05").Return([]entities.City{{Code: "05001", Name: "Medellín"}}, nil)

		h := NewLocationHandler(uc)
		r := locationRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/locations/cities?departmentCode=05", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("catalog failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockILocationUseCase(ctrl)
		uc.EXPECT().ListCountries(gomock.Any()).Return(nil, errors.New("dynamodb unavailable"))

		h := NewLocationHandler(uc)
		r := locationRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/locations/countries", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
