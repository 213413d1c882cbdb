package handlers

import (
	"errors"
	"log"
	"net/http"

	response "atuestampa_api/internal/adapter/http/dto/response"
	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase"
	"atuestampa_api/pkg"

	"github.com/gin-gonic/gin"
)

// ShippingHandler handles shipping quote requests.
type ShippingHandler struct {
	usecase usecase.IShippingUseCase
}

func NewShippingHandler(uc usecase.IShippingUseCase) *ShippingHandler {
	return &ShippingHandler{usecase: uc}
}

// GetQuote prices a location selection passed in the query string.
func (h *ShippingHandler) GetQuote(c *gin.Context) {
	query := entities.ShippingQuoteQuery{
		CountryCode:    c.Query("countryCode"),
		DepartmentCode: c.Query("departmentCode"),
		CityCode:       c.Query("cityCode"),
	}

	quote, err := h.usecase.CalculateQuote(c.Request.Context(), query)
	if err != nil {
		log.Printf("[shipping][handler] quote failed country=%s department=%s city=%s err=%v",
			query.CountryCode, query.DepartmentCode, query.CityCode, err)
		appErr := mapShippingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": response.FromShippingQuote(quote)})
}

func mapShippingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingLocationFields):
		return pkg.NewDomainErrorSimple("MISSING_LOCATION_FIELDS", "countryCode, departmentCode y cityCode son requeridos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedCountry):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_COUNTRY", "Solo soportamos envíos para Colombia por ahora", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDepartment):
		return pkg.NewDomainErrorSimple("INVALID_DEPARTMENT", "Departamento inválido para Colombia", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCity):
		return pkg.NewDomainErrorSimple("INVALID_CITY", "Ciudad inválida para el departamento seleccionado", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
