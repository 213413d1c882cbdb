package handlers

import (
	"log"
	"net/http"

	"atuestampa_api/internal/usecase"
	"atuestampa_api/pkg"

	"github.com/gin-gonic/gin"
)

// LocationHandler serves the read-only location catalog the storefront uses to
// populate its shipping selectors.
type LocationHandler struct {
	usecase usecase.ILocationUseCase
}

func NewLocationHandler(uc usecase.ILocationUseCase) *LocationHandler {
	return &LocationHandler{usecase: uc}
}

func (h *LocationHandler) ListCountries(c *gin.Context) {
	countries, err := h.usecase.ListCountries(c.Request.Context())
	if err != nil {
		log.Printf("[location][handler] list countries failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

func (h *LocationHandler) ListDepartments(c *gin.Context) {
	departments, err := h.usecase.ListDepartments(c.Request.Context(), c.Query("countryCode"))
	if err != nil {
		log.Printf("[location][handler] list departments failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"departments": departments})
}

func (h *LocationHandler) ListCities(c *gin.Context) {
	cities, err := h.usecase.ListCities(c.Request.Context(), c.Query("departmentCode"))
	if err != nil {
		log.Printf("[location][handler] list cities failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
