package handlers

import (
	"errors"
	"log"
	"net/http"

	request "atuestampa_api/internal/adapter/http/dto/request"
	response "atuestampa_api/internal/adapter/http/dto/response"
	"atuestampa_api/internal/usecase"
	"atuestampa_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for storefront orders.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Checkout creates an order from a cart submission and returns the gateway
// redirect URL.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] checkout payload rejected err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		log.Printf("[order][handler] checkout normalization rejected err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateOrderWithCheckout(c.Request.Context(), input)
	if err != nil {
		log.Printf("[order][handler] checkout failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] checkout success order_id=%s", result.Order.ID)

	c.JSON(http.StatusOK, response.CheckoutResponse{
		OrderID:     result.Order.ID,
		CheckoutURL: result.CheckoutURL,
	})
}

// List returns every order, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("[order][handler] list failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": response.FromOrders(orders)})
}

// GetByID returns one order.
func (h *OrderHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	order, err := h.usecase.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": response.FromOrder(order)})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoItems):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Checkout requires at least one item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingLocationFields),
		errors.Is(err, usecase.ErrUnsupportedCountry),
		errors.Is(err, usecase.ErrInvalidDepartment),
		errors.Is(err, usecase.ErrInvalidCity):
		return pkg.NewDomainErrorSimple("INVALID_SHIPPING_SELECTION", "Invalid shipping selection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Orden no encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPreferenceCreationFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Failed to create payment preference", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOrderUpdateFailed):
		return pkg.NewDomainError("ORDER_UPDATE_FAILED", "Order was created but could not be linked to its payment", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
