package routes

import (
	"atuestampa_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathShipping  = "/shipping"
	PathLocations = "/locations"
	PathPayments  = "/payments"
)

func addStoreRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, shippingHandler *handlers.ShippingHandler, locationHandler *handlers.LocationHandler, webhookHandler *handlers.PaymentWebhookHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/checkout", orderHandler.Checkout)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
	}

	shipping := rg.Group(PathShipping)
	{
		shipping.GET("/quote", shippingHandler.GetQuote)
	}

	locations := rg.Group(PathLocations)
	{
		locations.GET("/countries", locationHandler.ListCountries)
		locations.GET("/departments", locationHandler.ListDepartments)
		locations.GET("/cities", locationHandler.ListCities)
	}

	payments := rg.Group(PathPayments)
	{
		// The gateway delivers webhooks via POST; GET covers manual or
		// browser-triggered redelivery, which the gateway does not sign.
		payments.POST("/mercadopago/webhook", webhookHandler.Webhook)
		payments.GET("/mercadopago/webhook", webhookHandler.Webhook)
		payments.POST("/mercadopago/confirm", webhookHandler.Confirm)
	}
}
