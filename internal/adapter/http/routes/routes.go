package routes

import (
	"log"
	"net/http"

	_ "atuestampa_api/docs" // This will be auto-generated
	"atuestampa_api/internal/adapter/http/handlers"
	repository2 "atuestampa_api/internal/adapter/persistence/repository"
	"atuestampa_api/internal/infrastructure/config"
	"atuestampa_api/internal/infrastructure/database"
	"atuestampa_api/internal/infrastructure/notifications"
	"atuestampa_api/internal/infrastructure/payments"
	"atuestampa_api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	locationRepo := repository2.NewLocationDynamoRepository(ddb)

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.FrontendURL, cfg.BackendURL)
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}

	dispatcher := usecase.NewNotificationDispatcher(
		notifications.NewWhatsAppCloudAdapter(cfg.WhatsAppToken, cfg.WhatsAppPhoneNumberID, cfg.WhatsAppAPIVersion, cfg.WhatsAppToNumber),
	)

	pricing := usecase.NewFixedShippingPricingProvider(cfg.ShippingDefaultCost, cfg.ShippingCurrency)
	shippingUseCase := usecase.NewShippingUseCase(locationRepo, pricing, cfg.SupportedCountryCode)
	locationUseCase := usecase.NewLocationUseCase(locationRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, shippingUseCase, gateway)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, gateway, dispatcher)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	shippingHandler := handlers.NewShippingHandler(shippingUseCase)
	locationHandler := handlers.NewLocationHandler(locationUseCase)
	webhookHandler := handlers.NewPaymentWebhookHandler(paymentUseCase, cfg.WebhookSecret)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStoreRoutes(v1, orderHandler, shippingHandler, locationHandler, webhookHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
