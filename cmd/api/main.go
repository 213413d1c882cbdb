package main

import (
	_ "atuestampa_api/docs"
	"atuestampa_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Atuestampa Store API
// @version         1.0
// @description     Storefront backend (orders, shipping quotes, Mercado Pago checkout) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:4242

// @BasePath  /v1

func main() {
	routes.Run()
}
