package main

import (
	"tripmarket/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Tripmarket Booking Service API
// @version         1.0
// @description     Booking core of the tripmarket tourism marketplace: availability, booking creation with card or cash payment, payment webhook reconciliation, admin/vendor booking management.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
