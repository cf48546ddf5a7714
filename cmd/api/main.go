package main

import (
	_ "workbee/docs"
	"workbee/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           WorkBee Booking API
// @version         1.0
// @description     Booking lifecycle, reviews and real-time notifications for the WorkBee marketplace, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
