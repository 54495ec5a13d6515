package main

import (
	_ "obralink/docs"
	"obralink/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Obralink Marketplace API
// @version         1.0
// @description     Marketplace connecting service requesters, service providers and supply sellers around a quoting workflow.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
