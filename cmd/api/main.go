package main

import (
	_ "hlc_marketplace/docs"
	"hlc_marketplace/internal/adapter/http/routes"
	"hlc_marketplace/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Listing Promotion Payments API
// @version         1.0
// @description     Payment initialization, verification and listing promotion activation.

// @host localhost:8080

// @BasePath  /v1

func main() {
	flush := logging.Init(logging.ConfigFromEnv())
	defer flush()

	routes.Run()
}
