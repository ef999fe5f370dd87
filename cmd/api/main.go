package main

import (
	"log"

	_ "rfq_console/docs"
	"rfq_console/internal/adapter/http/routes"
	"rfq_console/internal/config"
	"rfq_console/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           RFQ Console API
// @version         1.0
// @description     SKU composition, factory overhead and cost sheets of RFQ quotations.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	if err := routes.Run(cfg, zl); err != nil {
		zl.Fatal("Failed to startup the application", zap.Error(err))
	}
}
