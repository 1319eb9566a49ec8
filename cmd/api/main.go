package main

import (
	"flag"
	_ "plan_appetit/docs"
	"plan_appetit/internal/adapter/http/routes"
	"plan_appetit/internal/config"
	"plan_appetit/pkg/logger"

	"go.uber.org/zap"
)

// @title           Plan'Appétit API
// @version         1.0
// @description     Restaurant weekly planning configurations and sales statistics.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	envFile := flag.String("env", "", "optional .env file to load")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	if err := routes.Run(cfg, baseLogger); err != nil {
		baseLogger.Fatal("server stopped with error", zap.Error(err))
	}
	baseLogger.Info("server stopped")
}
