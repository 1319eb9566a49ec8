package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	_ "plan_appetit/docs" // generated by swag init
	"plan_appetit/internal/adapter/http/handlers"
	"plan_appetit/internal/config"
	"plan_appetit/internal/infrastructure/backend"
	"plan_appetit/internal/usecase"
	"plan_appetit/internal/usecase/interfaces"
	applog "plan_appetit/pkg/logger"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Configuration *handlers.ConfigurationHandler
	Statistics    *handlers.StatisticsHandler
	Recipe        *handlers.RecipeHandler
}

// Run wires storage, use cases and handlers, then serves until SIGINT or
// SIGTERM.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStorage, err := newKeyValueStore(ctx, cfg, applog.Named(logger, "storage"))
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer closeStorage()

	var generator interfaces.IRecipeGenerator
	if recipeClient, err := backend.NewRecipeClient(cfg.Recipe); err != nil {
		logger.Warn("recipe backend not configured, recipe generation disabled", zap.Error(err))
	} else {
		generator = recipeClient
		logger.Info("recipe backend enabled", zap.String("base_url", cfg.Recipe.BaseURL))
	}

	store := usecase.NewConfigurationStore(kv, applog.Named(logger, "store"))
	engine := NewRouter(Handlers{
		Configuration: handlers.NewConfigurationHandler(store),
		Statistics:    handlers.NewStatisticsHandler(usecase.NewStatisticsUseCase(store)),
		Recipe:        handlers.NewRecipeHandler(usecase.NewRecipeUseCase(generator, applog.Named(logger, "recipes"))),
	}, applog.Named(logger, "router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Recipe.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server crashed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConfigurationRoutes(v1, h.Configuration, h.Statistics)
	addStatisticsRoutes(v1, h.Statistics)
	addRecipeRoutes(v1, h.Recipe)

	return router
}
