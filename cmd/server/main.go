// backend-go/cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartshelfx/backend-go/internal/ai"
	"github.com/smartshelfx/backend-go/internal/api"
	"github.com/smartshelfx/backend-go/internal/cache"
	"github.com/smartshelfx/backend-go/internal/config"
	"github.com/smartshelfx/backend-go/internal/notify"
	"github.com/smartshelfx/backend-go/internal/repository/postgres"
	"github.com/smartshelfx/backend-go/internal/service"
	"github.com/smartshelfx/backend-go/internal/storage"
	"github.com/smartshelfx/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := postgres.NewStore(db)

	forecastCache, err := cache.NewForecastCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Forecast cache unavailable, continuing without it")
		forecastCache = cache.NewNoopForecastCache()
	}

	archive, err := storage.New(cfg.Archive)
	if err != nil {
		log.Fatalf("Failed to initialize exchange archive: %v", err)
	}

	notifier := notify.New(cfg.Notify)
	oracle := ai.NewOracle(cfg.Oracle)

	// Initialize services
	alertService := service.NewAlertService(store, notifier)
	forecastService := service.NewForecastService(store, forecastCache)
	inventoryService := service.NewInventoryService(store, alertService, forecastCache)
	restockService := service.NewRestockService(store, oracle, alertService, forecastCache, notifier, archive, cfg.Oracle.Model)
	catalogService := service.NewCatalogService(store)
	poService := service.NewPurchaseOrderService(store, inventoryService)

	router := api.NewRouter(&api.Services{
		Restock:   restockService,
		Forecasts: forecastService,
		Alerts:    alertService,
		Catalog:   catalogService,
		Inventory: inventoryService,
		Orders:    poService,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
