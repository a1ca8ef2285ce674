// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/smartshelfx/backend-go/internal/api/handlers"
	"github.com/smartshelfx/backend-go/internal/api/middleware"
	"github.com/smartshelfx/backend-go/internal/service"
)

type Services struct {
	Restock   *service.RestockService
	Forecasts *service.ForecastService
	Alerts    *service.AlertService
	Catalog   *service.CatalogService
	Inventory *service.InventoryService
	Orders    *service.PurchaseOrderService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Restock != nil && services.Forecasts != nil {
			aiHandler := handlers.NewAIHandler(services.Restock, services.Forecasts)
			aiGroup := apiGroup.Group("/ai")
			{
				aiGroup.POST("/forecast/:id", aiHandler.ForecastAndReorder)
				aiGroup.GET("/forecast/:id/local", aiHandler.LocalForecast)
			}
		}

		if services.Alerts != nil {
			alertHandler := handlers.NewAlertHandler(services.Alerts)
			alertGroup := apiGroup.Group("/alerts")
			{
				alertGroup.GET("/unread", alertHandler.ListUnread)
				alertGroup.PUT("/:id/read", alertHandler.MarkRead)
				alertGroup.PUT("/read_all", alertHandler.MarkAllRead)
			}
		}

		if services.Catalog != nil && services.Inventory != nil {
			productHandler := handlers.NewProductHandler(services.Catalog, services.Inventory)
			productGroup := apiGroup.Group("/products")
			{
				productGroup.GET("", productHandler.List)
				productGroup.GET("/:id", productHandler.Get)
				productGroup.POST("/:id/movements", productHandler.RecordMovement)
			}

			if services.Orders != nil {
				poHandler := handlers.NewPOHandler(services.Orders)
				productGroup.GET("/:id/purchase_orders", poHandler.ListForProduct)
				poGroup := apiGroup.Group("/purchase_orders")
				{
					poGroup.GET("/:id", poHandler.Get)
					poGroup.PUT("/:id/status", poHandler.UpdateStatus)
				}
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
