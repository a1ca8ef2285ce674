// backend-go/internal/api/handlers/ai_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartshelfx/backend-go/internal/service"
)

type AIHandler struct {
	restock   *service.RestockService
	forecasts *service.ForecastService
}

func NewAIHandler(restock *service.RestockService, forecasts *service.ForecastService) *AIHandler {
	return &AIHandler{restock: restock, forecasts: forecasts}
}

// ForecastAndReorder runs the oracle-assisted restock pipeline for one
// product. The auto_order query flag lets the run draft a purchase order on
// an ORDER_NOW verdict.
func (h *AIHandler) ForecastAndReorder(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	autoOrder, _ := strconv.ParseBool(c.DefaultQuery("auto_order", "false"))

	result, err := h.restock.ForecastAndMaybeReorder(c.Request.Context(), productID, autoOrder)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// LocalForecast serves the moving-average projection. It stays available
// when the oracle is down.
func (h *AIHandler) LocalForecast(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.forecasts.LocalForecast(c.Request.Context(), productID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
