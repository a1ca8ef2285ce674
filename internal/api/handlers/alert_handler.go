// backend-go/internal/api/handlers/alert_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartshelfx/backend-go/internal/service"
)

type AlertHandler struct {
	alerts *service.AlertService
}

func NewAlertHandler(alerts *service.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

func (h *AlertHandler) ListUnread(c *gin.Context) {
	alerts, err := h.alerts.ListUnread(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "count": len(alerts)})
}

func (h *AlertHandler) MarkRead(c *gin.Context) {
	alertID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.alerts.Resolve(c.Request.Context(), alertID); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AlertHandler) MarkAllRead(c *gin.Context) {
	n, err := h.alerts.MarkAllRead(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resolved": n})
}
