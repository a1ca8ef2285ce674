// backend-go/internal/api/handlers/po_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/service"
)

type POHandler struct {
	orders *service.PurchaseOrderService
}

func NewPOHandler(orders *service.PurchaseOrderService) *POHandler {
	return &POHandler{orders: orders}
}

func (h *POHandler) ListForProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	orders, err := h.orders.List(c.Request.Context(), productID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase_orders": orders, "count": len(orders)})
}

func (h *POHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	po, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, po)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves a purchase order through its lifecycle.
func (h *POHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	status, valid := domain.ParsePOStatus(req.Status)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status " + req.Status})
		return
	}

	po, err := h.orders.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, po)
}
