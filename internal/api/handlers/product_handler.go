// backend-go/internal/api/handlers/product_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/service"
)

type ProductHandler struct {
	catalog   *service.CatalogService
	inventory *service.InventoryService
}

func NewProductHandler(catalog *service.CatalogService, inventory *service.InventoryService) *ProductHandler {
	return &ProductHandler{catalog: catalog, inventory: inventory}
}

func (h *ProductHandler) List(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "true"))

	products, err := h.catalog.List(c.Request.Context(), activeOnly)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), productID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

type movementRequest struct {
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Direction string `json:"direction" binding:"required,oneof=IN OUT in out"`
	Notes     string `json:"notes"`
	Reference string `json:"reference"`
}

// RecordMovement books one stock movement against a product.
func (h *ProductHandler) RecordMovement(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	direction, _ := domain.ParseDirection(req.Direction)

	product, err := h.inventory.RecordMovement(c.Request.Context(), productID, req.Quantity, direction, req.Notes, req.Reference)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
