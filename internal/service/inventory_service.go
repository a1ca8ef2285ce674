// backend-go/internal/service/inventory_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/smartshelfx/backend-go/internal/cache"
	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/repository"
)

// InventoryService records stock movements. Product stock only ever changes
// here: each movement appends a transaction row and updates the product's
// current stock in the same unit of work.
type InventoryService struct {
	store     repository.TxStore
	alerts    *AlertService
	forecasts cache.ForecastCache
}

func NewInventoryService(store repository.TxStore, alerts *AlertService, forecasts cache.ForecastCache) *InventoryService {
	return &InventoryService{
		store:     store,
		alerts:    alerts,
		forecasts: forecasts,
	}
}

// RecordMovement applies one IN or OUT movement to a product. OUT movements
// may not exceed the current stock. After commit, stock falling to the
// reorder level raises a low-stock alert and stock recovering above it
// resolves any active ones, both best-effort against the returned product.
func (s *InventoryService) RecordMovement(ctx context.Context, productID int64, quantity int, direction domain.Direction, notes, reference string) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	var delta int
	switch direction {
	case domain.DirectionIn:
		delta = quantity
	case domain.DirectionOut:
		delta = -quantity
	default:
		return nil, &domain.ValidationError{Field: "direction", Reason: "must be IN or OUT"}
	}

	var updated *domain.Product
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		product, err := tx.FindProductByID(ctx, productID)
		if err != nil {
			return err
		}

		movement := &domain.StockTransaction{
			ProductID:       productID,
			Quantity:        quantity,
			Direction:       direction,
			Notes:           notes,
			ReferenceNumber: reference,
		}
		if err := tx.CreateStockTransaction(ctx, movement); err != nil {
			return err
		}

		// The adjustment is relative and guarded in SQL: a concurrent
		// movement committed after the read above cannot be overwritten
		// with stale arithmetic or drive stock negative.
		newStock, err := tx.AdjustProductStock(ctx, productID, delta)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return &domain.ValidationError{
					Field:  "quantity",
					Reason: fmt.Sprintf("insufficient stock: have %d, requested %d", product.CurrentStock, quantity),
				}
			}
			return err
		}

		product.CurrentStock = newStock
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cerr := s.forecasts.Invalidate(ctx, productID); cerr != nil {
		log.Warn().Err(cerr).Int64("product_id", productID).Msg("forecast cache invalidation failed")
	}

	s.reconcileStockAlerts(ctx, updated)

	return updated, nil
}

// reconcileStockAlerts raises or clears stock alerts to match the product's
// post-movement state. Alert bookkeeping never fails a movement.
func (s *InventoryService) reconcileStockAlerts(ctx context.Context, product *domain.Product) {
	if product.IsLowStock() {
		if _, _, err := s.alerts.CreateLowStockAlert(ctx, product); err != nil {
			log.Warn().Err(err).Int64("product_id", product.ID).Msg("low stock alert failed")
		}
		return
	}

	for _, typ := range []domain.AlertType{domain.AlertLowStock, domain.AlertOutOfStock} {
		if _, err := s.alerts.ResolveAllForProductAndType(ctx, product.ID, typ); err != nil {
			log.Warn().Err(err).Int64("product_id", product.ID).Str("type", string(typ)).Msg("alert resolve failed")
		}
	}
}
