// backend-go/internal/service/po_service.go
package service

import (
	"context"
	"fmt"

	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/repository"
)

// PurchaseOrderService drives purchase orders through their lifecycle.
type PurchaseOrderService struct {
	store     repository.TxStore
	inventory *InventoryService
}

func NewPurchaseOrderService(store repository.TxStore, inventory *InventoryService) *PurchaseOrderService {
	return &PurchaseOrderService{
		store:     store,
		inventory: inventory,
	}
}

// List returns all purchase orders for a product, newest first.
func (s *PurchaseOrderService) List(ctx context.Context, productID int64) ([]domain.PurchaseOrder, error) {
	return s.store.ListPurchaseOrders(ctx, productID)
}

// Get returns one purchase order by id.
func (s *PurchaseOrderService) Get(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	return s.store.FindPurchaseOrderByID(ctx, id)
}

// UpdateStatus moves a purchase order to the given status, enforcing the
// lifecycle (PENDING -> APPROVED -> ORDERED -> DELIVERED, CANCELLED from any
// non-terminal state). Marking an order DELIVERED books the received
// quantity as an IN movement; the compare-and-swap on the prior status
// guarantees at most one transition wins, so a delivery is booked once.
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, id int64, status domain.POStatus) (*domain.PurchaseOrder, error) {
	po, err := s.store.FindPurchaseOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !po.Status.CanTransitionTo(status) {
		return nil, &domain.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("cannot transition from %s to %s", po.Status, status),
		}
	}

	if err := s.store.UpdatePurchaseOrderStatus(ctx, id, po.Status, status); err != nil {
		return nil, err
	}
	po.Status = status

	if status == domain.POStatusDelivered {
		note := fmt.Sprintf("Delivery of %s", po.PONumber)
		if _, err := s.inventory.RecordMovement(ctx, po.ProductID, po.Quantity, domain.DirectionIn, note, po.PONumber); err != nil {
			return nil, fmt.Errorf("failed to book delivery of %s: %w", po.PONumber, err)
		}
	}

	return po, nil
}
