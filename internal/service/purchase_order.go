// backend-go/internal/service/purchase_order.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartshelfx/backend-go/internal/domain"
)

// newPurchaseOrderDraft builds a PENDING purchase order from a snapshot and
// an order quantity. Unit price is the product's current price; expected
// delivery is today plus the vendor lead time when one is configured.
func newPurchaseOrderDraft(snap *domain.InventorySnapshot, qty int, now time.Time) (*domain.PurchaseOrder, error) {
	if qty <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	po := &domain.PurchaseOrder{
		PONumber:    newPONumber(),
		ProductID:   snap.ProductID,
		VendorID:    snap.VendorID,
		Quantity:    qty,
		UnitPrice:   snap.Price,
		TotalAmount: snap.Price.Mul(decimal.NewFromInt(int64(qty))),
		Status:      domain.POStatusPending,
	}

	if snap.LeadTimeDays > 0 {
		delivery := now.AddDate(0, 0, snap.LeadTimeDays)
		po.ExpectedDelivery = &delivery
	}

	return po, nil
}

func newPONumber() string {
	return "PO-" + strings.ToUpper(uuid.NewString()[:8])
}
