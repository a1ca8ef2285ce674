// backend-go/internal/service/snapshot.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/repository"
)

const (
	defaultShortWindowDays = 30
	defaultLongWindowDays  = 90
)

// SnapshotBuilder assembles the read-only inventory snapshot fed to the
// decision oracle. It never writes.
type SnapshotBuilder struct {
	shortWindowDays int
	longWindowDays  int
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		shortWindowDays: defaultShortWindowDays,
		longWindowDays:  defaultLongWindowDays,
	}
}

// Build loads the product, its sales history over the long window, and its
// open purchase orders, and folds them into a snapshot. Delivered and
// cancelled orders never count toward the on-order quantity.
func (b *SnapshotBuilder) Build(ctx context.Context, store repository.Store, productID int64) (*domain.InventorySnapshot, error) {
	product, err := store.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	since := now.AddDate(0, 0, -b.longWindowDays)
	shortCutoff := now.AddDate(0, 0, -b.shortWindowDays)

	txs, err := store.ListStockTransactions(ctx, productID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock transactions: %w", err)
	}

	var unitsShort, unitsLong, salesCount int
	for _, tx := range txs {
		if tx.Direction != domain.DirectionOut {
			continue
		}
		unitsLong += tx.Quantity
		salesCount++
		if !tx.Timestamp.Before(shortCutoff) {
			unitsShort += tx.Quantity
		}
	}

	pos, err := store.ListOpenPurchaseOrders(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load open purchase orders: %w", err)
	}

	var onOrder int
	for _, po := range pos {
		onOrder += po.Quantity
	}

	return &domain.InventorySnapshot{
		ProductID:    product.ID,
		ProductName:  product.Name,
		SKU:          product.SKU,
		Category:     product.Category,
		CurrentStock: product.CurrentStock,
		ReorderLevel: product.ReorderLevel,
		SafetyStock:  product.SafetyStock,
		LeadTimeDays: product.LeadTimeDays,
		Price:        product.Price,
		VendorID:     product.VendorID,
		VendorName:   product.VendorName,

		ShortWindowDays: b.shortWindowDays,
		LongWindowDays:  b.longWindowDays,
		UnitsSoldShort:  unitsShort,
		UnitsSoldLong:   unitsLong,
		SalesTxCount:    salesCount,

		OnOrderQty:  onOrder,
		OpenPOCount: len(pos),
	}, nil
}
