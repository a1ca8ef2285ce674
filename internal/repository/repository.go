// backend-go/internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/smartshelfx/backend-go/internal/domain"
)

// Store is the persistence surface the forecasting core depends on.
// Implementations must allow every method to participate in one atomic
// transaction via TxStore.WithTx.
type Store interface {
	FindProductByID(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	// AdjustProductStock applies a relative stock change in one guarded
	// statement and returns the resulting stock. A change that would take
	// stock below zero fails with ErrInsufficientStock and writes nothing,
	// even when a concurrent movement committed after the caller's read.
	AdjustProductStock(ctx context.Context, productID int64, delta int) (int, error)

	// ListStockTransactions returns all transactions for a product with
	// timestamp >= since, newest first.
	ListStockTransactions(ctx context.Context, productID int64, since time.Time) ([]domain.StockTransaction, error)
	CreateStockTransaction(ctx context.Context, tx *domain.StockTransaction) error

	// ListOpenPurchaseOrders returns purchase orders in a non-terminal
	// status (PENDING, APPROVED, ORDERED) for a product, newest first.
	ListOpenPurchaseOrders(ctx context.Context, productID int64) ([]domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, productID int64) ([]domain.PurchaseOrder, error)
	FindPurchaseOrderByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error)
	SavePurchaseOrder(ctx context.Context, po *domain.PurchaseOrder) error

	// UpdatePurchaseOrderStatus moves the order from one status to another
	// as a compare-and-swap: when the order is no longer in the expected
	// status the update fails with ErrConflict, so two concurrent
	// transitions cannot both succeed.
	UpdatePurchaseOrderStatus(ctx context.Context, id int64, from, to domain.POStatus) error

	SaveForecast(ctx context.Context, f *domain.Forecast) error
	ListRecentForecasts(ctx context.Context, productID int64, since time.Time) ([]domain.Forecast, error)

	// CreateAlertIfAbsent inserts the alert unless an unread alert of the
	// same (product, type) pair already exists. Reports whether a row was
	// created. Must be race-free under concurrent runs for the same
	// product: backed by a uniqueness guarantee, not read-then-write.
	CreateAlertIfAbsent(ctx context.Context, alert *domain.Alert) (bool, error)
	FindActiveAlert(ctx context.Context, productID int64, typ domain.AlertType) (*domain.Alert, error)
	ResolveAlert(ctx context.Context, alertID int64) error
	ResolveAlertsForProductAndType(ctx context.Context, productID int64, typ domain.AlertType) (int64, error)
	ListUnreadAlerts(ctx context.Context) ([]domain.Alert, error)
	MarkAllAlertsRead(ctx context.Context) (int64, error)
}

// TxStore is a Store that can open an atomic unit of work. The Store handed
// to fn sees and writes uncommitted state; everything commits together or
// rolls back together.
type TxStore interface {
	Store
	WithTx(ctx context.Context, fn func(Store) error) error
}
