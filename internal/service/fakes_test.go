package service

import (
	"context"
	"fmt"
	"time"

	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/repository"
)

// fakeStore is an in-memory repository.TxStore. WithTx snapshots state and
// restores it when fn fails, mimicking a rollback.
type fakeStore struct {
	products  map[int64]*domain.Product
	txs       []domain.StockTransaction
	pos       []domain.PurchaseOrder
	forecasts []domain.Forecast
	alerts    []domain.Alert

	nextID int64

	// Interleaving hooks: run just before the guarded write, standing in
	// for a movement or transition another request committed in between.
	beforeAdjustStock    func(f *fakeStore)
	beforeUpdatePOStatus func(f *fakeStore)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[int64]*domain.Product),
		nextID:   1,
	}
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStore) AdjustProductStock(ctx context.Context, productID int64, delta int) (int, error) {
	if f.beforeAdjustStock != nil {
		hook := f.beforeAdjustStock
		f.beforeAdjustStock = nil
		hook(f)
	}
	p, ok := f.products[productID]
	if !ok {
		return 0, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}
	if p.CurrentStock+delta < 0 {
		return 0, fmt.Errorf("product %d stock change %+d: %w", productID, delta, domain.ErrInsufficientStock)
	}
	p.CurrentStock += delta
	return p.CurrentStock, nil
}

func (f *fakeStore) CreateStockTransaction(ctx context.Context, tx *domain.StockTransaction) error {
	tx.ID = f.id()
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}
	f.txs = append(f.txs, *tx)
	return nil
}

func (f *fakeStore) ListStockTransactions(ctx context.Context, productID int64, since time.Time) ([]domain.StockTransaction, error) {
	var out []domain.StockTransaction
	for _, tx := range f.txs {
		if tx.ProductID == productID && !tx.Timestamp.Before(since) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeStore) ListOpenPurchaseOrders(ctx context.Context, productID int64) ([]domain.PurchaseOrder, error) {
	var out []domain.PurchaseOrder
	for _, po := range f.pos {
		if po.ProductID == productID && po.Status.IsOpen() {
			out = append(out, po)
		}
	}
	return out, nil
}

func (f *fakeStore) ListPurchaseOrders(ctx context.Context, productID int64) ([]domain.PurchaseOrder, error) {
	var out []domain.PurchaseOrder
	for _, po := range f.pos {
		if po.ProductID == productID {
			out = append(out, po)
		}
	}
	return out, nil
}

func (f *fakeStore) FindPurchaseOrderByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	for i := range f.pos {
		if f.pos[i].ID == id {
			cp := f.pos[i]
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("purchase order %d: %w", id, domain.ErrNotFound)
}

func (f *fakeStore) UpdatePurchaseOrderStatus(ctx context.Context, id int64, from, to domain.POStatus) error {
	if f.beforeUpdatePOStatus != nil {
		hook := f.beforeUpdatePOStatus
		f.beforeUpdatePOStatus = nil
		hook(f)
	}
	for i := range f.pos {
		if f.pos[i].ID == id && f.pos[i].Status == from {
			f.pos[i].Status = to
			f.pos[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("purchase order %d is no longer %s: %w", id, from, domain.ErrConflict)
}

func (f *fakeStore) SavePurchaseOrder(ctx context.Context, po *domain.PurchaseOrder) error {
	po.ID = f.id()
	po.CreatedAt = time.Now()
	f.pos = append(f.pos, *po)
	return nil
}

func (f *fakeStore) SaveForecast(ctx context.Context, fc *domain.Forecast) error {
	fc.ID = f.id()
	fc.CreatedAt = time.Now()
	f.forecasts = append(f.forecasts, *fc)
	return nil
}

func (f *fakeStore) ListRecentForecasts(ctx context.Context, productID int64, since time.Time) ([]domain.Forecast, error) {
	var out []domain.Forecast
	for _, fc := range f.forecasts {
		if fc.ProductID == productID && !fc.ForecastDate.Before(since) {
			out = append(out, fc)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateAlertIfAbsent(ctx context.Context, alert *domain.Alert) (bool, error) {
	for _, a := range f.alerts {
		if a.ProductID == alert.ProductID && a.Type == alert.Type && !a.IsRead {
			return false, nil
		}
	}
	alert.ID = f.id()
	alert.CreatedAt = time.Now()
	f.alerts = append(f.alerts, *alert)
	return true, nil
}

func (f *fakeStore) FindActiveAlert(ctx context.Context, productID int64, typ domain.AlertType) (*domain.Alert, error) {
	for i := range f.alerts {
		if f.alerts[i].ProductID == productID && f.alerts[i].Type == typ && !f.alerts[i].IsRead {
			cp := f.alerts[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) ResolveAlert(ctx context.Context, alertID int64) error {
	now := time.Now()
	for i := range f.alerts {
		if f.alerts[i].ID == alertID {
			f.alerts[i].IsRead = true
			f.alerts[i].ResolvedAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) ResolveAlertsForProductAndType(ctx context.Context, productID int64, typ domain.AlertType) (int64, error) {
	now := time.Now()
	var n int64
	for i := range f.alerts {
		if f.alerts[i].ProductID == productID && f.alerts[i].Type == typ && !f.alerts[i].IsRead {
			f.alerts[i].IsRead = true
			f.alerts[i].ResolvedAt = &now
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ListUnreadAlerts(ctx context.Context) ([]domain.Alert, error) {
	var out []domain.Alert
	for _, a := range f.alerts {
		if !a.IsRead {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) MarkAllAlertsRead(ctx context.Context) (int64, error) {
	now := time.Now()
	var n int64
	for i := range f.alerts {
		if !f.alerts[i].IsRead {
			f.alerts[i].IsRead = true
			f.alerts[i].ResolvedAt = &now
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	before := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(before)
		return err
	}
	return nil
}

type storeState struct {
	products  map[int64]*domain.Product
	txs       []domain.StockTransaction
	pos       []domain.PurchaseOrder
	forecasts []domain.Forecast
	alerts    []domain.Alert
	nextID    int64
}

func (f *fakeStore) snapshot() storeState {
	products := make(map[int64]*domain.Product, len(f.products))
	for id, p := range f.products {
		cp := *p
		products[id] = &cp
	}
	return storeState{
		products:  products,
		txs:       append([]domain.StockTransaction(nil), f.txs...),
		pos:       append([]domain.PurchaseOrder(nil), f.pos...),
		forecasts: append([]domain.Forecast(nil), f.forecasts...),
		alerts:    append([]domain.Alert(nil), f.alerts...),
		nextID:    f.nextID,
	}
}

func (f *fakeStore) restore(s storeState) {
	f.products = s.products
	f.txs = s.txs
	f.pos = s.pos
	f.forecasts = s.forecasts
	f.alerts = s.alerts
	f.nextID = s.nextID
}

var _ repository.TxStore = (*fakeStore)(nil)

// fakeOracle returns a canned response or a canned error.
type fakeOracle struct {
	response string
	err      error
	calls    int
}

func (o *fakeOracle) Complete(ctx context.Context, prompt string) (string, error) {
	o.calls++
	if o.err != nil {
		return "", o.err
	}
	return o.response, nil
}

// fakeNotifier records sends.
type fakeNotifier struct {
	subjects []string
}

func (n *fakeNotifier) Send(ctx context.Context, subject, body string) error {
	n.subjects = append(n.subjects, subject)
	return nil
}
