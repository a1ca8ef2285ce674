package service

import (
	"context"
	"testing"

	"github.com/smartshelfx/backend-go/internal/domain"
)

func TestCreateIfAbsentAppliesDefaults(t *testing.T) {
	store := newFakeStore()
	svc := NewAlertService(store, &fakeNotifier{})

	alert, created, err := svc.CreateIfAbsent(context.Background(), store, AlertConfig{
		ProductID: 1,
		Type:      domain.AlertLowStock,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected alert to be created")
	}
	if alert.Priority != domain.PriorityMedium {
		t.Errorf("priority = %q, want MEDIUM default", alert.Priority)
	}
	if alert.Source != domain.AlertSourceSystem {
		t.Errorf("source = %q, want SYSTEM default", alert.Source)
	}
	if alert.Title == "" {
		t.Error("title should default to the alert type")
	}
}

func TestCreateIfAbsentSuppressesDuplicates(t *testing.T) {
	store := newFakeStore()
	svc := NewAlertService(store, &fakeNotifier{})
	cfg := AlertConfig{ProductID: 1, Type: domain.AlertPredictedStockout}

	if _, created, err := svc.CreateIfAbsent(context.Background(), store, cfg); err != nil || !created {
		t.Fatalf("first create: created=%v err=%v", created, err)
	}
	if _, created, err := svc.CreateIfAbsent(context.Background(), store, cfg); err != nil || created {
		t.Fatalf("second create: created=%v err=%v, want suppressed", created, err)
	}

	// A different type for the same product is not a duplicate.
	if _, created, err := svc.CreateIfAbsent(context.Background(), store, AlertConfig{ProductID: 1, Type: domain.AlertLowStock}); err != nil || !created {
		t.Fatalf("different type: created=%v err=%v", created, err)
	}
}

func TestCreateIfAbsentAllowsNewAlertAfterResolve(t *testing.T) {
	store := newFakeStore()
	svc := NewAlertService(store, &fakeNotifier{})
	cfg := AlertConfig{ProductID: 1, Type: domain.AlertPredictedStockout}

	alert, _, err := svc.CreateIfAbsent(context.Background(), store, cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Resolve(context.Background(), alert.ID); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if _, created, err := svc.CreateIfAbsent(context.Background(), store, cfg); err != nil || !created {
		t.Fatalf("create after resolve: created=%v err=%v", created, err)
	}
}

func TestCreateIfAbsentValidation(t *testing.T) {
	store := newFakeStore()
	svc := NewAlertService(store, &fakeNotifier{})

	if _, _, err := svc.CreateIfAbsent(context.Background(), store, AlertConfig{Type: domain.AlertLowStock}); err == nil {
		t.Error("expected error for missing product id")
	}
	if _, _, err := svc.CreateIfAbsent(context.Background(), store, AlertConfig{ProductID: 1}); err == nil {
		t.Error("expected error for missing type")
	}
}

func TestCreateLowStockAlertNotifies(t *testing.T) {
	store := newFakeStore()
	product := seedWidget(store)
	notifier := &fakeNotifier{}
	svc := NewAlertService(store, notifier)

	_, created, err := svc.CreateLowStockAlert(context.Background(), product)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected alert to be created")
	}
	if len(notifier.subjects) != 1 {
		t.Errorf("expected 1 notification, got %d", len(notifier.subjects))
	}

	// Out of stock escalates to URGENT.
	product.CurrentStock = 0
	store.alerts = nil
	alert, _, err := svc.CreateLowStockAlert(context.Background(), product)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alert.Type != domain.AlertOutOfStock {
		t.Errorf("type = %q, want OUT_OF_STOCK", alert.Type)
	}
	if alert.Priority != domain.PriorityUrgent {
		t.Errorf("priority = %q, want URGENT", alert.Priority)
	}
}

func TestMarkAllRead(t *testing.T) {
	store := newFakeStore()
	svc := NewAlertService(store, &fakeNotifier{})

	for _, typ := range []domain.AlertType{domain.AlertLowStock, domain.AlertPredictedStockout} {
		if _, _, err := svc.CreateIfAbsent(context.Background(), store, AlertConfig{ProductID: 1, Type: typ}); err != nil {
			t.Fatalf("create %s: %v", typ, err)
		}
	}

	n, err := svc.MarkAllRead(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("marked %d alerts read, want 2", n)
	}

	unread, err := svc.ListUnread(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unread) != 0 {
		t.Errorf("expected no unread alerts, got %d", len(unread))
	}
}
