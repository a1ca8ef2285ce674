package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartshelfx/backend-go/internal/cache"
	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/forecast"
)

func TestLocalForecastComputesMovingAverage(t *testing.T) {
	store := newFakeStore()
	seedWidget(store)
	now := time.Now()
	for i := 0; i < 7; i++ {
		store.txs = append(store.txs, domain.StockTransaction{
			ProductID: 1,
			Quantity:  10,
			Direction: domain.DirectionOut,
			Timestamp: now.AddDate(0, 0, -i),
		})
	}

	svc := NewForecastService(store, cache.NewNoopForecastCache())
	result, err := svc.LocalForecast(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != forecast.StatusOK {
		t.Fatalf("status = %q, want OK", result.Status)
	}
	if result.Avg7 != 10 {
		t.Errorf("avg7 = %v, want 10", result.Avg7)
	}
	if result.Next7Days != 70 {
		t.Errorf("next 7 days = %v, want 70", result.Next7Days)
	}
}

func TestLocalForecastNoHistory(t *testing.T) {
	store := newFakeStore()
	seedWidget(store)

	svc := NewForecastService(store, cache.NewNoopForecastCache())
	result, err := svc.LocalForecast(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != forecast.StatusNoData {
		t.Errorf("status = %q, want NO_DATA", result.Status)
	}
}

func TestLocalForecastUnknownProduct(t *testing.T) {
	store := newFakeStore()

	svc := NewForecastService(store, cache.NewNoopForecastCache())
	if _, err := svc.LocalForecast(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
