package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInventoryValue(t *testing.T) {
	p := Product{
		Price:        decimal.RequireFromString("19.99"),
		CurrentStock: 3,
	}

	if got, want := p.InventoryValue(), decimal.RequireFromString("59.97"); !got.Equal(want) {
		t.Errorf("inventory value = %s, want %s", got, want)
	}
}

func TestAlertIsActive(t *testing.T) {
	a := Alert{}
	if !a.IsActive() {
		t.Error("unread alert without expiry should be active")
	}

	a.IsRead = true
	if a.IsActive() {
		t.Error("read alert should not be active")
	}
}
