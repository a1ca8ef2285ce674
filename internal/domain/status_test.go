package domain

import "testing"

func TestPOStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to POStatus
		allowed  bool
	}{
		{POStatusPending, POStatusApproved, true},
		{POStatusApproved, POStatusOrdered, true},
		{POStatusOrdered, POStatusDelivered, true},
		{POStatusPending, POStatusCancelled, true},
		{POStatusApproved, POStatusCancelled, true},
		{POStatusOrdered, POStatusCancelled, true},
		{POStatusDelivered, POStatusCancelled, false},
		{POStatusCancelled, POStatusCancelled, false},
		{POStatusPending, POStatusOrdered, false},
		{POStatusPending, POStatusDelivered, false},
		{POStatusDelivered, POStatusPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestPOStatusIsOpen(t *testing.T) {
	open := []POStatus{POStatusPending, POStatusApproved, POStatusOrdered}
	for _, s := range open {
		if !s.IsOpen() {
			t.Errorf("%s should be open", s)
		}
	}
	for _, s := range []POStatus{POStatusDelivered, POStatusCancelled} {
		if s.IsOpen() {
			t.Errorf("%s should not be open", s)
		}
	}
}

func TestParseVerdictRejectsUnknown(t *testing.T) {
	if _, ok := ParseVerdict("ORDER_SOON"); ok {
		t.Fatal("ORDER_SOON must not parse as a verdict")
	}
	if v, ok := ParseVerdict("order_now"); !ok || v != VerdictOrderNow {
		t.Fatalf("order_now should parse case-insensitively, got %q ok=%v", v, ok)
	}
}

func TestParseRiskLevelDefaultsToMedium(t *testing.T) {
	cases := map[string]RiskLevel{
		"LOW":      RiskLow,
		"high":     RiskHigh,
		"CRITICAL": RiskCritical,
		"EXTREME":  RiskMedium,
		"":         RiskMedium,
	}
	for in, expected := range cases {
		if got := ParseRiskLevel(in); got != expected {
			t.Errorf("ParseRiskLevel(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestRiskLevelAlertPriority(t *testing.T) {
	cases := map[RiskLevel]Priority{
		RiskCritical: PriorityCritical,
		RiskHigh:     PriorityHigh,
		RiskLow:      PriorityLow,
		RiskMedium:   PriorityMedium,
	}
	for risk, expected := range cases {
		if got := risk.AlertPriority(); got != expected {
			t.Errorf("%s.AlertPriority() = %s, expected %s", risk, got, expected)
		}
	}
}

func TestProductStockHelpers(t *testing.T) {
	p := &Product{CurrentStock: 5, ReorderLevel: 10, SafetyStock: 3}

	if !p.IsLowStock() {
		t.Error("stock 5 with reorder level 10 should be low")
	}
	if p.IsCriticalStock() {
		t.Error("stock 5 with safety stock 3 should not be critical")
	}
	if got := p.StockDeficit(); got != 5 {
		t.Errorf("deficit = %d, expected 5", got)
	}
	if got := p.SuggestedReorderQuantity(); got != 8 {
		t.Errorf("suggested reorder = %d, expected 8", got)
	}
	if got := p.StockStatus(); got != "LOW" {
		t.Errorf("status = %s, expected LOW", got)
	}

	p.CurrentStock = 2
	if p.StockStatus() != "CRITICAL" {
		t.Error("stock 2 with safety stock 3 should be CRITICAL")
	}
	p.CurrentStock = 50
	if p.StockStatus() != "NORMAL" || p.SuggestedReorderQuantity() != 0 {
		t.Error("well stocked product should be NORMAL with no suggested reorder")
	}
}
