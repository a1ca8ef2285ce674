package domain

import "strings"

// Direction tags a stock transaction as an inbound or outbound movement.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// ParseDirection returns the direction for a given label (case-insensitive).
func ParseDirection(label string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "IN":
		return DirectionIn, true
	case "OUT":
		return DirectionOut, true
	}
	return "", false
}

// POStatus is the purchase order lifecycle state.
type POStatus string

const (
	POStatusPending   POStatus = "PENDING"
	POStatusApproved  POStatus = "APPROVED"
	POStatusOrdered   POStatus = "ORDERED"
	POStatusDelivered POStatus = "DELIVERED"
	POStatusCancelled POStatus = "CANCELLED"
)

var poStatuses = map[string]POStatus{
	"pending":   POStatusPending,
	"approved":  POStatusApproved,
	"ordered":   POStatusOrdered,
	"delivered": POStatusDelivered,
	"cancelled": POStatusCancelled,
}

// ParsePOStatus returns the status for a given label (case-insensitive).
func ParsePOStatus(label string) (POStatus, bool) {
	s, ok := poStatuses[strings.ToLower(strings.TrimSpace(label))]
	return s, ok
}

// IsOpen reports whether the order still counts toward on-order quantity.
// DELIVERED and CANCELLED are terminal and excluded.
func (s POStatus) IsOpen() bool {
	switch s {
	case POStatusPending, POStatusApproved, POStatusOrdered:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine permits moving to next.
// PENDING -> APPROVED -> ORDERED -> DELIVERED, with CANCELLED reachable from
// every state except DELIVERED.
func (s POStatus) CanTransitionTo(next POStatus) bool {
	if next == POStatusCancelled {
		return s != POStatusDelivered && s != POStatusCancelled
	}
	switch s {
	case POStatusPending:
		return next == POStatusApproved
	case POStatusApproved:
		return next == POStatusOrdered
	case POStatusOrdered:
		return next == POStatusDelivered
	}
	return false
}

// AlertType enumerates the alert conditions the system raises.
type AlertType string

const (
	AlertLowStock          AlertType = "LOW_STOCK"
	AlertOutOfStock        AlertType = "OUT_OF_STOCK"
	AlertRestockSuggestion AlertType = "RESTOCK_SUGGESTION"
	AlertPredictedStockout AlertType = "PREDICTED_STOCKOUT"
	AlertDemandForecast    AlertType = "DEMAND_FORECAST"
	AlertExpiryWarning     AlertType = "EXPIRY_WARNING"
	AlertDeliveryDelay     AlertType = "DELIVERY_DELAY"
	AlertSystemWarning     AlertType = "SYSTEM_WARNING"
)

var alertTypes = map[string]AlertType{
	"low_stock":          AlertLowStock,
	"out_of_stock":       AlertOutOfStock,
	"restock_suggestion": AlertRestockSuggestion,
	"predicted_stockout": AlertPredictedStockout,
	"demand_forecast":    AlertDemandForecast,
	"expiry_warning":     AlertExpiryWarning,
	"delivery_delay":     AlertDeliveryDelay,
	"system_warning":     AlertSystemWarning,
}

// ParseAlertType returns the alert type for a given label (case-insensitive).
func ParseAlertType(label string) (AlertType, bool) {
	t, ok := alertTypes[strings.ToLower(strings.TrimSpace(label))]
	return t, ok
}

// Priority ranks how urgently an alert needs attention.
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
	PriorityUrgent   Priority = "URGENT"
)

// Verdict is the oracle's top-level recommendation.
type Verdict string

const (
	VerdictOrderNow Verdict = "ORDER_NOW"
	VerdictWait     Verdict = "WAIT"
	VerdictMonitor  Verdict = "MONITOR"
)

// ParseVerdict returns the verdict for a given label (case-insensitive).
// Unknown values are rejected, never coerced.
func ParseVerdict(label string) (Verdict, bool) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "ORDER_NOW":
		return VerdictOrderNow, true
	case "WAIT":
		return VerdictWait, true
	case "MONITOR":
		return VerdictMonitor, true
	}
	return "", false
}

// RiskLevel is the oracle's stockout risk assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// ParseRiskLevel returns the risk level for a given label. Unrecognized
// values fall back to MEDIUM: risk only shapes alert priority, so a bad
// value is not worth failing the run over.
func ParseRiskLevel(label string) RiskLevel {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "LOW":
		return RiskLow
	case "MEDIUM":
		return RiskMedium
	case "HIGH":
		return RiskHigh
	case "CRITICAL":
		return RiskCritical
	}
	return RiskMedium
}

// AlertPriority maps an oracle risk level to the priority of the alert it
// triggers.
func (r RiskLevel) AlertPriority() Priority {
	switch r {
	case RiskCritical:
		return PriorityCritical
	case RiskHigh:
		return PriorityHigh
	case RiskLow:
		return PriorityLow
	}
	return PriorityMedium
}
