// backend-go/internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product tracked by the warehouse.
// CurrentStock is never mutated directly; it only changes through stock
// transactions applied by the inventory service.
type Product struct {
	ID           int64           `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	SKU          string          `json:"sku" db:"sku"`
	Description  string          `json:"description" db:"description"`
	Category     string          `json:"category" db:"category"`
	Price        decimal.Decimal `json:"price" db:"price"`
	CostPrice    decimal.Decimal `json:"cost_price" db:"cost_price"`
	CurrentStock int             `json:"current_stock" db:"current_stock"`
	ReorderLevel int             `json:"reorder_level" db:"reorder_level"`
	SafetyStock  int             `json:"safety_stock" db:"safety_stock"`
	LeadTimeDays int             `json:"lead_time_days" db:"lead_time_days"`
	VendorID     *int64          `json:"vendor_id" db:"vendor_id"`
	VendorName   string          `json:"vendor_name" db:"vendor_name"`
	Active       bool            `json:"active" db:"active"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// IsLowStock reports whether stock has fallen to or below the reorder level.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderLevel
}

// IsCriticalStock reports whether stock has fallen to or below the safety stock.
func (p *Product) IsCriticalStock() bool {
	return p.CurrentStock <= p.SafetyStock
}

// StockDeficit returns the number of units needed to reach the reorder level.
func (p *Product) StockDeficit() int {
	if d := p.ReorderLevel - p.CurrentStock; d > 0 {
		return d
	}
	return 0
}

// SuggestedReorderQuantity returns the rule-of-thumb order size: enough to
// reach the reorder level plus the safety buffer.
func (p *Product) SuggestedReorderQuantity() int {
	if q := (p.ReorderLevel + p.SafetyStock) - p.CurrentStock; q > 0 {
		return q
	}
	return 0
}

// InventoryValue returns price * current stock.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}

// StockStatus classifies the current stock as NORMAL, LOW, or CRITICAL.
func (p *Product) StockStatus() string {
	switch {
	case p.CurrentStock <= p.SafetyStock:
		return "CRITICAL"
	case p.CurrentStock <= p.ReorderLevel:
		return "LOW"
	default:
		return "NORMAL"
	}
}

// StockTransaction is an immutable record of a single stock movement.
// IN increases stock, OUT decreases it. Rows are append-only.
type StockTransaction struct {
	ID              int64     `json:"id" db:"id"`
	ProductID       int64     `json:"product_id" db:"product_id"`
	Quantity        int       `json:"quantity" db:"quantity"`
	Direction       Direction `json:"direction" db:"direction"`
	Timestamp       time.Time `json:"timestamp" db:"timestamp"`
	Notes           string    `json:"notes" db:"notes"`
	ReferenceNumber string    `json:"reference_number" db:"reference_number"`
}

// PurchaseOrder is a replenishment order placed with a vendor.
// The vendor may be unassigned.
type PurchaseOrder struct {
	ID               int64           `json:"id" db:"id"`
	PONumber         string          `json:"po_number" db:"po_number"`
	ProductID        int64           `json:"product_id" db:"product_id"`
	VendorID         *int64          `json:"vendor_id" db:"vendor_id"`
	Quantity         int             `json:"quantity" db:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price" db:"unit_price"`
	TotalAmount      decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status           POStatus        `json:"status" db:"status"`
	ExpectedDelivery *time.Time      `json:"expected_delivery" db:"expected_delivery"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// Forecast is a persisted record of one forecasting run. Immutable once
// written; ActualSales and Accuracy are filled in retrospectively.
type Forecast struct {
	ID                 int64     `json:"id" db:"id"`
	ProductID          int64     `json:"product_id" db:"product_id"`
	ForecastDate       time.Time `json:"forecast_date" db:"forecast_date"`
	PredictedDemand    int       `json:"predicted_demand" db:"predicted_demand"`
	ConfidenceScore    *float64  `json:"confidence_score" db:"confidence_score"`
	Algorithm          string    `json:"algorithm" db:"algorithm"`
	ForecastPeriodDays int       `json:"forecast_period_days" db:"forecast_period_days"`
	ActualSales        *int      `json:"actual_sales" db:"actual_sales"`
	Accuracy           *float64  `json:"accuracy" db:"accuracy"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// Algorithm tags recorded on forecast rows.
const (
	AlgorithmMovingAverage  = "MOVING_AVERAGE"
	AlgorithmOracleAssisted = "ORACLE_ASSISTED"
)

// Alert is a notification of a condition requiring attention. At most one
// unread alert per (product, type) pair may exist at a time.
type Alert struct {
	ID                 int64      `json:"id" db:"id"`
	ProductID          int64      `json:"product_id" db:"product_id"`
	Type               AlertType  `json:"type" db:"type"`
	Priority           Priority   `json:"priority" db:"priority"`
	Title              string     `json:"title" db:"title"`
	Message            string     `json:"message" db:"message"`
	Description        string     `json:"description" db:"description"`
	SuggestedAction    string     `json:"suggested_action" db:"suggested_action"`
	PredictedShortfall *float64   `json:"predicted_shortfall" db:"predicted_shortfall"`
	Source             string     `json:"source" db:"source"`
	IsRead             bool       `json:"is_read" db:"is_read"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	ResolvedAt         *time.Time `json:"resolved_at" db:"resolved_at"`
	ExpiresAt          *time.Time `json:"expires_at" db:"expires_at"`
}

// Alert source tags.
const (
	AlertSourceSystem = "SYSTEM"
	AlertSourceAI     = "AI"
)

// IsExpired reports whether the alert has passed its expiry, if any.
func (a *Alert) IsExpired() bool {
	return a.ExpiresAt != nil && time.Now().After(*a.ExpiresAt)
}

// IsActive reports whether the alert is still unread and not expired.
func (a *Alert) IsActive() bool {
	return !a.IsRead && !a.IsExpired()
}
