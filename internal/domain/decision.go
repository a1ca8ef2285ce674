package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventorySnapshot is the read-only aggregate of a product's state used as
// decision input. Built once per orchestration run; never written back.
type InventorySnapshot struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"current_stock"`
	ReorderLevel int             `json:"reorder_level"`
	SafetyStock  int             `json:"safety_stock"`
	LeadTimeDays int             `json:"lead_time_days"`
	Price        decimal.Decimal `json:"price"`
	VendorID     *int64          `json:"vendor_id"`
	VendorName   string          `json:"vendor_name"`

	ShortWindowDays int `json:"short_window_days"`
	LongWindowDays  int `json:"long_window_days"`
	UnitsSoldShort  int `json:"units_sold_short"`
	UnitsSoldLong   int `json:"units_sold_long"`
	SalesTxCount    int `json:"sales_tx_count"`

	// OnOrderQty sums quantities across purchase orders still in a
	// non-terminal status (PENDING, APPROVED, ORDERED).
	OnOrderQty  int `json:"on_order_qty"`
	OpenPOCount int `json:"open_po_count"`
}

// AvgDailySales returns average daily sales over the short window.
func (s *InventorySnapshot) AvgDailySales() float64 {
	if s.ShortWindowDays <= 0 {
		return 0
	}
	return float64(s.UnitsSoldShort) / float64(s.ShortWindowDays)
}

// Decision is the structured verdict parsed from the oracle's response.
// Transient: its fields are projected into Forecast, Alert, and
// PurchaseOrder records, never persisted as its own row.
type Decision struct {
	Verdict                    Verdict   `json:"decision"`
	ExpectedDemand             int       `json:"expected_demand"`
	ForecastPeriodDays         int       `json:"forecast_period_days"`
	RecommendedReorderQuantity int       `json:"recommended_reorder_quantity"`
	RecommendedOrderQty        int       `json:"recommended_order_qty"`
	RiskLevel                  RiskLevel `json:"risk_level"`
	Explanation                string    `json:"explanation"`
	ManagerSummary             string    `json:"manager_summary"`
}

// RestockResult is the composite response of one orchestration run.
// Alert and PurchaseOrder sections are present only when created.
type RestockResult struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	SKU          string `json:"sku"`
	CurrentStock int    `json:"current_stock"`
	ReorderLevel int    `json:"reorder_level"`
	SafetyStock  int    `json:"safety_stock"`
	LeadTimeDays int    `json:"lead_time_days"`
	VendorName   string `json:"vendor_name"`

	ForecastID   int64     `json:"forecast_id"`
	ForecastDate time.Time `json:"forecast_date"`

	AlertID       *int64   `json:"alert_id,omitempty"`
	AlertTitle    string   `json:"alert_title,omitempty"`
	AlertPriority Priority `json:"alert_priority,omitempty"`

	POID     *int64   `json:"po_id,omitempty"`
	PONumber string   `json:"po_number,omitempty"`
	POStatus POStatus `json:"po_status,omitempty"`

	Decision Decision `json:"decision"`
}
