// backend-go/internal/forecast/engine.go
package forecast

import (
	"sort"
	"time"

	"github.com/smartshelfx/backend-go/internal/domain"
)

// Status classifies the outcome of a local forecast run.
type Status string

const (
	// StatusOK means the numeric fields are populated.
	StatusOK Status = "OK"
	// StatusNoData means the product has no transaction history at all.
	StatusNoData Status = "NO_DATA"
	// StatusNoSales means transactions exist but none are outbound.
	StatusNoSales Status = "NO_SALES"
)

// DailySales is one day's total outbound quantity.
type DailySales struct {
	Date  time.Time `json:"date"`
	Units int       `json:"units"`
}

// Result is the moving-average projection for one product. Numeric fields
// are meaningful only when Status is OK.
type Result struct {
	ProductID   int64        `json:"product_id"`
	Status      Status       `json:"status"`
	Avg7        float64      `json:"avg_7_day,omitempty"`
	Avg14       float64      `json:"avg_14_day,omitempty"`
	Next7Days   float64      `json:"next_7_days_prediction,omitempty"`
	DailySeries []DailySales `json:"daily_sales,omitempty"`
}

// Engine computes simple moving-average demand projections from transaction
// history. Pure computation: no I/O, deterministic, total over any input.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Forecast groups outbound transactions by calendar day, averages the most
// recent sale-days, and projects demand for the next 7 days as avg7 * 7.
// Days without sales are absent from the series, not zero-filled.
func (e *Engine) Forecast(productID int64, txs []domain.StockTransaction) Result {
	if len(txs) == 0 {
		return Result{ProductID: productID, Status: StatusNoData}
	}

	totals := make(map[time.Time]int)
	for _, tx := range txs {
		if tx.Direction != domain.DirectionOut {
			continue
		}
		day := localDay(tx.Timestamp)
		totals[day] += tx.Quantity
	}

	if len(totals) == 0 {
		return Result{ProductID: productID, Status: StatusNoSales}
	}

	series := make([]DailySales, 0, len(totals))
	for day, units := range totals {
		series = append(series, DailySales{Date: day, Units: units})
	}
	// Most recent day first: the moving-average window must cover the
	// latest sale-days, not the oldest.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.After(series[j].Date)
	})

	avg7 := movingAverage(series, 7)
	avg14 := movingAverage(series, 14)

	return Result{
		ProductID:   productID,
		Status:      StatusOK,
		Avg7:        avg7,
		Avg14:       avg14,
		Next7Days:   avg7 * 7,
		DailySeries: series,
	}
}

// movingAverage averages the first min(len, period) entries of the series.
func movingAverage(series []DailySales, period int) float64 {
	if len(series) == 0 {
		return 0
	}

	count := period
	if len(series) < count {
		count = len(series)
	}

	sum := 0
	for _, d := range series[:count] {
		sum += d.Units
	}

	return float64(sum) / float64(count)
}

func localDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
