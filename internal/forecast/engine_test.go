package forecast

import (
	"testing"
	"time"

	"github.com/smartshelfx/backend-go/internal/domain"
)

func txAt(daysAgo int, direction domain.Direction, qty int) domain.StockTransaction {
	return domain.StockTransaction{
		ProductID: 1,
		Quantity:  qty,
		Direction: direction,
		Timestamp: time.Now().AddDate(0, 0, -daysAgo).Truncate(time.Hour),
	}
}

func TestForecastSevenDaySeries(t *testing.T) {
	// One sale per day for 7 days: most recent day sold 10, oldest 70.
	var txs []domain.StockTransaction
	quantities := []int{10, 20, 30, 40, 50, 60, 70}
	for i, q := range quantities {
		txs = append(txs, txAt(i, domain.DirectionOut, q))
	}

	result := NewEngine().Forecast(1, txs)

	if result.Status != StatusOK {
		t.Fatalf("status = %s, expected OK", result.Status)
	}
	if result.Avg7 != 40.0 {
		t.Errorf("avg7 = %v, expected 40.0", result.Avg7)
	}
	if result.Next7Days != 280.0 {
		t.Errorf("next 7 days = %v, expected 280.0", result.Next7Days)
	}
	if len(result.DailySeries) != 7 {
		t.Fatalf("series length = %d, expected 7", len(result.DailySeries))
	}
}

func TestForecastWindowUsesMostRecentDays(t *testing.T) {
	// 14 sale-days: the last 7 days sold 10/day, the 7 before sold 100/day.
	var txs []domain.StockTransaction
	for i := 0; i < 7; i++ {
		txs = append(txs, txAt(i, domain.DirectionOut, 10))
	}
	for i := 7; i < 14; i++ {
		txs = append(txs, txAt(i, domain.DirectionOut, 100))
	}

	result := NewEngine().Forecast(1, txs)

	// avg7 must cover the recent cheap week, not the old expensive one.
	if result.Avg7 != 10.0 {
		t.Errorf("avg7 = %v, expected 10.0 (most recent 7 sale-days)", result.Avg7)
	}
	if result.Avg14 != 55.0 {
		t.Errorf("avg14 = %v, expected 55.0", result.Avg14)
	}
	if !result.DailySeries[0].Date.After(result.DailySeries[len(result.DailySeries)-1].Date) {
		t.Error("daily series must be ordered most recent first")
	}
}

func TestForecastNoData(t *testing.T) {
	result := NewEngine().Forecast(42, nil)

	if result.Status != StatusNoData {
		t.Fatalf("status = %s, expected NO_DATA", result.Status)
	}
	if result.Avg7 != 0 || result.Avg14 != 0 || result.Next7Days != 0 || result.DailySeries != nil {
		t.Error("NO_DATA result must not carry numeric forecast fields")
	}
}

func TestForecastNoSales(t *testing.T) {
	txs := []domain.StockTransaction{
		txAt(1, domain.DirectionIn, 100),
		txAt(3, domain.DirectionIn, 50),
	}

	result := NewEngine().Forecast(42, txs)

	if result.Status != StatusNoSales {
		t.Fatalf("status = %s, expected NO_SALES", result.Status)
	}
	if result.Next7Days != 0 || result.DailySeries != nil {
		t.Error("NO_SALES result must not carry numeric forecast fields")
	}
}

func TestForecastGroupsSameDaySales(t *testing.T) {
	now := time.Now()
	txs := []domain.StockTransaction{
		{Direction: domain.DirectionOut, Quantity: 3, Timestamp: now.Add(-1 * time.Hour)},
		{Direction: domain.DirectionOut, Quantity: 4, Timestamp: now.Add(-2 * time.Hour)},
		{Direction: domain.DirectionIn, Quantity: 99, Timestamp: now.Add(-3 * time.Hour)},
	}

	result := NewEngine().Forecast(7, txs)

	if result.Status != StatusOK {
		t.Fatalf("status = %s, expected OK", result.Status)
	}
	if len(result.DailySeries) != 1 {
		t.Fatalf("series length = %d, expected 1 grouped day", len(result.DailySeries))
	}
	if result.DailySeries[0].Units != 7 {
		t.Errorf("grouped units = %d, expected 7", result.DailySeries[0].Units)
	}
	if result.Avg7 != 7.0 {
		t.Errorf("avg7 = %v, expected 7.0", result.Avg7)
	}
	if result.Next7Days != 49.0 {
		t.Errorf("next 7 days = %v, expected 49.0", result.Next7Days)
	}
}
