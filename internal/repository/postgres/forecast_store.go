package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/smartshelfx/backend-go/internal/domain"
)

func (s *Store) SaveForecast(ctx context.Context, f *domain.Forecast) error {
	query := `
		INSERT INTO forecasts (
			product_id, forecast_date, predicted_demand, confidence_score,
			algorithm, forecast_period_days, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	if err := s.q.QueryRowxContext(
		ctx, query,
		f.ProductID, f.ForecastDate, f.PredictedDemand, f.ConfidenceScore,
		f.Algorithm, f.ForecastPeriodDays, f.CreatedAt,
	).Scan(&f.ID); err != nil {
		return fmt.Errorf("failed to insert forecast for product %d: %w", f.ProductID, err)
	}

	return nil
}

func (s *Store) ListRecentForecasts(ctx context.Context, productID int64, since time.Time) ([]domain.Forecast, error) {
	query := `
		SELECT
			id, product_id, forecast_date, predicted_demand, confidence_score,
			algorithm, forecast_period_days, actual_sales, accuracy, created_at
		FROM forecasts
		WHERE product_id = $1 AND forecast_date >= $2
		ORDER BY forecast_date DESC
	`

	var forecasts []domain.Forecast
	if err := s.q.SelectContext(ctx, &forecasts, query, productID, since); err != nil {
		return nil, fmt.Errorf("failed to list forecasts for product %d: %w", productID, err)
	}

	return forecasts, nil
}
