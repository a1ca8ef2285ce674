// backend-go/internal/service/forecast_service.go
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smartshelfx/backend-go/internal/cache"
	"github.com/smartshelfx/backend-go/internal/forecast"
	"github.com/smartshelfx/backend-go/internal/repository"
)

// ForecastService serves the local moving-average forecast. It never calls
// the oracle and stays available when the oracle is down.
type ForecastService struct {
	store  repository.TxStore
	engine *forecast.Engine
	cache  cache.ForecastCache
}

func NewForecastService(store repository.TxStore, cache cache.ForecastCache) *ForecastService {
	return &ForecastService{
		store:  store,
		engine: forecast.NewEngine(),
		cache:  cache,
	}
}

// LocalForecast computes the moving-average projection for a product from
// its full transaction history. Results are cached per product until the
// next orchestration run invalidates them.
func (s *ForecastService) LocalForecast(ctx context.Context, productID int64) (*forecast.Result, error) {
	if cached, ok, err := s.cache.Get(ctx, productID); err != nil {
		log.Warn().Err(err).Int64("product_id", productID).Msg("forecast cache read failed")
	} else if ok {
		return cached, nil
	}

	// Existence check: a missing product is a 404, not an empty forecast.
	if _, err := s.store.FindProductByID(ctx, productID); err != nil {
		return nil, err
	}

	txs, err := s.store.ListStockTransactions(ctx, productID, time.Time{})
	if err != nil {
		return nil, err
	}

	result := s.engine.Forecast(productID, txs)

	if err := s.cache.Set(ctx, productID, &result); err != nil {
		log.Warn().Err(err).Int64("product_id", productID).Msg("forecast cache write failed")
	}

	return &result, nil
}
