// backend-go/internal/service/restock_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/smartshelfx/backend-go/internal/ai"
	"github.com/smartshelfx/backend-go/internal/cache"
	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/notify"
	"github.com/smartshelfx/backend-go/internal/repository"
	"github.com/smartshelfx/backend-go/internal/storage"
)

const decisionForecastPeriodDays = 14

// RestockService runs the oracle-assisted restock pipeline: snapshot, oracle
// consultation, then forecast, alert, and purchase order writes in one
// transaction. The oracle is consulted before any write, so a failed run
// leaves no partial state behind.
type RestockService struct {
	store     repository.TxStore
	oracle    ai.Oracle
	snapshots *SnapshotBuilder
	alerts    *AlertService
	forecasts cache.ForecastCache
	notifier  notify.Notifier
	archive   storage.ExchangeArchive
	model     string
}

func NewRestockService(
	store repository.TxStore,
	oracle ai.Oracle,
	alerts *AlertService,
	forecasts cache.ForecastCache,
	notifier notify.Notifier,
	archive storage.ExchangeArchive,
	model string,
) *RestockService {
	return &RestockService{
		store:     store,
		oracle:    oracle,
		snapshots: NewSnapshotBuilder(),
		alerts:    alerts,
		forecasts: forecasts,
		notifier:  notifier,
		archive:   archive,
		model:     model,
	}
}

// ForecastAndMaybeReorder consults the oracle for the product and persists
// its decision. It always writes a forecast row; on an ORDER_NOW verdict it
// also raises a predicted-stockout alert (at most one active per product),
// and when autoOrder is set and the recommended quantity is positive it
// drafts a PENDING purchase order. All writes commit or roll back together.
func (s *RestockService) ForecastAndMaybeReorder(ctx context.Context, productID int64, autoOrder bool) (*domain.RestockResult, error) {
	runID := uuid.NewString()
	started := time.Now()

	snap, err := s.snapshots.Build(ctx, s.store, productID)
	if err != nil {
		return nil, err
	}

	prompt := ai.BuildDecisionPrompt(snap, decisionForecastPeriodDays)

	raw, err := s.oracle.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s.archiveExchange(runID, productID, prompt, raw)

	decision, err := ai.ParseDecision(raw)
	if err != nil {
		return nil, err
	}

	result := &domain.RestockResult{
		ProductID:    snap.ProductID,
		ProductName:  snap.ProductName,
		SKU:          snap.SKU,
		CurrentStock: snap.CurrentStock,
		ReorderLevel: snap.ReorderLevel,
		SafetyStock:  snap.SafetyStock,
		LeadTimeDays: snap.LeadTimeDays,
		VendorName:   snap.VendorName,
		Decision:     *decision,
	}

	err = s.store.WithTx(ctx, func(tx repository.Store) error {
		periodDays := decision.ForecastPeriodDays
		if periodDays <= 0 {
			periodDays = decisionForecastPeriodDays
		}

		forecastRow := &domain.Forecast{
			ProductID:          productID,
			ForecastDate:       started,
			PredictedDemand:    decision.ExpectedDemand,
			Algorithm:          domain.AlgorithmOracleAssisted,
			ForecastPeriodDays: periodDays,
		}
		if err := tx.SaveForecast(ctx, forecastRow); err != nil {
			return fmt.Errorf("failed to save forecast: %w", err)
		}
		result.ForecastID = forecastRow.ID
		result.ForecastDate = forecastRow.ForecastDate

		if decision.Verdict != domain.VerdictOrderNow {
			return nil
		}

		shortfall := float64(decision.ExpectedDemand - snap.CurrentStock)
		alert, created, err := s.alerts.CreateIfAbsent(ctx, tx, AlertConfig{
			ProductID:          productID,
			Type:               domain.AlertPredictedStockout,
			Priority:           decision.RiskLevel.AlertPriority(),
			Title:              fmt.Sprintf("Predicted stockout: %s", snap.ProductName),
			Message:            decision.ManagerSummary,
			Description:        decision.Explanation,
			SuggestedAction:    fmt.Sprintf("Order %d units now. %s", orderQuantity(decision), decision.Explanation),
			PredictedShortfall: &shortfall,
			Source:             domain.AlertSourceAI,
		})
		if err != nil {
			return err
		}
		if created {
			result.AlertID = &alert.ID
			result.AlertTitle = alert.Title
			result.AlertPriority = alert.Priority
		}

		qty := orderQuantity(decision)
		if !autoOrder || qty <= 0 {
			return nil
		}

		po, err := newPurchaseOrderDraft(snap, qty, started)
		if err != nil {
			return err
		}
		if err := tx.SavePurchaseOrder(ctx, po); err != nil {
			return fmt.Errorf("failed to save purchase order: %w", err)
		}
		result.POID = &po.ID
		result.PONumber = po.PONumber
		result.POStatus = po.Status

		return nil
	})
	if err != nil {
		return nil, err
	}

	if cerr := s.forecasts.Invalidate(ctx, productID); cerr != nil {
		log.Warn().Err(cerr).Int64("product_id", productID).Msg("forecast cache invalidation failed")
	}

	if decision.Verdict == domain.VerdictOrderNow {
		subject := fmt.Sprintf("Restock recommended: %s", snap.ProductName)
		if nerr := s.notifier.Send(ctx, subject, decision.ManagerSummary); nerr != nil {
			log.Warn().Err(nerr).Int64("product_id", productID).Msg("restock notification failed")
		}
	}

	log.Info().
		Str("run_id", runID).
		Int64("product_id", productID).
		Str("verdict", string(decision.Verdict)).
		Bool("auto_order", autoOrder).
		Dur("elapsed", time.Since(started)).
		Msg("restock run completed")

	return result, nil
}

// orderQuantity picks the quantity to order: the oracle's final order figure,
// falling back to the reorder recommendation when that is unset.
func orderQuantity(d *domain.Decision) int {
	if d.RecommendedOrderQty > 0 {
		return d.RecommendedOrderQty
	}
	return d.RecommendedReorderQuantity
}

// archiveExchange stores the raw oracle round trip for later diagnostics.
// Best-effort: runs in the background with its own deadline.
func (s *RestockService) archiveExchange(runID string, productID int64, prompt, response string) {
	ex := storage.Exchange{
		RunID:     runID,
		ProductID: productID,
		Model:     s.model,
		Prompt:    prompt,
		Response:  response,
		CreatedAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.archive.Archive(ctx, ex); err != nil {
			log.Warn().Err(err).Str("run_id", runID).Msg("oracle exchange archive failed")
		}
	}()
}
