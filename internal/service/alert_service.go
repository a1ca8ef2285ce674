// backend-go/internal/service/alert_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/notify"
	"github.com/smartshelfx/backend-go/internal/repository"
)

// AlertConfig is the single construction path for alerts. Every caller fills
// one of these instead of assembling domain.Alert by hand, so defaults are
// applied in exactly one place.
type AlertConfig struct {
	ProductID          int64
	Type               domain.AlertType
	Priority           domain.Priority
	Title              string
	Message            string
	Description        string
	SuggestedAction    string
	PredictedShortfall *float64
	Source             string
	ExpiresAt          *time.Time
}

type AlertService struct {
	store    repository.TxStore
	notifier notify.Notifier
}

func NewAlertService(store repository.TxStore, notifier notify.Notifier) *AlertService {
	return &AlertService{
		store:    store,
		notifier: notifier,
	}
}

// CreateIfAbsent creates the alert unless an unread one of the same type is
// already active for the product. The alert and the reported flag are valid
// only when err is nil; created is false when a duplicate suppressed the
// insert. Writes through the given store so it can join a caller's
// transaction.
func (s *AlertService) CreateIfAbsent(ctx context.Context, store repository.Store, cfg AlertConfig) (*domain.Alert, bool, error) {
	if cfg.ProductID <= 0 {
		return nil, false, &domain.ValidationError{Field: "product_id", Reason: "must be positive"}
	}
	if cfg.Type == "" {
		return nil, false, &domain.ValidationError{Field: "type", Reason: "is required"}
	}

	alert := &domain.Alert{
		ProductID:          cfg.ProductID,
		Type:               cfg.Type,
		Priority:           cfg.Priority,
		Title:              cfg.Title,
		Message:            cfg.Message,
		Description:        cfg.Description,
		SuggestedAction:    cfg.SuggestedAction,
		PredictedShortfall: cfg.PredictedShortfall,
		Source:             cfg.Source,
		ExpiresAt:          cfg.ExpiresAt,
	}
	if alert.Priority == "" {
		alert.Priority = domain.PriorityMedium
	}
	if alert.Source == "" {
		alert.Source = domain.AlertSourceSystem
	}
	if alert.Title == "" {
		alert.Title = string(alert.Type)
	}

	created, err := store.CreateAlertIfAbsent(ctx, alert)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create alert: %w", err)
	}
	if !created {
		log.Debug().
			Int64("product_id", cfg.ProductID).
			Str("type", string(cfg.Type)).
			Msg("active alert already exists, skipping")
		return nil, false, nil
	}

	return alert, true, nil
}

// CreateLowStockAlert raises a LOW_STOCK or OUT_OF_STOCK alert for the
// product and sends a best-effort notification when one is created.
func (s *AlertService) CreateLowStockAlert(ctx context.Context, product *domain.Product) (*domain.Alert, bool, error) {
	typ := domain.AlertLowStock
	priority := domain.PriorityHigh
	if product.CurrentStock <= 0 {
		typ = domain.AlertOutOfStock
		priority = domain.PriorityUrgent
	} else if !product.IsCriticalStock() {
		priority = domain.PriorityMedium
	}

	alert, created, err := s.CreateIfAbsent(ctx, s.store, AlertConfig{
		ProductID:       product.ID,
		Type:            typ,
		Priority:        priority,
		Title:           fmt.Sprintf("%s: %s", typ, product.Name),
		Message:         fmt.Sprintf("%s (%s) is down to %d units (reorder level %d)", product.Name, product.SKU, product.CurrentStock, product.ReorderLevel),
		SuggestedAction: fmt.Sprintf("Reorder %d units to restore the target level", product.SuggestedReorderQuantity()),
	})
	if err != nil || !created {
		return alert, created, err
	}

	if nerr := s.notifier.Send(ctx, alert.Title, alert.Message); nerr != nil {
		log.Warn().Err(nerr).Int64("product_id", product.ID).Msg("low stock notification failed")
	}

	return alert, true, nil
}

// Resolve marks a single alert as read.
func (s *AlertService) Resolve(ctx context.Context, alertID int64) error {
	return s.store.ResolveAlert(ctx, alertID)
}

// ResolveAllForProductAndType marks every unread alert of the given type for
// the product as read, returning how many were resolved.
func (s *AlertService) ResolveAllForProductAndType(ctx context.Context, productID int64, typ domain.AlertType) (int64, error) {
	return s.store.ResolveAlertsForProductAndType(ctx, productID, typ)
}

// ListUnread returns all unread alerts, newest first.
func (s *AlertService) ListUnread(ctx context.Context) ([]domain.Alert, error) {
	return s.store.ListUnreadAlerts(ctx)
}

// MarkAllRead marks every unread alert as read.
func (s *AlertService) MarkAllRead(ctx context.Context) (int64, error) {
	return s.store.MarkAllAlertsRead(ctx)
}
