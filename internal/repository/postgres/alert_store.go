package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/smartshelfx/backend-go/internal/domain"
)

const alertColumns = `
	id, product_id, type, priority, title,
	COALESCE(message, '') AS message,
	COALESCE(description, '') AS description,
	COALESCE(suggested_action, '') AS suggested_action,
	predicted_shortfall, source, is_read, created_at, resolved_at, expires_at`

// CreateAlertIfAbsent relies on the partial unique index on
// (product_id, type) WHERE is_read = false, so two concurrent runs cannot
// both insert an active alert for the same pair.
func (s *Store) CreateAlertIfAbsent(ctx context.Context, alert *domain.Alert) (bool, error) {
	query := `
		INSERT INTO alerts (
			product_id, type, priority, title, message, description,
			suggested_action, predicted_shortfall, source, is_read,
			created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, $10, $11)
		ON CONFLICT (product_id, type) WHERE is_read = false DO NOTHING
		RETURNING id
	`

	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}

	err := s.q.QueryRowxContext(
		ctx, query,
		alert.ProductID, alert.Type, alert.Priority, alert.Title,
		alert.Message, alert.Description, alert.SuggestedAction,
		alert.PredictedShortfall, alert.Source,
		alert.CreatedAt, alert.ExpiresAt,
	).Scan(&alert.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// Active alert of this type already exists.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert alert for product %d: %w", alert.ProductID, err)
	}

	return true, nil
}

func (s *Store) FindActiveAlert(ctx context.Context, productID int64, typ domain.AlertType) (*domain.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE product_id = $1 AND type = $2 AND is_read = false
	`

	var alert domain.Alert
	if err := s.q.GetContext(ctx, &alert, query, productID, typ); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("active alert for product %d type %s: %w", productID, typ, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active alert: %w", err)
	}

	return &alert, nil
}

func (s *Store) ResolveAlert(ctx context.Context, alertID int64) error {
	query := `
		UPDATE alerts SET is_read = true, resolved_at = NOW()
		WHERE id = $1 AND is_read = false
	`

	res, err := s.q.ExecContext(ctx, query, alertID)
	if err != nil {
		return fmt.Errorf("failed to resolve alert %d: %w", alertID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("alert %d: %w", alertID, domain.ErrNotFound)
	}

	return nil
}

func (s *Store) ResolveAlertsForProductAndType(ctx context.Context, productID int64, typ domain.AlertType) (int64, error) {
	query := `
		UPDATE alerts SET is_read = true, resolved_at = NOW()
		WHERE product_id = $1 AND type = $2 AND is_read = false
	`

	res, err := s.q.ExecContext(ctx, query, productID, typ)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve alerts for product %d type %s: %w", productID, typ, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count resolved alerts: %w", err)
	}

	return n, nil
}

func (s *Store) ListUnreadAlerts(ctx context.Context) ([]domain.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE is_read = false
		ORDER BY created_at DESC
	`

	var alerts []domain.Alert
	if err := s.q.SelectContext(ctx, &alerts, query); err != nil {
		return nil, fmt.Errorf("failed to list unread alerts: %w", err)
	}

	return alerts, nil
}

func (s *Store) MarkAllAlertsRead(ctx context.Context) (int64, error) {
	res, err := s.q.ExecContext(ctx, `UPDATE alerts SET is_read = true, resolved_at = NOW() WHERE is_read = false`)
	if err != nil {
		return 0, fmt.Errorf("failed to mark alerts read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count marked alerts: %w", err)
	}

	return n, nil
}
