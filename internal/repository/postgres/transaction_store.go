package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/smartshelfx/backend-go/internal/domain"
)

func (s *Store) ListStockTransactions(ctx context.Context, productID int64, since time.Time) ([]domain.StockTransaction, error) {
	query := `
		SELECT
			id, product_id, quantity, direction, timestamp,
			COALESCE(notes, '') AS notes,
			COALESCE(reference_number, '') AS reference_number
		FROM stock_transactions
		WHERE product_id = $1 AND timestamp >= $2
		ORDER BY timestamp DESC
	`

	var txs []domain.StockTransaction
	if err := s.q.SelectContext(ctx, &txs, query, productID, since); err != nil {
		return nil, fmt.Errorf("failed to list stock transactions for product %d: %w", productID, err)
	}

	return txs, nil
}

func (s *Store) CreateStockTransaction(ctx context.Context, tx *domain.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (
			product_id, quantity, direction, timestamp, notes, reference_number
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}

	if err := s.q.QueryRowxContext(
		ctx, query,
		tx.ProductID, tx.Quantity, tx.Direction, tx.Timestamp, tx.Notes, tx.ReferenceNumber,
	).Scan(&tx.ID); err != nil {
		return fmt.Errorf("failed to insert stock transaction for product %d: %w", tx.ProductID, err)
	}

	return nil
}
