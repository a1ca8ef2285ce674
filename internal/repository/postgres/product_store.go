package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/smartshelfx/backend-go/internal/domain"
)

const productColumns = `
	p.id, p.name, p.sku,
	COALESCE(p.description, '') AS description,
	p.category, p.price,
	COALESCE(p.cost_price, 0) AS cost_price,
	p.current_stock, p.reorder_level, p.safety_stock, p.lead_time_days,
	p.vendor_id,
	COALESCE(v.name, '') AS vendor_name,
	p.active, p.created_at, p.updated_at`

func (s *Store) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN vendors v ON v.id = p.vendor_id
		WHERE p.id = $1
	`

	var product domain.Product
	if err := s.q.GetContext(ctx, &product, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	return &product, nil
}

func (s *Store) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN vendors v ON v.id = p.vendor_id
		WHERE ($1 = false OR p.active = true)
		ORDER BY p.sku ASC
	`

	var products []domain.Product
	if err := s.q.SelectContext(ctx, &products, query, activeOnly); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// AdjustProductStock applies the change relative to the committed value, so
// concurrent movements serialize on the row instead of overwriting each
// other with stale application-side arithmetic. The WHERE guard keeps a
// racing outbound movement from driving stock negative.
func (s *Store) AdjustProductStock(ctx context.Context, productID int64, delta int) (int, error) {
	query := `
		UPDATE products
		SET current_stock = current_stock + $2, updated_at = NOW()
		WHERE id = $1 AND current_stock + $2 >= 0
		RETURNING current_stock
	`

	var stock int
	if err := s.q.GetContext(ctx, &stock, query, productID, delta); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("product %d stock change %+d: %w", productID, delta, domain.ErrInsufficientStock)
		}
		return 0, fmt.Errorf("failed to adjust stock for product %d: %w", productID, err)
	}

	return stock, nil
}
