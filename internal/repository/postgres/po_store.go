package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/smartshelfx/backend-go/internal/domain"
)

func (s *Store) ListOpenPurchaseOrders(ctx context.Context, productID int64) ([]domain.PurchaseOrder, error) {
	// DELIVERED and CANCELLED are terminal and never count as on-order.
	query := `
		SELECT
			id, po_number, product_id, vendor_id, quantity,
			COALESCE(unit_price, 0) AS unit_price,
			COALESCE(total_amount, 0) AS total_amount,
			status, expected_delivery, created_at, updated_at
		FROM purchase_orders
		WHERE product_id = $1 AND status IN ('PENDING', 'APPROVED', 'ORDERED')
		ORDER BY created_at DESC
	`

	var orders []domain.PurchaseOrder
	if err := s.q.SelectContext(ctx, &orders, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list open purchase orders for product %d: %w", productID, err)
	}

	return orders, nil
}

func (s *Store) ListPurchaseOrders(ctx context.Context, productID int64) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT
			id, po_number, product_id, vendor_id, quantity,
			COALESCE(unit_price, 0) AS unit_price,
			COALESCE(total_amount, 0) AS total_amount,
			status, expected_delivery, created_at, updated_at
		FROM purchase_orders
		WHERE product_id = $1
		ORDER BY created_at DESC
	`

	var orders []domain.PurchaseOrder
	if err := s.q.SelectContext(ctx, &orders, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list purchase orders for product %d: %w", productID, err)
	}

	return orders, nil
}

func (s *Store) FindPurchaseOrderByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	query := `
		SELECT
			id, po_number, product_id, vendor_id, quantity,
			COALESCE(unit_price, 0) AS unit_price,
			COALESCE(total_amount, 0) AS total_amount,
			status, expected_delivery, created_at, updated_at
		FROM purchase_orders
		WHERE id = $1
	`

	var po domain.PurchaseOrder
	if err := s.q.GetContext(ctx, &po, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("purchase order %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get purchase order %d: %w", id, err)
	}

	return &po, nil
}

// UpdatePurchaseOrderStatus only flips the status when the order is still in
// the expected one, so two concurrent transitions cannot both succeed.
func (s *Store) UpdatePurchaseOrderStatus(ctx context.Context, id int64, from, to domain.POStatus) error {
	query := `
		UPDATE purchase_orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	res, err := s.q.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("failed to update purchase order %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update purchase order %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("purchase order %d is no longer %s: %w", id, from, domain.ErrConflict)
	}

	return nil
}

func (s *Store) SavePurchaseOrder(ctx context.Context, po *domain.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (
			po_number, product_id, vendor_id, quantity,
			unit_price, total_amount, status, expected_delivery,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	now := time.Now()
	if po.CreatedAt.IsZero() {
		po.CreatedAt = now
	}
	po.UpdatedAt = now

	if err := s.q.QueryRowxContext(
		ctx, query,
		po.PONumber, po.ProductID, po.VendorID, po.Quantity,
		po.UnitPrice, po.TotalAmount, po.Status, po.ExpectedDelivery,
		po.CreatedAt, po.UpdatedAt,
	).Scan(&po.ID); err != nil {
		return fmt.Errorf("failed to insert purchase order %s: %w", po.PONumber, err)
	}

	return nil
}
