// backend-go/internal/repository/postgres/store.go
package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/smartshelfx/backend-go/internal/repository"
)

// querier is satisfied by both *sqlx.DB and *sqlx.Tx, so every Store method
// runs either on the pool or inside one transaction.
type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Store implements repository.TxStore on Postgres.
type Store struct {
	db *DB
	q  querier
}

func NewStore(db *DB) *Store {
	return &Store{db: db, q: db.DB}
}

// WithTx runs fn with a Store bound to a single transaction. Nested calls
// on a tx-bound store reuse the surrounding transaction.
func (s *Store) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	if s.db == nil {
		return fn(s)
	}
	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return fn(&Store{q: tx})
	})
}

var _ repository.TxStore = (*Store)(nil)
