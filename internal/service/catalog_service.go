// backend-go/internal/service/catalog_service.go
package service

import (
	"context"

	"github.com/smartshelfx/backend-go/internal/domain"
	"github.com/smartshelfx/backend-go/internal/repository"
)

// CatalogService is the read-only product view served to the dashboard.
type CatalogService struct {
	store repository.TxStore
}

func NewCatalogService(store repository.TxStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) List(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	return s.store.ListProducts(ctx, activeOnly)
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.store.FindProductByID(ctx, id)
}
