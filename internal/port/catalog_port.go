package port

import (
	"context"

	"github.com/nikolayk812/baht-pos/internal/domain"
)

type CatalogRepository interface {
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
	GetItem(ctx context.Context, id string) (domain.CatalogItem, error)
}

// CatalogSeeder is implemented by catalog sources that can be written to.
type CatalogSeeder interface {
	AddItems(ctx context.Context, items []domain.CatalogItem) error
}
