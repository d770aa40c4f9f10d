package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/port"
	"github.com/shopspring/decimal"
)

// productListing is the bundled product list format.
type productListing struct {
	Success      bool          `json:"success"`
	TotalProduct int           `json:"totalProduct"`
	ProductList  []productJSON `json:"productList"`
}

type productJSON struct {
	No          int             `json:"no"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Stock       int             `json:"stock"`
}

type jsonCatalog struct {
	items []domain.CatalogItem
	byID  map[string]int
}

// NewJSONCatalog parses a product listing held in memory. Prices are THB.
func NewJSONCatalog(data []byte) (port.CatalogRepository, error) {
	var listing productListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	c := &jsonCatalog{
		items: make([]domain.CatalogItem, 0, len(listing.ProductList)),
		byID:  make(map[string]int, len(listing.ProductList)),
	}

	for _, p := range listing.ProductList {
		item := domain.CatalogItem{
			No:       p.No,
			ID:       p.ProductID,
			Name:     p.ProductName,
			Category: p.Category,
			Price:    domain.Baht(p.Price),
			ImageURL: p.ImageURL,
			Stock:    p.Stock,
		}
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("validateItem: %w", err)
		}
		if _, ok := c.byID[item.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %s", item.ID)
		}

		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

func (c *jsonCatalog) ListItems(_ context.Context) ([]domain.CatalogItem, error) {
	out := make([]domain.CatalogItem, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *jsonCatalog) GetItem(_ context.Context, id string) (domain.CatalogItem, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.CatalogItem{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return c.items[i], nil
}
