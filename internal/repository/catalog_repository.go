package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/baht-pos/internal/db"
	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/port"
	"golang.org/x/text/currency"
)

type CatalogRepository interface {
	port.CatalogRepository
	port.CatalogSeeder
}

type catalogRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) CatalogRepository {
	return &catalogRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCatalogWithTx(tx pgx.Tx) CatalogRepository {
	return &catalogRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *catalogRepository) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	rows, err := r.q.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListItems: %w", err)
	}

	items, err := mapCatalogRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapCatalogRowsToDomain: %w", err)
	}

	return items, nil
}

func (r *catalogRepository) GetItem(ctx context.Context, id string) (domain.CatalogItem, error) {
	if id == "" {
		return domain.CatalogItem{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetItem(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CatalogItem{}, fmt.Errorf("q.GetItem[%s]: %w", id, domain.ErrProductNotFound)
	}
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("q.GetItem: %w", err)
	}

	item, err := mapCatalogRowToDomain(row)
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("mapCatalogRowToDomain: %w", err)
	}

	return item, nil
}

// AddItems inserts all items or none of them.
func (r *catalogRepository) AddItems(ctx context.Context, items []domain.CatalogItem) error {
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return err
		}
	}

	return r.inTx(ctx, func(q *db.Queries) error {
		for _, item := range items {
			err := q.AddItem(ctx, db.AddItemParams{
				ProductID:     item.ID,
				Position:      int32(item.No),
				ProductName:   item.Name,
				Category:      item.Category,
				PriceAmount:   item.Price.Amount,
				PriceCurrency: item.Price.Currency.String(),
				ImageUrl:      pgtype.Text{String: item.ImageURL, Valid: item.ImageURL != ""},
				Stock:         int32(item.Stock),
			})
			if err != nil {
				return fmt.Errorf("q.AddItem[%s]: %w", item.ID, err)
			}
		}
		return nil
	})
}

func validateItem(item domain.CatalogItem) error {
	if item.ID == "" {
		return fmt.Errorf("id is empty")
	}
	if item.Price.Amount.IsNegative() {
		return fmt.Errorf("price of %s is negative", item.ID)
	}
	return nil
}

func mapCatalogRowToDomain(row db.CatalogItem) (domain.CatalogItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CatalogItem{
		No:       int(row.Position),
		ID:       row.ProductID,
		Name:     row.ProductName,
		Category: row.Category,
		Price:    domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		ImageURL: row.ImageUrl.String,
		Stock:    int(row.Stock),
	}, nil
}

func mapCatalogRowsToDomain(rows []db.CatalogItem) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem

	for _, row := range rows {
		item, err := mapCatalogRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapCatalogRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
