package domain_test

import (
	"testing"

	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCartLine(t *testing.T) {
	item := domain.CatalogItem{
		No:       3,
		ID:       "TS-001",
		Name:     "Basic Cotton T-Shirt",
		Category: "shirt",
		Price:    domain.Baht(decimal.NewFromInt(290)),
		ImageURL: "https://images.example.com/ts-001.jpg",
		Stock:    7,
	}

	line := domain.NewCartLine(item)

	assert.Equal(t, domain.LineID("TS-001"), line.ID)
	assert.Equal(t, "TS-001", line.ProductID)
	assert.Equal(t, item.Name, line.Name)
	assert.Equal(t, item.Category, line.Category)
	assert.Equal(t, item.ImageURL, line.ImageURL)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, domain.FlatCurrency, line.Discount.Type)
	assert.True(t, line.Discount.IsZero())
	assert.False(t, line.SendLater)
	assert.True(t, item.Price.Equal(line.Total()))
}

func TestCartLineTotal(t *testing.T) {
	line := domain.CartLine{
		ID:        "PT-001",
		UnitPrice: domain.Baht(decimal.RequireFromString("12.50")),
		Quantity:  4,
	}

	assert.Equal(t, "50", line.Gross().Amount.String())

	line.Discount = domain.FlatDiscount(decimal.NewFromInt(5))
	assert.Equal(t, "45", line.Total().Amount.String())

	line.Discount = domain.PercentDiscount(decimal.NewFromInt(20))
	assert.Equal(t, "40", line.Total().Amount.String())

	// quantity changes re-derive the discounted total
	line.Quantity = 2
	assert.Equal(t, "20", line.Total().Amount.String())
}

func TestSendLaterID(t *testing.T) {
	assert.Equal(t, domain.LineID("SH-002L"), domain.SendLaterID("SH-002"))
}
