package pricing_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		qty      int
		discount domain.Discount
		want     string
	}{
		{
			name:  "no discount",
			price: "100",
			qty:   3,
			want:  "300",
		},
		{
			name:     "flat discount",
			price:    "100",
			qty:      3,
			discount: domain.FlatDiscount(decimal.NewFromInt(25)),
			want:     "275",
		},
		{
			name:     "flat discount above gross is negative",
			price:    "19.99",
			qty:      1,
			discount: domain.FlatDiscount(decimal.NewFromInt(50)),
			want:     "-30.01",
		},
		{
			name:     "percentage discount",
			price:    "100",
			qty:      2,
			discount: domain.PercentDiscount(decimal.NewFromInt(10)),
			want:     "180",
		},
		{
			name:     "fractional percentage",
			price:    "80",
			qty:      1,
			discount: domain.PercentDiscount(decimal.RequireFromString("12.5")),
			want:     "70",
		},
		{
			name:     "full percentage",
			price:    "590",
			qty:      2,
			discount: domain.PercentDiscount(decimal.NewFromInt(100)),
			want:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.LineTotal(domain.Baht(decimal.RequireFromString(tt.price)), tt.qty, tt.discount)

			assertAmount(t, tt.want, got)
		})
	}
}

func TestLineTotalFlatProperty(t *testing.T) {
	for range 100 {
		price := decimal.NewFromFloat(gofakeit.Price(0, 5000)).Round(2)
		qty := gofakeit.IntRange(1, 20)
		discount := decimal.NewFromFloat(gofakeit.Price(0, 20000)).Round(2)

		got := pricing.LineTotal(domain.Baht(price), qty, domain.FlatDiscount(discount))

		want := price.Mul(decimal.NewFromInt(int64(qty))).Sub(discount)
		assert.True(t, want.Equal(got.Amount), "price %s qty %d discount %s: got %s", price, qty, discount, got.Amount)
	}
}

func TestLineTotalPercentageMonotonic(t *testing.T) {
	price := domain.Baht(decimal.NewFromFloat(gofakeit.Price(1, 5000)).Round(2))
	qty := gofakeit.IntRange(1, 20)

	prev := pricing.LineTotal(price, qty, domain.PercentDiscount(decimal.Zero))
	assert.True(t, prev.Equal(price.MulInt(qty)))

	for pct := 1; pct <= 100; pct++ {
		got := pricing.LineTotal(price, qty, domain.PercentDiscount(decimal.NewFromInt(int64(pct))))
		assert.True(t, got.Amount.LessThan(prev.Amount), "%d%% did not lower the total", pct)
		prev = got
	}

	assert.True(t, prev.Amount.IsZero())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "0"},
		{input: "   ", want: "0"},
		{input: "50", want: "50"},
		{input: " 12.75 ", want: "12.75"},
		{input: "abc", want: "0"},
		{input: "12baht", want: "0"},
		{input: "-5", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.ParseAmount(tt.input).String())
		})
	}
}

func assertAmount(t *testing.T, want string, got domain.Money) {
	t.Helper()

	assert.Equal(t, domain.THB, got.Currency)
	assert.True(t, decimal.RequireFromString(want).Equal(got.Amount), "want %s, got %s", want, got.Amount)
}
