package domain_test

import (
	"testing"

	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiscountType(t *testing.T) {
	tests := []struct {
		input     string
		want      domain.DiscountType
		wantError bool
	}{
		{input: "baht", want: domain.FlatCurrency},
		{input: "฿", want: domain.FlatCurrency},
		{input: " FLAT ", want: domain.FlatCurrency},
		{input: "percen", want: domain.Percentage},
		{input: "Percent", want: domain.Percentage},
		{input: "%", want: domain.Percentage},
		{input: "coupon", wantError: true},
		{input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseDiscountType(tt.input)
			if tt.wantError {
				require.ErrorIs(t, err, domain.ErrInvalidDiscountType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscountApplyTo(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		discount domain.Discount
		want     string
	}{
		{
			name:     "zero value is no discount",
			base:     "250",
			discount: domain.Discount{},
			want:     "250",
		},
		{
			name:     "flat",
			base:     "250",
			discount: domain.FlatDiscount(decimal.NewFromInt(40)),
			want:     "210",
		},
		{
			name:     "flat larger than base goes negative",
			base:     "100",
			discount: domain.FlatDiscount(decimal.NewFromInt(150)),
			want:     "-50",
		},
		{
			name:     "percentage",
			base:     "200",
			discount: domain.PercentDiscount(decimal.NewFromInt(10)),
			want:     "180",
		},
		{
			name:     "percentage above 100 goes negative",
			base:     "200",
			discount: domain.PercentDiscount(decimal.NewFromInt(150)),
			want:     "-100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := domain.Baht(decimal.RequireFromString(tt.base))

			got := tt.discount.ApplyTo(base)

			assert.Equal(t, domain.THB, got.Currency)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got.Amount), "got %s", got.Amount)
			assert.True(t, base.Sub(got).Equal(tt.discount.Off(base)))
		})
	}
}
