package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// THB is the currency every catalog price in this storefront is quoted in.
var THB = currency.MustParseISO("THB")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func Baht(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: THB}
}

func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount.Add(o.Amount), Currency: m.Currency}
}

func (m Money) Sub(o Money) Money {
	return Money{Amount: m.Amount.Sub(o.Amount), Currency: m.Currency}
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

func (m Money) MulInt(n int) Money {
	return m.Mul(decimal.NewFromInt(int64(n)))
}

// Percent returns pct percent of m.
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(pct).Div(decimal.NewFromInt(100)), Currency: m.Currency}
}

// Equal compares amounts numerically, so 1.5 and 1.50 are equal.
func (m Money) Equal(o Money) bool {
	return m.Currency == o.Currency && m.Amount.Equal(o.Amount)
}
