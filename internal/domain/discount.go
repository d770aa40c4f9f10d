package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidDiscountType = errors.New("invalid discount type")

type DiscountType int

const (
	FlatCurrency DiscountType = iota
	Percentage
)

func (t DiscountType) String() string {
	switch t {
	case FlatCurrency:
		return "baht"
	case Percentage:
		return "percen"
	default:
		return fmt.Sprintf("DiscountType(%d)", int(t))
	}
}

// Symbol is the short marker shown next to a discount input.
func (t DiscountType) Symbol() string {
	if t == Percentage {
		return "%"
	}
	return "฿"
}

func ParseDiscountType(s string) (DiscountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "baht", "฿", "flat", "thb":
		return FlatCurrency, nil
	case "percen", "percent", "%", "pct":
		return Percentage, nil
	}
	return FlatCurrency, fmt.Errorf("%w: %q", ErrInvalidDiscountType, s)
}

// Discount is either a flat currency subtraction or a percentage of the
// amount it is applied to. The zero value means no discount.
type Discount struct {
	Amount decimal.Decimal
	Type   DiscountType
}

func FlatDiscount(amount decimal.Decimal) Discount {
	return Discount{Amount: amount, Type: FlatCurrency}
}

func PercentDiscount(amount decimal.Decimal) Discount {
	return Discount{Amount: amount, Type: Percentage}
}

// ApplyTo subtracts the discount from base. The result is not floored at
// zero: a flat discount larger than base gives a negative amount.
func (d Discount) ApplyTo(base Money) Money {
	if d.Type == Percentage {
		return base.Sub(base.Percent(d.Amount))
	}
	return base.Sub(Money{Amount: d.Amount, Currency: base.Currency})
}

// Off returns the currency value the discount removes from base.
func (d Discount) Off(base Money) Money {
	return base.Sub(d.ApplyTo(base))
}

func (d Discount) IsZero() bool {
	return d.Amount.IsZero()
}
