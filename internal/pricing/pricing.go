package pricing

import (
	"strings"

	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxRate is the VAT charged on the cart subtotal.
var TaxRate = decimal.RequireFromString("0.07")

// LineTotal prices quantity units at unitPrice and subtracts the discount.
// Totals may go negative when the discount exceeds the gross amount.
func LineTotal(unitPrice domain.Money, quantity int, discount domain.Discount) domain.Money {
	return discount.ApplyTo(unitPrice.MulInt(quantity))
}

// ParseAmount reads a discount amount typed by the user. Empty, non-numeric
// and negative input all yield zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}

	return d
}

// NonNegative clamps d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
