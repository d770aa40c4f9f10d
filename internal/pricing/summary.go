package pricing

import (
	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderSummary struct {
	Subtotal      domain.Money
	Tax           domain.Money
	TaxedSubtotal domain.Money

	BillDiscount       domain.Discount
	BillDiscountAmount domain.Money

	GrandTotal domain.Money

	LineCount int
	ItemCount int
}

// Summarize aggregates the cart lines, send-later lines included, adds VAT
// and applies the bill discount to the taxed subtotal.
func Summarize(lines []domain.CartLine, billDiscount domain.Discount) OrderSummary {
	subtotal := domain.Baht(decimal.Zero)
	items := 0
	for _, line := range lines {
		subtotal = subtotal.Add(LineTotal(line.UnitPrice, line.Quantity, line.Discount))
		items += line.Quantity
	}

	taxed := subtotal.Mul(decimal.NewFromInt(1).Add(TaxRate))
	grand := billDiscount.ApplyTo(taxed)

	return OrderSummary{
		Subtotal:           subtotal,
		Tax:                taxed.Sub(subtotal),
		TaxedSubtotal:      taxed,
		BillDiscount:       billDiscount,
		BillDiscountAmount: taxed.Sub(grand),
		GrandTotal:         grand,
		LineCount:          len(lines),
		ItemCount:          items,
	}
}
