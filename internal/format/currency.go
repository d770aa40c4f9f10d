// Package format renders money for display.
package format

import (
	"strings"

	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var symbols = map[currency.Unit]string{
	domain.THB: "฿",
}

// Baht formats amount as Thai baht, e.g. 12345.6 -> "฿12,345.60".
func Baht(amount decimal.Decimal) string {
	return Money(domain.Baht(amount))
}

// Money rounds to two decimals and groups the integer digits by thousands.
// The sign follows the symbol: "฿-1,234.50". Currencies without a known
// symbol are prefixed with their ISO code.
func Money(m domain.Money) string {
	prefix, ok := symbols[m.Currency]
	if !ok {
		prefix = m.Currency.String() + " "
	}
	return prefix + Grouped(m.Amount)
}

// Grouped renders amount with two decimals and comma thousands separators.
func Grouped(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(intPart)/3)
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
