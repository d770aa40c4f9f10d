// Package ledger holds the cart lines of a single session.
//
// A Ledger is an immutable value: every operation returns a new Ledger and
// leaves the receiver untouched, so callers can swap the whole line set and
// notify observers in one place. Operations never fail; unknown line ids are
// silently ignored.
package ledger

import (
	"slices"

	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/pricing"
)

type Ledger struct {
	lines []domain.CartLine
}

func New(lines ...domain.CartLine) Ledger {
	return Ledger{lines: slices.Clone(lines)}
}

// Lines returns a copy of the lines in insertion order.
func (l Ledger) Lines() []domain.CartLine {
	return slices.Clone(l.lines)
}

func (l Ledger) Len() int {
	return len(l.lines)
}

func (l Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

func (l Ledger) Line(id domain.LineID) (domain.CartLine, bool) {
	i := l.index(id)
	if i < 0 {
		return domain.CartLine{}, false
	}
	return l.lines[i], true
}

// Quantity is the number of units on line id, 0 when absent.
func (l Ledger) Quantity(id domain.LineID) int {
	line, ok := l.Line(id)
	if !ok {
		return 0
	}
	return line.Quantity
}

// Increase adds one unit of item to its normal line, creating the line with
// no discount when the item is not yet in the cart.
func (l Ledger) Increase(item domain.CatalogItem) Ledger {
	id := domain.LineID(item.ID)
	if l.index(id) < 0 {
		return Ledger{lines: append(l.Lines(), domain.NewCartLine(item))}
	}
	return l.IncreaseLine(id)
}

// IncreaseLine adds one unit to an existing line. The line discount is kept.
func (l Ledger) IncreaseLine(id domain.LineID) Ledger {
	return l.update(id, func(line *domain.CartLine) {
		line.Quantity++
	})
}

// Decrease removes one unit from line id and drops the line when its last
// unit goes.
func (l Ledger) Decrease(id domain.LineID) Ledger {
	line, ok := l.Line(id)
	if !ok {
		return l
	}
	if line.Quantity <= 1 {
		return l.Remove(id)
	}
	return l.update(id, func(line *domain.CartLine) {
		line.Quantity--
	})
}

// Remove drops line id. Removing a send-later line does not give its
// quantity back to the original line.
func (l Ledger) Remove(id domain.LineID) Ledger {
	i := l.index(id)
	if i < 0 {
		return l
	}
	return Ledger{lines: slices.Delete(l.Lines(), i, i+1)}
}

// SetLineDiscount replaces the discount of line id. Negative amounts become
// zero; there is no upper bound, so a percentage above 100 or a flat amount
// above the line gross yields a negative total.
func (l Ledger) SetLineDiscount(id domain.LineID, discount domain.Discount) Ledger {
	discount.Amount = pricing.NonNegative(discount.Amount)
	return l.update(id, func(line *domain.CartLine) {
		line.Discount = discount
	})
}

// SplitSendLater appends a send-later line of quantity 1 for the product of
// line id, leaving the original line as it is.
//
// Splitting is idempotent per product: while the split line exists further
// calls are no-ops (raise its quantity with IncreaseLine instead). Once the
// split line is removed the product can be split again. Send-later lines
// cannot be split themselves.
func (l Ledger) SplitSendLater(id domain.LineID) Ledger {
	source, ok := l.Line(id)
	if !ok || source.SendLater {
		return l
	}

	splitID := domain.SendLaterID(source.ProductID)
	if l.index(splitID) >= 0 {
		return l
	}

	split := source
	split.ID = splitID
	split.Quantity = 1
	split.Discount = domain.Discount{}
	split.SendLater = true

	return Ledger{lines: append(l.Lines(), split)}
}

// Clear returns an empty ledger.
func (l Ledger) Clear() Ledger {
	return Ledger{}
}

func (l Ledger) update(id domain.LineID, fn func(line *domain.CartLine)) Ledger {
	i := l.index(id)
	if i < 0 {
		return l
	}

	lines := l.Lines()
	fn(&lines[i])

	return Ledger{lines: lines}
}

func (l Ledger) index(id domain.LineID) int {
	return slices.IndexFunc(l.lines, func(line domain.CartLine) bool {
		return line.ID == id
	})
}
