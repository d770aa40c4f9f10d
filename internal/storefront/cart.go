package storefront

import (
	"fmt"
	"slices"

	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/ledger"
	"github.com/nikolayk812/baht-pos/internal/pricing"
	"go.uber.org/zap"
)

func (s *Session) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Lines()
}

func (s *Session) Line(id domain.LineID) (domain.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Line(id)
}

func (s *Session) BillDiscount() domain.Discount {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.billDiscount
}

func (s *Session) Summary() pricing.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return pricing.Summarize(s.cart.Lines(), s.billDiscount)
}

// Add puts one unit of the catalog product productID into the cart.
func (s *Session) Add(productID string) error {
	item, err := s.Product(productID)
	if err != nil {
		return fmt.Errorf("s.Product: %w", err)
	}

	s.mutate("item added", func(l ledger.Ledger) ledger.Ledger {
		return l.Increase(item)
	}, zap.String("product_id", productID))

	return nil
}

// Increase adds a unit to an existing line. When the line is missing but id
// names a catalog product, the product is added instead.
func (s *Session) Increase(id domain.LineID) error {
	if _, ok := s.Line(id); !ok {
		return s.Add(id.String())
	}

	s.mutate("line increased", func(l ledger.Ledger) ledger.Ledger {
		return l.IncreaseLine(id)
	}, zap.Stringer("line_id", id))

	return nil
}

func (s *Session) Decrease(id domain.LineID) {
	s.mutate("line decreased", func(l ledger.Ledger) ledger.Ledger {
		return l.Decrease(id)
	}, zap.Stringer("line_id", id))
}

func (s *Session) Remove(id domain.LineID) {
	s.mutate("line removed", func(l ledger.Ledger) ledger.Ledger {
		return l.Remove(id)
	}, zap.Stringer("line_id", id))
}

func (s *Session) SplitSendLater(id domain.LineID) {
	s.mutate("line split for later delivery", func(l ledger.Ledger) ledger.Ledger {
		return l.SplitSendLater(id)
	}, zap.Stringer("line_id", id))
}

// SetLineDiscount sets the discount of line id from user input. Input that
// is not a non-negative number counts as zero.
func (s *Session) SetLineDiscount(id domain.LineID, amount string, typ domain.DiscountType) {
	d := domain.Discount{Amount: pricing.ParseAmount(amount), Type: typ}

	s.mutate("line discount set", func(l ledger.Ledger) ledger.Ledger {
		return l.SetLineDiscount(id, d)
	}, zap.Stringer("line_id", id), zap.Stringer("discount", d.Amount), zap.Stringer("discount_type", typ))
}

// SetLineDiscountType switches how the current discount amount of line id
// is interpreted.
func (s *Session) SetLineDiscountType(id domain.LineID, typ domain.DiscountType) {
	s.mutate("line discount type set", func(l ledger.Ledger) ledger.Ledger {
		line, ok := l.Line(id)
		if !ok {
			return l
		}
		return l.SetLineDiscount(id, domain.Discount{Amount: line.Discount.Amount, Type: typ})
	}, zap.Stringer("line_id", id), zap.Stringer("discount_type", typ))
}

// SetBillDiscount sets the discount applied to the taxed subtotal.
func (s *Session) SetBillDiscount(amount string, typ domain.DiscountType) {
	d := domain.Discount{Amount: pricing.ParseAmount(amount), Type: typ}

	s.mutateBill("bill discount set", func(domain.Discount) domain.Discount {
		return d
	})
}

func (s *Session) SetBillDiscountType(typ domain.DiscountType) {
	s.mutateBill("bill discount type set", func(d domain.Discount) domain.Discount {
		d.Type = typ
		return d
	})
}

// Clear empties the cart and resets the bill discount.
func (s *Session) Clear() {
	s.mu.Lock()
	s.cart = s.cart.Clear()
	s.billDiscount = domain.Discount{}
	snap, observers := s.snapshot()
	s.mu.Unlock()

	s.logger.Debug("cart cleared")
	notify(observers, snap)
}

// Checkout only reports the payable summary; there is no payment step and
// the cart is left as it is.
func (s *Session) Checkout() pricing.OrderSummary {
	summary := s.Summary()

	s.logger.Info("checkout requested",
		zap.Int("lines", summary.LineCount),
		zap.Int("items", summary.ItemCount),
		zap.Stringer("grand_total", summary.GrandTotal.Amount))

	return summary
}

func (s *Session) mutate(msg string, fn func(ledger.Ledger) ledger.Ledger, fields ...zap.Field) {
	s.mu.Lock()
	s.cart = fn(s.cart)
	snap, observers := s.snapshot()
	s.mu.Unlock()

	s.logger.Debug(msg, append(fields, zap.Int("lines", len(snap.Lines)))...)
	notify(observers, snap)
}

func (s *Session) mutateBill(msg string, fn func(domain.Discount) domain.Discount) {
	s.mu.Lock()
	s.billDiscount = fn(s.billDiscount)
	d := s.billDiscount
	snap, observers := s.snapshot()
	s.mu.Unlock()

	s.logger.Debug(msg, zap.Stringer("discount", d.Amount), zap.Stringer("discount_type", d.Type))
	notify(observers, snap)
}

// snapshot must be called with mu held.
func (s *Session) snapshot() (Snapshot, []func(Snapshot)) {
	lines := s.cart.Lines()
	snap := Snapshot{
		Lines:   lines,
		Summary: pricing.Summarize(lines, s.billDiscount),
	}
	return snap, slices.Clone(s.observers)
}

func notify(observers []func(Snapshot), snap Snapshot) {
	for _, fn := range observers {
		fn(snap)
	}
}
