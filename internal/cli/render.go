package cli

import (
	"strings"

	"github.com/nikolayk812/baht-pos/internal/catalog"
	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/format"
)

func (sh *Shell) products() {
	q := sh.session.Query()
	page := sh.session.Page()

	sh.printf("category: %s", q.Category)
	if q.Search != "" {
		sh.printf("  search: %q", q.Search)
	}
	sh.printf("\n")

	if len(page.Items) == 0 {
		sh.printf("no products found\n")
		return
	}

	for _, item := range page.Items {
		sh.printf("  %-8s %-28s %-12s %12s  stock %d\n",
			item.ID, item.Name, item.Category, format.Money(item.Price), item.Stock)
	}
	sh.printf("page %d/%d (%d products)%s\n", page.Number, page.TotalPages, page.TotalItems, pageHints(page))
}

func pageHints(p catalog.Page) string {
	var hints []string
	if p.HasPrev() {
		hints = append(hints, "prev")
	}
	if p.HasNext() {
		hints = append(hints, "next")
	}
	if len(hints) == 0 {
		return ""
	}
	return "  [" + strings.Join(hints, " ") + "]"
}

func (sh *Shell) categories() {
	sh.printf("  %s\n", catalog.AllCategories)
	for _, c := range sh.session.Categories() {
		sh.printf("  %s\n", c)
	}
}

func (sh *Shell) cart() {
	lines := sh.session.Lines()
	if len(lines) == 0 {
		sh.printf("No items in cart\n")
		return
	}

	for _, line := range lines {
		marker := ""
		if line.SendLater {
			marker = "  (send later)"
		}
		sh.printf("  %-9s %-28s x%-3d %s%s\n", line.ID, line.Name, line.Quantity, format.Money(line.Total()), marker)
		if !line.Discount.IsZero() {
			sh.printf("            discount %s%s\n", line.Discount.Amount.String(), line.Discount.Type.Symbol())
		}
	}
}

func (sh *Shell) summary() {
	s := sh.session.Summary()

	sh.printf("  subtotal       %14s\n", format.Money(s.Subtotal))
	sh.printf("  incl. VAT 7%%   %14s\n", format.Money(s.TaxedSubtotal))
	sh.printf("  bill discount  %14s\n", billDiscountLabel(s.BillDiscount, s.BillDiscountAmount))
	sh.printf("  total          %14s\n", format.Money(s.GrandTotal))
}

func billDiscountLabel(d domain.Discount, off domain.Money) string {
	if d.Type == domain.Percentage {
		return d.Amount.String() + "% " + format.Money(off)
	}
	return format.Money(off)
}
