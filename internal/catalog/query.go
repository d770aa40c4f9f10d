package catalog

import (
	"strings"

	"github.com/nikolayk812/baht-pos/internal/domain"
)

// AllCategories disables category filtering.
const AllCategories = "all"

const (
	DefaultPageSize = 6
	MobilePageSize  = 4

	// MobileBreakpoint is the viewport width below which MobilePageSize applies.
	MobileBreakpoint = 768
)

type Query struct {
	Category string
	Search   string
	Page     int
	PageSize int
}

type Page struct {
	Items      []domain.CatalogItem
	Number     int
	Size       int
	TotalPages int
	TotalItems int
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// Run filters items by q and returns the requested page.
func Run(items []domain.CatalogItem, q Query) Page {
	return Paginate(Filter(items, q.Category, q.Search), q.Page, q.PageSize)
}

// Filter keeps the items of category (or all of them for AllCategories or an
// empty category) whose id or name contains search, ignoring case.
func Filter(items []domain.CatalogItem, category, search string) []domain.CatalogItem {
	search = strings.ToLower(search)

	out := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		if !matchesCategory(item, category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.ID), search) &&
			!strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		out = append(out, item)
	}

	return out
}

func matchesCategory(item domain.CatalogItem, category string) bool {
	return category == "" || category == AllCategories || item.Category == category
}

// Categories lists the distinct categories of items in first-seen order.
func Categories(items []domain.CatalogItem) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}

// TotalPages is the number of pages needed for n items.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return (n + size - 1) / size
}

// ClampPage keeps page inside [1, TotalPages(n, size)]. With no items the
// only valid page is 1.
func ClampPage(page, n, size int) int {
	last := TotalPages(n, size)
	if page > last {
		page = last
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns items[(page-1)*size : page*size] after clamping page.
func Paginate(items []domain.CatalogItem, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}

	page = ClampPage(page, len(items), size)

	start := (page - 1) * size
	end := min(start+size, len(items))

	return Page{
		Items:      items[start:end:end],
		Number:     page,
		Size:       size,
		TotalPages: TotalPages(len(items), size),
		TotalItems: len(items),
	}
}

// PageSizeForWidth picks the page size for a viewport width in pixels.
func PageSizeForWidth(width int) int {
	if width < MobileBreakpoint {
		return MobilePageSize
	}
	return DefaultPageSize
}
