package storefront

import (
	"github.com/nikolayk812/baht-pos/internal/catalog"
	"go.uber.org/zap"
)

func (s *Session) Query() catalog.Query {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query
}

// Page returns the current page of the filtered catalog.
func (s *Session) Page() catalog.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	return catalog.Run(s.items, s.query)
}

// SetCategory filters by category and goes back to the first page.
func (s *Session) SetCategory(category string) {
	if category == "" {
		category = catalog.AllCategories
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.query.Category = category
	s.query.Page = 1
	s.logger.Debug("category changed", zap.String("category", category))
}

// TypeSearch records a keystroke-level search term. The term is committed
// once no other term has arrived for the debounce window.
func (s *Session) TypeSearch(term string) {
	s.search.Push(term)
}

// SetSearch commits term immediately, dropping any pending typed term.
func (s *Session) SetSearch(term string) {
	s.search.Stop()
	s.commitSearch(term)
}

// FlushSearch commits a pending typed term without waiting.
func (s *Session) FlushSearch() bool {
	return s.search.Flush()
}

func (s *Session) SearchPending() bool {
	return s.search.Pending()
}

func (s *Session) commitSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query.Search = term
	s.query.Page = 1
	s.logger.Debug("search committed", zap.String("search", term))
}

// GoToPage moves to page, clamped to the pages that exist.
func (s *Session) GoToPage(page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query.Page = s.clampPage(page)
	return s.query.Page
}

func (s *Session) NextPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query.Page = s.clampPage(s.query.Page + 1)
	return s.query.Page
}

func (s *Session) PrevPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query.Page = s.clampPage(s.query.Page - 1)
	return s.query.Page
}

// Resize adapts the page size to a new viewport width and keeps the current
// page within range.
func (s *Session) Resize(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.width = width
	size := catalog.PageSizeForWidth(width)
	if size == s.query.PageSize {
		return
	}

	s.query.PageSize = size
	s.query.Page = s.clampPage(s.query.Page)
	s.logger.Debug("page size changed",
		zap.Int("width", width),
		zap.Int("page_size", size),
		zap.Int("page", s.query.Page))
}

// clampPage must be called with mu held.
func (s *Session) clampPage(page int) int {
	n := len(catalog.Filter(s.items, s.query.Category, s.query.Search))
	return catalog.ClampPage(page, n, s.query.PageSize)
}
