// Package storefront wires the catalog query, the cart ledger and the order
// summary into one interactive session.
package storefront

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/baht-pos/internal/catalog"
	"github.com/nikolayk812/baht-pos/internal/debounce"
	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/ledger"
	"github.com/nikolayk812/baht-pos/internal/pricing"
	"go.uber.org/zap"
)

const (
	DefaultSearchDebounce = 500 * time.Millisecond
	DefaultViewportWidth  = 1024
)

// Snapshot is what observers receive after every cart change.
type Snapshot struct {
	Lines   []domain.CartLine
	Summary pricing.OrderSummary
}

type Option func(*Session)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithSearchDebounce(wait time.Duration) Option {
	return func(s *Session) {
		s.debounceWait = wait
	}
}

func WithViewportWidth(width int) Option {
	return func(s *Session) {
		s.width = width
	}
}

// Session is the state of one storefront user. Mutations run one at a time;
// the mutex exists because the search debouncer commits from a timer goroutine.
type Session struct {
	id     uuid.UUID
	logger *zap.Logger

	items        []domain.CatalogItem
	byID         map[string]domain.CatalogItem
	cats         []string
	search       *debounce.Debouncer[string]
	debounceWait time.Duration

	mu           sync.Mutex
	query        catalog.Query
	width        int
	cart         ledger.Ledger
	billDiscount domain.Discount
	observers    []func(Snapshot)
}

func New(items []domain.CatalogItem, opts ...Option) *Session {
	s := &Session{
		id:           uuid.New(),
		logger:       zap.NewNop(),
		items:        slices.Clone(items),
		byID:         make(map[string]domain.CatalogItem, len(items)),
		debounceWait: DefaultSearchDebounce,
		width:        DefaultViewportWidth,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, item := range s.items {
		s.byID[item.ID] = item
	}
	s.cats = catalog.Categories(s.items)
	s.logger = s.logger.With(zap.Stringer("session_id", s.id))
	s.search = debounce.New(s.debounceWait, s.commitSearch)
	s.query = catalog.Query{
		Category: catalog.AllCategories,
		Page:     1,
		PageSize: catalog.PageSizeForWidth(s.width),
	}

	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Close drops a pending search term.
func (s *Session) Close() {
	s.search.Stop()
}

// Subscribe registers fn to be called with the new cart state after every
// cart or bill discount change.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

// Product looks up a catalog item by id.
func (s *Session) Product(id string) (domain.CatalogItem, error) {
	item, ok := s.byID[id]
	if !ok {
		return domain.CatalogItem{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return item, nil
}

func (s *Session) Categories() []string {
	return slices.Clone(s.cats)
}
