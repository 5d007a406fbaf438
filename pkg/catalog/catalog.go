// Package catalog implements the in-memory product catalog and its
// flat-file persistence.
//
// The store owns every product instance: lookups and listings return
// deep copies, and all mutations go through store methods. The stored
// sequence is kept sorted by case-insensitive ID ascending after every
// mutating operation and after load, and IDs stay unique.
package catalog

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/logging"
	"github.com/stocktake/stocktake/pkg/pricing"
	"github.com/stocktake/stocktake/pkg/product"
)

// Store is the owning collection of products. All methods are safe for
// concurrent use; one RWMutex serializes mutations so readers never see
// a mix of pre- and post-mutation state.
type Store struct {
	mu       sync.RWMutex
	products []product.Product
	readOnly bool
	logger   *zerolog.Logger
}

// Option configures a Store.
type Option func(*Store) error

// WithReadOnly makes every mutating operation fail with ErrReadOnly.
func WithReadOnly(readOnly bool) Option {
	return func(s *Store) error {
		s.readOnly = readOnly
		return nil
	}
}

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithProducts preloads the store. Products are cloned in; a duplicate
// ID in the preload set is an error.
func WithProducts(products ...product.Product) Option {
	return func(s *Store) error {
		for _, p := range products {
			if err := s.addLocked(p); err != nil {
				return err
			}
		}
		s.sortLocked()
		return nil
	}
}

// New creates a store.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		logger: logging.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Products returns a snapshot of the catalog in sorted order. The
// returned products are deep copies, so callers cannot mutate the store
// through them.
func (s *Store) Products() []product.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]product.Product, len(s.products))
	for i, p := range s.products {
		snapshot[i] = p.Clone()
	}
	return snapshot
}

// Get returns a copy of the product with the given ID, matched
// case-insensitively.
func (s *Store) Get(id string) (product.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.products[i].Clone(), true
	}
	return nil, false
}

// Add inserts a product. It fails with a DuplicateIDError if the ID
// collides case-insensitively with an existing product.
func (s *Store) Add(p product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return errors.ErrReadOnly
	}
	if err := s.addLocked(p); err != nil {
		return err
	}
	s.sortLocked()
	return nil
}

// Update applies a partial update to the product with the given ID and
// returns a copy of the updated product. Nil fields are skipped; every
// provided field is validated before anything is applied, so a failed
// update mutates nothing.
func (s *Store) Update(id string, u Update) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return nil, errors.ErrReadOnly
	}

	i := s.indexLocked(id)
	if i < 0 {
		return nil, errors.NewNotFoundError("product", id)
	}

	if err := u.validate(s.products[i]); err != nil {
		return nil, err
	}
	u.apply(s.products[i])

	// The ID never changes, but re-sorting after every mutation keeps
	// the ordering invariant unconditional.
	s.sortLocked()
	return s.products[i].Clone(), nil
}

// Delete removes the product with the given ID and returns a copy of
// the removed product.
func (s *Store) Delete(id string) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return nil, errors.ErrReadOnly
	}

	i := s.indexLocked(id)
	if i < 0 {
		return nil, errors.NewNotFoundError("product", id)
	}

	removed := s.products[i].Clone()
	s.products = append(s.products[:i], s.products[i+1:]...)
	s.sortLocked()
	return removed, nil
}

// Sell validates and prices a sale, then decrements stock. The quote and
// the decrement happen under one lock, so a successful sale is atomic
// and any validation failure leaves the quantity untouched.
func (s *Store) Sell(id string, quantity int, student bool) (pricing.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return pricing.Receipt{}, errors.ErrReadOnly
	}

	i := s.indexLocked(id)
	if i < 0 {
		return pricing.Receipt{}, errors.NewNotFoundError("product", id)
	}

	receipt, err := pricing.Quote(s.products[i], quantity, student, time.Now())
	if err != nil {
		return pricing.Receipt{}, err
	}

	s.products[i].Common().Quantity -= quantity
	s.sortLocked()
	return receipt, nil
}

// addLocked inserts without sorting. Caller holds the write lock.
func (s *Store) addLocked(p product.Product) error {
	if p == nil {
		return errors.NewValidationError("product", nil, "must not be nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if s.indexLocked(p.Common().ID) >= 0 {
		return errors.NewDuplicateIDError("product", p.Common().ID)
	}
	s.products = append(s.products, p.Clone())
	return nil
}

// indexLocked finds a product by case-insensitive ID. Caller holds a lock.
func (s *Store) indexLocked(id string) int {
	for i, p := range s.products {
		if product.EqualID(p.Common().ID, id) {
			return i
		}
	}
	return -1
}

// sortLocked restores the sorted-by-ID invariant. Caller holds the write lock.
func (s *Store) sortLocked() {
	sort.SliceStable(s.products, func(i, j int) bool {
		return product.LessID(s.products[i].Common().ID, s.products[j].Common().ID)
	})
}
