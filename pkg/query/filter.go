// Package query filters catalog snapshots and aggregates dashboard
// summaries. It never mutates the catalog; callers pass the snapshot
// returned by the store.
package query

import (
	"sort"
	"strings"

	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/product"
)

// Unbounded is the sentinel for an open price bound.
const Unbounded = -1

// KindFilter selects which product variants a filter matches.
type KindFilter string

// Kind filter values.
const (
	KindAll    KindFilter = "All"
	KindLaptop KindFilter = KindFilter(product.KindLaptop)
	KindPhone  KindFilter = KindFilter(product.KindPhone)
)

// ParseKindFilter matches a filter name case-insensitively.
func ParseKindFilter(s string) (KindFilter, bool) {
	switch {
	case s == "" || strings.EqualFold(s, string(KindAll)):
		return KindAll, true
	case strings.EqualFold(s, string(KindLaptop)):
		return KindLaptop, true
	case strings.EqualFold(s, string(KindPhone)):
		return KindPhone, true
	}
	return "", false
}

// Criteria describes one filter call. The zero value matches everything
// except that MinPrice/MaxPrice must be Unbounded (-1) to mean "no
// bound"; a zero bound is a real bound of 0.
type Criteria struct {
	// Keyword is matched case-insensitively as a substring of
	// "name brand". Empty means no keyword filtering.
	Keyword string

	// Kind restricts the variant. Empty behaves like KindAll.
	Kind KindFilter

	// MinPrice and MaxPrice bound the unit price; Unbounded (-1)
	// leaves that side open.
	MinPrice float64
	MaxPrice float64
}

// Filter returns the products matching the criteria, sorted by
// case-insensitive ID ascending regardless of the input order. A
// bounded range with min greater than max fails with an
// InvalidRangeError before any product is examined.
func Filter(products []product.Product, c Criteria) ([]product.Product, error) {
	if c.MinPrice >= 0 && c.MaxPrice >= 0 && c.MinPrice > c.MaxPrice {
		return nil, &errors.InvalidRangeError{Min: c.MinPrice, Max: c.MaxPrice}
	}

	keyword := strings.ToLower(strings.TrimSpace(c.Keyword))
	kind := c.Kind
	if kind == "" {
		kind = KindAll
	}

	result := make([]product.Product, 0, len(products))
	for _, p := range products {
		b := p.Common()
		if keyword != "" {
			target := strings.ToLower(b.Name + " " + b.Brand)
			if !strings.Contains(target, keyword) {
				continue
			}
		}
		if kind != KindAll && KindFilter(p.Kind()) != kind {
			continue
		}
		if c.MinPrice >= 0 && b.Price < c.MinPrice {
			continue
		}
		if c.MaxPrice >= 0 && b.Price > c.MaxPrice {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return product.LessID(result[i].Common().ID, result[j].Common().ID)
	})
	return result, nil
}
