// Package product defines the two product variants managed by stocktake
// and the line codec for the flat-file catalog format.
//
// A Product is polymorphic over the closed capability set
// {Kind, DiscountRate, ExtraSummary}: the only variants are Laptop and
// Phone, and callers dispatch with an exhaustive type switch rather than
// open subclassing.
package product

import (
	"fmt"

	"github.com/stocktake/stocktake/pkg/errors"
)

// Kind identifies a product variant.
type Kind string

// The closed set of product variants.
const (
	KindLaptop Kind = "Laptop"
	KindPhone  Kind = "Phone"
)

// ParseKind matches a variant name case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch {
	case equalFold(s, string(KindLaptop)):
		return KindLaptop, true
	case equalFold(s, string(KindPhone)):
		return KindPhone, true
	}
	return "", false
}

// Product is the capability set shared by all variants.
type Product interface {
	// Kind returns the variant name used in the catalog file.
	Kind() Kind

	// DiscountRate is the fixed per-variant sale discount.
	DiscountRate() float64

	// ExtraSummary is the human-readable form of the variant field,
	// e.g. "W:24m" or "5G:Yes".
	ExtraSummary() string

	// ExtraField is the on-disk form of the variant field.
	ExtraField() string

	// Common exposes the fields every variant carries. The returned
	// pointer aliases the product, so mutations are visible immediately.
	Common() *Base

	// Clone returns an independent deep copy.
	Clone() Product

	// Validate reports the first invariant violation, if any.
	Validate() error

	fmt.Stringer
}

// Base holds the fields common to every product variant.
type Base struct {
	ID       string
	Name     string
	Brand    string
	Price    float64
	Quantity int
	Active   bool
}

// Common implements part of the Product interface.
func (b *Base) Common() *Base { return b }

// Validate checks the common field invariants.
func (b *Base) Validate() error {
	if b.ID == "" {
		return errors.NewValidationError("id", b.ID, "must not be empty")
	}
	if b.Price < 0 {
		return errors.NewValidationError("price", b.Price, "must be non-negative")
	}
	if b.Quantity < 0 {
		return errors.NewValidationError("quantity", b.Quantity, "must be non-negative")
	}
	return nil
}

func (b *Base) describe(kind Kind, extra string) string {
	return fmt.Sprintf("[%s] id=%s, name=%s, brand=%s, price=%.2f, qty=%d, active=%t, extra=%s",
		kind, b.ID, b.Name, b.Brand, b.Price, b.Quantity, b.Active, extra)
}

// equalFold is an ASCII-only case-insensitive comparison. Product IDs and
// kind names are plain ASCII, so this avoids pulling Unicode case tables
// into the hot sort path.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// EqualID compares two product IDs case-insensitively.
func EqualID(a, b string) bool {
	return equalFold(a, b)
}

// LessID reports whether ID a orders before ID b, case-insensitively.
func LessID(a, b string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return ca < cb
		}
	}
	return len(a) < len(b)
}
