package catalog

import (
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/product"
)

// Update is a partial update of one product. A nil field means "leave
// unchanged"; a set field is validated against its domain before it is
// applied. The original sentinel conventions (blank string, -1) belong
// to the prompt layer, which maps them onto nil pointers here.
type Update struct {
	Name     *string
	Brand    *string
	Price    *float64
	Quantity *int
	Active   *bool

	// Variant fields. Setting a field that does not belong to the
	// product's variant is a validation error.
	WarrantyMonths *int
	Support5G      *bool
}

// IsZero reports whether the update would change nothing.
func (u Update) IsZero() bool {
	return u.Name == nil && u.Brand == nil && u.Price == nil &&
		u.Quantity == nil && u.Active == nil &&
		u.WarrantyMonths == nil && u.Support5G == nil
}

// validate checks every provided field against its domain and the
// product's variant. Nothing is applied if any field fails.
func (u Update) validate(p product.Product) error {
	if u.Price != nil && *u.Price < 0 {
		return errors.NewValidationError("price", *u.Price, "must be non-negative")
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		return errors.NewValidationError("quantity", *u.Quantity, "must be non-negative")
	}
	if u.WarrantyMonths != nil {
		if _, ok := p.(*product.Laptop); !ok {
			return errors.NewValidationError("warrantyMonths", *u.WarrantyMonths, "only applies to laptops")
		}
		if *u.WarrantyMonths < 0 {
			return errors.NewValidationError("warrantyMonths", *u.WarrantyMonths, "must be non-negative")
		}
	}
	if u.Support5G != nil {
		if _, ok := p.(*product.Phone); !ok {
			return errors.NewValidationError("support5G", *u.Support5G, "only applies to phones")
		}
	}
	return nil
}

// apply mutates the product in place. Caller has already validated.
func (u Update) apply(p product.Product) {
	b := p.Common()
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Brand != nil {
		b.Brand = *u.Brand
	}
	if u.Price != nil {
		b.Price = *u.Price
	}
	if u.Quantity != nil {
		b.Quantity = *u.Quantity
	}
	if u.Active != nil {
		b.Active = *u.Active
	}

	switch v := p.(type) {
	case *product.Laptop:
		if u.WarrantyMonths != nil {
			v.WarrantyMonths = *u.WarrantyMonths
		}
	case *product.Phone:
		if u.Support5G != nil {
			v.Support5G = *u.Support5G
		}
	}
}
