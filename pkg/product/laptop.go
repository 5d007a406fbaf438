package product

import (
	"fmt"
	"strconv"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
)

// Laptop is a product with a warranty period in months.
type Laptop struct {
	Base
	WarrantyMonths int
}

// NewLaptop creates a laptop and validates its invariants.
func NewLaptop(id, name, brand string, price float64, quantity int, active bool, warrantyMonths int) (*Laptop, error) {
	l := &Laptop{
		Base: Base{
			ID:       id,
			Name:     name,
			Brand:    brand,
			Price:    price,
			Quantity: quantity,
			Active:   active,
		},
		WarrantyMonths: warrantyMonths,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Kind implements Product.
func (l *Laptop) Kind() Kind { return KindLaptop }

// DiscountRate implements Product.
func (l *Laptop) DiscountRate() float64 { return constants.LaptopDiscountRate }

// ExtraSummary implements Product.
func (l *Laptop) ExtraSummary() string {
	return fmt.Sprintf("W:%dm", l.WarrantyMonths)
}

// ExtraField implements Product.
func (l *Laptop) ExtraField() string {
	return strconv.Itoa(l.WarrantyMonths)
}

// Clone implements Product.
func (l *Laptop) Clone() Product {
	clone := *l
	return &clone
}

// Validate implements Product.
func (l *Laptop) Validate() error {
	if err := l.Base.Validate(); err != nil {
		return err
	}
	if l.WarrantyMonths < 0 {
		return errors.NewValidationError("warrantyMonths", l.WarrantyMonths, "must be non-negative")
	}
	return nil
}

// String implements fmt.Stringer.
func (l *Laptop) String() string {
	return l.describe(KindLaptop, l.ExtraField()) + fmt.Sprintf(" (warranty=%d months)", l.WarrantyMonths)
}
