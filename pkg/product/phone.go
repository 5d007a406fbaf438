package product

import (
	"fmt"
	"strconv"

	"github.com/stocktake/stocktake/pkg/constants"
)

// Phone is a product with a 5G support flag.
type Phone struct {
	Base
	Support5G bool
}

// NewPhone creates a phone and validates its invariants.
func NewPhone(id, name, brand string, price float64, quantity int, active bool, support5G bool) (*Phone, error) {
	p := &Phone{
		Base: Base{
			ID:       id,
			Name:     name,
			Brand:    brand,
			Price:    price,
			Quantity: quantity,
			Active:   active,
		},
		Support5G: support5G,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Kind implements Product.
func (p *Phone) Kind() Kind { return KindPhone }

// DiscountRate implements Product.
func (p *Phone) DiscountRate() float64 { return constants.PhoneDiscountRate }

// ExtraSummary implements Product.
func (p *Phone) ExtraSummary() string {
	if p.Support5G {
		return "5G:Yes"
	}
	return "5G:No"
}

// ExtraField implements Product.
func (p *Phone) ExtraField() string {
	return strconv.FormatBool(p.Support5G)
}

// Clone implements Product.
func (p *Phone) Clone() Product {
	clone := *p
	return &clone
}

// String implements fmt.Stringer.
func (p *Phone) String() string {
	return p.describe(KindPhone, p.ExtraField()) + fmt.Sprintf(" (support5G=%t)", p.Support5G)
}
