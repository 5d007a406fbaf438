// Package pricing computes sale totals and discounts.
//
// The product discount is fixed per variant; the optional student
// discount is applied on the already-discounted amount, not stacked
// additively on the raw subtotal.
package pricing

import (
	"time"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/product"
)

// Receipt is the immutable result of one sale. It is computed once,
// returned to the caller, and appended to the sales ledger; it is never
// persisted as a catalog entity.
type Receipt struct {
	Time            time.Time
	ProductID       string
	ProductKind     product.Kind
	ProductName     string
	Brand           string
	UnitPrice       float64
	Quantity        int
	Subtotal        float64
	ProductDiscount float64
	StudentDiscount float64
	TotalDiscount   float64
	FinalAmount     float64
	Student         bool
}

// Quote validates a prospective sale and computes its receipt without
// mutating the product. The caller decrements stock only after a
// successful quote, so any validation failure has zero side effects.
func Quote(p product.Product, quantity int, student bool, at time.Time) (Receipt, error) {
	b := p.Common()

	if !b.Active {
		return Receipt{}, &errors.NotActiveError{ID: b.ID}
	}
	if quantity <= 0 || quantity > b.Quantity {
		return Receipt{}, &errors.InvalidQuantityError{
			ID:        b.ID,
			Requested: quantity,
			InStock:   b.Quantity,
		}
	}

	subtotal := b.Price * float64(quantity)
	productDiscount := subtotal * p.DiscountRate()
	baseFinal := subtotal - productDiscount

	var studentDiscount float64
	if student {
		studentDiscount = baseFinal * constants.StudentDiscountRate
	}

	return Receipt{
		Time:            at,
		ProductID:       b.ID,
		ProductKind:     p.Kind(),
		ProductName:     b.Name,
		Brand:           b.Brand,
		UnitPrice:       b.Price,
		Quantity:        quantity,
		Subtotal:        subtotal,
		ProductDiscount: productDiscount,
		StudentDiscount: studentDiscount,
		TotalDiscount:   productDiscount + studentDiscount,
		FinalAmount:     baseFinal - studentDiscount,
		Student:         student,
	}, nil
}
