package query

import (
	"sort"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/product"
)

// KindSummary aggregates one product variant.
type KindSummary struct {
	Quantity int
	Value    float64
}

// Summary is the dashboard aggregation over one catalog snapshot.
type Summary struct {
	// TotalQuantity is the number of units in stock across all products.
	TotalQuantity int

	// TotalValue is price * quantity summed over all products.
	TotalValue float64

	// Laptops and Phones break the totals down per variant.
	Laptops KindSummary
	Phones  KindSummary

	// TopByPrice holds up to DashboardTopN products ordered by unit
	// price descending. Ties keep the input sequence order.
	TopByPrice []product.Product
}

// Dashboard aggregates quantity and value totals and ranks the most
// expensive products.
func Dashboard(products []product.Product) Summary {
	var s Summary

	for _, p := range products {
		b := p.Common()
		value := b.Price * float64(b.Quantity)
		s.TotalQuantity += b.Quantity
		s.TotalValue += value

		switch p.Kind() {
		case product.KindLaptop:
			s.Laptops.Quantity += b.Quantity
			s.Laptops.Value += value
		case product.KindPhone:
			s.Phones.Quantity += b.Quantity
			s.Phones.Value += value
		}
	}

	ranked := make([]product.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Common().Price > ranked[j].Common().Price
	})
	if len(ranked) > constants.DashboardTopN {
		ranked = ranked[:constants.DashboardTopN]
	}
	s.TopByPrice = ranked

	return s
}
