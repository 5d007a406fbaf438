package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/product"
)

func newStore(t *testing.T, products ...product.Product) *Store {
	t.Helper()
	s, err := New(WithProducts(products...))
	require.NoError(t, err)
	return s
}

func laptop(t *testing.T, id string, price float64, qty int) *product.Laptop {
	t.Helper()
	l, err := product.NewLaptop(id, "ThinkPad", "Lenovo", price, qty, true, 24)
	require.NoError(t, err)
	return l
}

func phone(t *testing.T, id string, price float64, qty int) *product.Phone {
	t.Helper()
	p, err := product.NewPhone(id, "Galaxy", "Samsung", price, qty, true, true)
	require.NoError(t, err)
	return p
}

func ids(products []product.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Common().ID
	}
	return out
}

func TestAddKeepsSortedOrder(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Add(phone(t, "PH02", 500, 3)))
	require.NoError(t, s.Add(laptop(t, "lp03", 900, 1)))
	require.NoError(t, s.Add(laptop(t, "LP01", 1000, 5)))

	assert.Equal(t, []string{"LP01", "lp03", "PH02"}, ids(s.Products()))
}

func TestAddDuplicateIDCaseInsensitive(t *testing.T) {
	s := newStore(t, laptop(t, "LP01", 1000, 5))

	err := s.Add(phone(t, "lp01", 500, 3))
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))

	// The failed add leaves the catalog unchanged.
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"LP01"}, ids(s.Products()))
}

func TestGetCaseInsensitive(t *testing.T) {
	s := newStore(t, laptop(t, "LP01", 1000, 5))

	p, ok := s.Get("lp01")
	require.True(t, ok)
	assert.Equal(t, "LP01", p.Common().ID)

	_, ok = s.Get("PH99")
	assert.False(t, ok)
}

func TestProductsReturnsCopies(t *testing.T) {
	s := newStore(t, laptop(t, "LP01", 1000, 5))

	snapshot := s.Products()
	snapshot[0].Common().Quantity = 0

	p, ok := s.Get("LP01")
	require.True(t, ok)
	assert.Equal(t, 5, p.Common().Quantity)
}

func TestUpdatePartialFields(t *testing.T) {
	s := newStore(t, laptop(t, "LP01", 1000, 5))

	name := "ThinkPad X1"
	price := 1200.0
	warranty := 36
	updated, err := s.Update("lp01", Update{
		Name:           &name,
		Price:          &price,
		WarrantyMonths: &warranty,
	})
	require.NoError(t, err)

	lp, ok := updated.(*product.Laptop)
	require.True(t, ok)
	assert.Equal(t, "ThinkPad X1", lp.Name)
	assert.Equal(t, "Lenovo", lp.Brand) // skipped field unchanged
	assert.Equal(t, 1200.0, lp.Price)
	assert.Equal(t, 5, lp.Quantity) // skipped field unchanged
	assert.Equal(t, 36, lp.WarrantyMonths)
}

func TestUpdateNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.Update("LP99", Update{})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpdateRejectsOutOfDomainValues(t *testing.T) {
	s := newStore(t, laptop(t, "LP01", 1000, 5))

	badPrice := -10.0
	_, err := s.Update("LP01", Update{Price: &badPrice})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	// Nothing was applied.
	p, _ := s.Get("LP01")
	assert.Equal(t, 1000.0, p.Common().Price)
}

func TestUpdateRejectsWrongVariantField(t *testing.T) {
	s := newStore(t, phone(t, "PH01", 500, 3))

	warranty := 12
	_, err := s.Update("PH01", Update{WarrantyMonths: &warranty})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDelete(t *testing.T) {
	s := newStore(t, laptop(t, "LP01", 1000, 5), phone(t, "PH01", 500, 3))

	removed, err := s.Delete("lp01")
	require.NoError(t, err)
	assert.Equal(t, "LP01", removed.Common().ID)
	assert.Equal(t, []string{"PH01"}, ids(s.Products()))

	_, err = s.Delete("LP01")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeleteReturnsCopy(t *testing.T) {
	s := newStore(t, laptop(t, "LP01", 1000, 5))
	stored := s.products[0]

	removed, err := s.Delete("LP01")
	require.NoError(t, err)
	assert.NotSame(t, stored, removed, "callers must not receive the stored instance")
	assert.Equal(t, stored, removed)
}

func TestSellDecrementsStock(t *testing.T) {
	s := newStore(t, laptop(t, "LP01", 1000, 10))

	r, err := s.Sell("LP01", 3, false)
	require.NoError(t, err)
	assert.InDelta(t, 2700.00, r.FinalAmount, 1e-9)

	p, _ := s.Get("LP01")
	assert.Equal(t, 7, p.Common().Quantity)
}

func TestSellFailureLeavesStockUnchanged(t *testing.T) {
	inactive, err := product.NewLaptop("LP02", "ThinkPad", "Lenovo", 1000, 5, false, 24)
	require.NoError(t, err)
	s := newStore(t, laptop(t, "LP01", 1000, 5), inactive)

	tests := []struct {
		name  string
		id    string
		qty   int
		check func(error) bool
	}{
		{"not found", "ZZ99", 1, errors.IsNotFound},
		{"not active", "LP02", 1, errors.IsNotActive},
		{"zero quantity", "LP01", 0, errors.IsInvalidQuantity},
		{"over stock", "LP01", 6, errors.IsInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Sell(tt.id, tt.qty, false)
			require.Error(t, err)
			assert.True(t, tt.check(err))
		})
	}

	for _, p := range s.Products() {
		assert.Equal(t, 5, p.Common().Quantity)
	}
}

func TestReadOnlyStore(t *testing.T) {
	s, err := New(WithReadOnly(true))
	require.NoError(t, err)

	assert.ErrorIs(t, s.Add(laptop(t, "LP01", 1000, 5)), errors.ErrReadOnly)
	_, err = s.Update("LP01", Update{})
	assert.ErrorIs(t, err, errors.ErrReadOnly)
	_, err = s.Delete("LP01")
	assert.ErrorIs(t, err, errors.ErrReadOnly)
	_, err = s.Sell("LP01", 1, false)
	assert.ErrorIs(t, err, errors.ErrReadOnly)
}

func TestUpdateIsZero(t *testing.T) {
	assert.True(t, Update{}.IsZero())

	name := "x"
	assert.False(t, Update{Name: &name}.IsZero())
}
