package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktake/stocktake/pkg/errors"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"Laptop", KindLaptop, true},
		{"laptop", KindLaptop, true},
		{"LAPTOP", KindLaptop, true},
		{"Phone", KindPhone, true},
		{"phone", KindPhone, true},
		{"Tablet", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kind, ok := ParseKind(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestDiscountRates(t *testing.T) {
	laptop, err := NewLaptop("LP01", "ThinkPad", "Lenovo", 1000, 5, true, 24)
	require.NoError(t, err)
	assert.Equal(t, 0.10, laptop.DiscountRate())

	phone, err := NewPhone("PH01", "Galaxy", "Samsung", 500, 3, true, true)
	require.NoError(t, err)
	assert.Equal(t, 0.05, phone.DiscountRate())
}

func TestExtraSummary(t *testing.T) {
	laptop, _ := NewLaptop("LP01", "ThinkPad", "Lenovo", 1000, 5, true, 24)
	assert.Equal(t, "W:24m", laptop.ExtraSummary())

	with5G, _ := NewPhone("PH01", "Galaxy", "Samsung", 500, 3, true, true)
	assert.Equal(t, "5G:Yes", with5G.ExtraSummary())

	without5G, _ := NewPhone("PH02", "Nokia", "HMD", 100, 3, true, false)
	assert.Equal(t, "5G:No", without5G.ExtraSummary())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		field string
	}{
		{
			name: "empty id",
			build: func() error {
				_, err := NewLaptop("", "ThinkPad", "Lenovo", 1000, 5, true, 24)
				return err
			},
			field: "id",
		},
		{
			name: "negative price",
			build: func() error {
				_, err := NewPhone("PH01", "Galaxy", "Samsung", -1, 3, true, true)
				return err
			},
			field: "price",
		},
		{
			name: "negative quantity",
			build: func() error {
				_, err := NewPhone("PH01", "Galaxy", "Samsung", 500, -3, true, true)
				return err
			},
			field: "quantity",
		},
		{
			name: "negative warranty",
			build: func() error {
				_, err := NewLaptop("LP01", "ThinkPad", "Lenovo", 1000, 5, true, -1)
				return err
			},
			field: "warrantyMonths",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestClone(t *testing.T) {
	laptop, _ := NewLaptop("LP01", "ThinkPad", "Lenovo", 1000, 5, true, 24)
	clone := laptop.Clone()

	clone.Common().Quantity = 1
	assert.Equal(t, 5, laptop.Quantity)
	assert.Equal(t, 1, clone.Common().Quantity)
}

func TestIDOrdering(t *testing.T) {
	assert.True(t, EqualID("lp01", "LP01"))
	assert.False(t, EqualID("lp01", "LP02"))

	assert.True(t, LessID("LP01", "lp02"))
	assert.False(t, LessID("lp02", "LP01"))
	assert.True(t, LessID("LP1", "LP10"))
	assert.False(t, LessID("lp01", "LP01"))
}

func TestString(t *testing.T) {
	laptop, _ := NewLaptop("LP01", "ThinkPad", "Lenovo", 999.5, 5, true, 24)
	s := laptop.String()
	assert.Contains(t, s, "[Laptop]")
	assert.Contains(t, s, "id=LP01")
	assert.Contains(t, s, "price=999.50")
	assert.Contains(t, s, "warranty=24 months")
}
