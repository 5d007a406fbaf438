package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktake/stocktake/pkg/errors"
)

func TestEncode(t *testing.T) {
	laptop, _ := NewLaptop("LP01", "ThinkPad X1", "Lenovo", 1499.99, 5, true, 36)
	assert.Equal(t, "Laptop;LP01;ThinkPad X1;Lenovo;1499.99;5;true;36", Encode(laptop))

	phone, _ := NewPhone("PH01", "Galaxy S24", "Samsung", 800, 10, false, true)
	assert.Equal(t, "Phone;PH01;Galaxy S24;Samsung;800;10;false;true", Encode(phone))
}

func TestDecodeRoundTrip(t *testing.T) {
	products := []Product{
		mustLaptop(t, "LP01", "ThinkPad X1", "Lenovo", 1499.99, 5, true, 36),
		mustLaptop(t, "lp02", "MacBook Air", "Apple", 1199, 0, false, 12),
		mustPhone(t, "PH01", "Galaxy S24", "Samsung", 800.5, 10, true, true),
		mustPhone(t, "ph02", "Nokia 3310", "HMD", 49.9, 2, true, false),
	}

	for _, p := range products {
		t.Run(p.Common().ID, func(t *testing.T) {
			decoded, err := Decode(Encode(p))
			require.NoError(t, err)
			require.NotNil(t, decoded)
			assert.Equal(t, p, decoded)
		})
	}
}

func TestDecodeAbsent(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"whitespace", "   \t "},
		{"too few fields", "Laptop;LP01;ThinkPad;Lenovo;1000;5;true"},
		{"unknown type", "Tablet;TB01;iPad;Apple;600;4;true;x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.line)
			assert.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{"bad price", "Laptop;LP01;ThinkPad;Lenovo;abc;5;true;36", "price"},
		{"bad quantity", "Laptop;LP01;ThinkPad;Lenovo;1000;many;true;36", "quantity"},
		{"bad active", "Phone;PH01;Galaxy;Samsung;800;10;maybe;true", "active"},
		{"bad warranty", "Laptop;LP01;ThinkPad;Lenovo;1000;5;true;soon", "warrantyMonths"},
		{"bad 5g flag", "Phone;PH01;Galaxy;Samsung;800;10;true;perhaps", "support5G"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.line)
			require.Error(t, err)
			assert.Nil(t, p)

			var perr *errors.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.field, perr.Field)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

// TestEncodeSeparatorInFieldBreaksRoundTrip documents that field values
// are not escaped: a ";" inside a name shifts every later field, so the
// encoded line no longer decodes to the original product.
func TestEncodeSeparatorInFieldBreaksRoundTrip(t *testing.T) {
	laptop := mustLaptop(t, "LP01", "Think;Pad", "Lenovo", 1000, 5, true, 24)
	line := Encode(laptop)
	assert.Equal(t, "Laptop;LP01;Think;Pad;Lenovo;1000;5;true;24", line)

	// The shifted fields put "Lenovo" where the price belongs.
	p, err := Decode(line)
	require.Error(t, err)
	assert.Nil(t, p)

	var perr *errors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "price", perr.Field)
	assert.Equal(t, "Lenovo", perr.Value)
}

func TestDecodeCaseInsensitiveType(t *testing.T) {
	p, err := Decode("laptop;LP01;ThinkPad;Lenovo;1000;5;true;36")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, KindLaptop, p.Kind())

	p, err = Decode("PHONE;PH01;Galaxy;Samsung;800;10;true;false")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, KindPhone, p.Kind())
}

func mustLaptop(t *testing.T, id, name, brand string, price float64, qty int, active bool, warranty int) *Laptop {
	t.Helper()
	l, err := NewLaptop(id, name, brand, price, qty, active, warranty)
	require.NoError(t, err)
	return l
}

func mustPhone(t *testing.T, id, name, brand string, price float64, qty int, active bool, support5G bool) *Phone {
	t.Helper()
	p, err := NewPhone(id, name, brand, price, qty, active, support5G)
	require.NoError(t, err)
	return p
}
