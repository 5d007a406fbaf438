package product

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
)

// Encode serializes a product to one catalog line:
//
//	type;id;name;brand;price;quantity;active;extra
//
// where extra is warrantyMonths for laptops and support5G for phones.
// The decimal representation is stable so Decode(Encode(p)) == p.
//
// Field values are not escaped: a name or brand containing the ";"
// separator shifts every later field and will not survive a round trip.
func Encode(p Product) string {
	b := p.Common()
	fields := []string{
		string(p.Kind()),
		b.ID,
		b.Name,
		b.Brand,
		strconv.FormatFloat(b.Price, 'f', -1, 64),
		strconv.Itoa(b.Quantity),
		strconv.FormatBool(b.Active),
		p.ExtraField(),
	}
	return strings.Join(fields, constants.RecordSeparator)
}

// Decode parses one catalog line into a product.
//
// Blank or whitespace-only lines, lines with fewer than eight fields, and
// lines with an unrecognized type yield (nil, nil): the line is absent, not
// an error. A malformed numeric or boolean subfield is a hard failure for
// the line and is reported as a ParseError; the load policy (skip vs abort)
// belongs to the caller.
func Decode(line string) (Product, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	parts := strings.Split(line, constants.RecordSeparator)
	if len(parts) < constants.RecordFieldCount {
		return nil, nil
	}

	kind, ok := ParseKind(parts[0])
	if !ok {
		return nil, nil
	}

	id := parts[1]
	name := parts[2]
	brand := parts[3]

	price, err := cast.ToFloat64E(parts[4])
	if err != nil {
		return nil, parseError("price", parts[4], line, err)
	}
	quantity, err := cast.ToIntE(parts[5])
	if err != nil {
		return nil, parseError("quantity", parts[5], line, err)
	}
	active, err := cast.ToBoolE(parts[6])
	if err != nil {
		return nil, parseError("active", parts[6], line, err)
	}

	switch kind {
	case KindLaptop:
		warranty, err := cast.ToIntE(parts[7])
		if err != nil {
			return nil, parseError("warrantyMonths", parts[7], line, err)
		}
		return NewLaptop(id, name, brand, price, quantity, active, warranty)
	case KindPhone:
		support5G, err := cast.ToBoolE(parts[7])
		if err != nil {
			return nil, parseError("support5G", parts[7], line, err)
		}
		return NewPhone(id, name, brand, price, quantity, active, support5G)
	}
	return nil, nil
}

func parseError(field, value, line string, err error) error {
	perr := errors.NewParseError(field, value, err)
	perr.Line = line
	return perr
}
