// Package table converts products, receipts, and summaries to the
// shared table format rendered by the output package.
package table

import (
	"fmt"
	"strconv"

	"github.com/stocktake/stocktake/internal/cmd/output"
	"github.com/stocktake/stocktake/pkg/pricing"
	"github.com/stocktake/stocktake/pkg/product"
	"github.com/stocktake/stocktake/pkg/query"
)

// ProductsToTableData converts a catalog snapshot to table format.
func ProductsToTableData(products []product.Product) output.Data {
	headers := []string{"No", "ID", "Type", "Name", "Brand", "Price", "Qty", "Active", "Extra"}

	rows := make([][]string, 0, len(products))
	for i, p := range products {
		b := p.Common()
		active := "No"
		if b.Active {
			active = "Yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.ID,
			string(p.Kind()),
			Truncate(b.Name, 20),
			Truncate(b.Brand, 12),
			FormatMoney(b.Price),
			strconv.Itoa(b.Quantity),
			active,
			p.ExtraSummary(),
		})
	}

	return output.Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []output.Align{
			output.AlignRight,
			output.AlignLeft,
			output.AlignLeft,
			output.AlignLeft,
			output.AlignLeft,
			output.AlignRight,
			output.AlignRight,
			output.AlignLeft,
			output.AlignLeft,
		},
	}
}

// SnapshotToTableData is the untruncated variant used for the inventory
// export file: names and brands are written in full.
func SnapshotToTableData(products []product.Product) output.Data {
	data := ProductsToTableData(products)
	for i, p := range products {
		b := p.Common()
		data.Rows[i][3] = b.Name
		data.Rows[i][4] = b.Brand
	}
	return data
}

// ReceiptToTableData renders one sale receipt as a key-value invoice.
func ReceiptToTableData(r pricing.Receipt) output.Data {
	rows := [][]string{
		{"Date", r.Time.Format("2006-01-02 15:04:05")},
		{"Product", fmt.Sprintf("%s (%s)", r.ProductName, r.ProductKind)},
		{"Brand", r.Brand},
		{"Unit", FormatMoney(r.UnitPrice)},
		{"Quantity", strconv.Itoa(r.Quantity)},
		{"Sub total", FormatMoney(r.Subtotal)},
		{"Product discount", "-" + FormatMoney(r.ProductDiscount)},
	}
	if r.Student {
		rows = append(rows, []string{"Student discount", "-" + FormatMoney(r.StudentDiscount)})
	}
	rows = append(rows, []string{"TOTAL", FormatMoney(r.FinalAmount)})

	return output.Data{
		Headers: []string{"Invoice", ""},
		Rows:    rows,
	}
}

// SummaryToTableData renders the dashboard aggregation.
func SummaryToTableData(s query.Summary) output.Data {
	rows := [][]string{
		{"Total quantity in stock", strconv.Itoa(s.TotalQuantity), ""},
		{"Total inventory value", FormatMoney(s.TotalValue), ""},
		{"Laptop", strconv.Itoa(s.Laptops.Quantity), FormatMoney(s.Laptops.Value)},
		{"Phone", strconv.Itoa(s.Phones.Quantity), FormatMoney(s.Phones.Value)},
	}
	for i, p := range s.TopByPrice {
		b := p.Common()
		rows = append(rows, []string{
			fmt.Sprintf("Top %d by price", i+1),
			fmt.Sprintf("%s (%s)", b.Name, p.Kind()),
			fmt.Sprintf("price=%s, qty=%d", FormatMoney(b.Price), b.Quantity),
		})
	}

	return output.Data{
		Headers: []string{"Metric", "Value", "Detail"},
		Rows:    rows,
	}
}

// FormatMoney renders a money amount with two-decimal fixed formatting.
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// Truncate shortens a string to maxLen runes with a "..." suffix.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
