package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/internal/cmd/ui"
	"github.com/stocktake/stocktake/pkg/audit"
	"github.com/stocktake/stocktake/pkg/catalog"
	"github.com/stocktake/stocktake/pkg/product"
	"github.com/stocktake/stocktake/pkg/query"
)

// NewShellCommand creates the interactive shell command: a numbered
// menu loop over the same operations the one-shot commands expose.
// Exiting the shell saves the catalog.
func NewShellCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		GroupID: "inventory",
		Short:   "Run the interactive inventory menu",
		Aliases: []string{"menu", "interactive"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := &shellSession{
				rt:      rt,
				in:      bufio.NewReader(cmd.InOrStdin()),
				console: rt.Console(),
			}
			return session.run()
		},
	}
}

// shellSession drives the line-oriented menu loop.
type shellSession struct {
	rt      Runtime
	in      *bufio.Reader
	console *ui.Console
}

func (s *shellSession) run() error {
	// Load up front so a broken catalog file surfaces before the menu.
	if _, err := s.rt.Store(); err != nil {
		return err
	}

	s.console.Title("Stocktake Inventory")

	for {
		s.printMenu()
		choice, err := s.prompt("Select an option: ")
		if err != nil {
			if err == io.EOF {
				// Treat end of input like exit so the catalog is saved.
				return s.exit()
			}
			return err
		}

		switch choice {
		case "1":
			s.report(s.addInteractive())
		case "2":
			s.report(s.listInteractive())
		case "3":
			s.report(s.updateInteractive())
		case "4":
			s.report(s.deleteInteractive())
		case "5":
			s.report(s.sellInteractive())
		case "6":
			s.report(s.searchInteractive())
		case "7":
			s.report(s.dashboardInteractive())
		case "8":
			s.report(s.rt.SaveStore())
		case "9":
			s.report(s.exportInteractive())
		case "0":
			return s.exit()
		default:
			_ = s.rt.Audit().Logf(audit.ActionInfo, "unknown menu choice %q", choice)
			s.console.Warning("Unknown option %q", choice)
		}
	}
}

func (s *shellSession) printMenu() {
	s.console.ThinLine()
	s.console.Line("1. Add product")
	s.console.Line("2. List products")
	s.console.Line("3. Update product")
	s.console.Line("4. Delete product")
	s.console.Line("5. Sell product")
	s.console.Line("6. Search")
	s.console.Line("7. Dashboard")
	s.console.Line("8. Save")
	s.console.Line("9. Export inventory")
	s.console.Line("0. Exit")
}

// report renders a failed step without aborting the menu loop.
func (s *shellSession) report(err error) {
	if err != nil {
		s.console.Error("%v", err)
	}
}

// exit saves the catalog and leaves the loop.
func (s *shellSession) exit() error {
	if err := s.rt.SaveStore(); err != nil {
		s.console.Error("Save on exit failed: %v", err)
		return err
	}
	s.console.Info("Catalog saved. Bye.")
	return nil
}

func (s *shellSession) addInteractive() error {
	kindInput, err := s.prompt("Type (laptop/phone): ")
	if err != nil {
		return err
	}
	kind, ok := product.ParseKind(kindInput)
	if !ok {
		return fmt.Errorf("unknown product type %q", kindInput)
	}

	id, err := s.prompt("ID: ")
	if err != nil {
		return err
	}
	name, err := s.prompt("Name: ")
	if err != nil {
		return err
	}
	brand, err := s.prompt("Brand: ")
	if err != nil {
		return err
	}
	price, err := s.promptFloat("Price: ")
	if err != nil {
		return err
	}
	quantity, err := s.promptInt("Quantity: ")
	if err != nil {
		return err
	}

	var p product.Product
	switch kind {
	case product.KindLaptop:
		warranty, err := s.promptInt("Warranty months: ")
		if err != nil {
			return err
		}
		p, err = product.NewLaptop(id, name, brand, price, quantity, true, warranty)
		if err != nil {
			return err
		}
	case product.KindPhone:
		has5G, err := s.promptBool("Supports 5G (y/n): ")
		if err != nil {
			return err
		}
		p, err = product.NewPhone(id, name, brand, price, quantity, true, has5G)
		if err != nil {
			return err
		}
	}

	return addProduct(s.rt, p)
}

func (s *shellSession) listInteractive() error {
	store, err := s.rt.Store()
	if err != nil {
		return err
	}
	return renderProducts(s.rt, store.Products(), true)
}

// updateInteractive maps the original prompt sentinels onto the
// pointer-based partial update: a blank answer keeps a text field, -1
// keeps a numeric one.
func (s *shellSession) updateInteractive() error {
	id, err := s.prompt("ID to update: ")
	if err != nil {
		return err
	}

	store, err := s.rt.Store()
	if err != nil {
		return err
	}
	current, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("product %s not found", id)
	}
	s.console.Info("Editing %s (blank keeps text fields, -1 keeps numbers)", current)

	var u catalog.Update

	if name, err := s.prompt("New name: "); err != nil {
		return err
	} else if name != "" {
		u.Name = &name
	}
	if brand, err := s.prompt("New brand: "); err != nil {
		return err
	} else if brand != "" {
		u.Brand = &brand
	}
	if price, keep, err := s.promptFloatSentinel("New price: "); err != nil {
		return err
	} else if !keep {
		u.Price = &price
	}
	if quantity, keep, err := s.promptIntSentinel("New quantity: "); err != nil {
		return err
	} else if !keep {
		u.Quantity = &quantity
	}
	if active, answered, err := s.promptBoolOptional("Active (y/n, blank keeps): "); err != nil {
		return err
	} else if answered {
		u.Active = &active
	}

	switch current.Kind() {
	case product.KindLaptop:
		if warranty, keep, err := s.promptIntSentinel("New warranty months: "); err != nil {
			return err
		} else if !keep {
			u.WarrantyMonths = &warranty
		}
	case product.KindPhone:
		if has5G, answered, err := s.promptBoolOptional("Supports 5G (y/n, blank keeps): "); err != nil {
			return err
		} else if answered {
			u.Support5G = &has5G
		}
	}

	if u.IsZero() {
		s.console.Info("Nothing changed")
		return nil
	}
	return updateProduct(s.rt, id, u)
}

func (s *shellSession) deleteInteractive() error {
	id, err := s.prompt("ID to delete: ")
	if err != nil {
		return err
	}
	return deleteProduct(s.rt, id)
}

func (s *shellSession) sellInteractive() error {
	id, err := s.prompt("ID to sell: ")
	if err != nil {
		return err
	}
	quantity, err := s.promptInt("Quantity: ")
	if err != nil {
		return err
	}
	student, err := s.promptBool("Student discount (y/n): ")
	if err != nil {
		return err
	}
	return sellProduct(s.rt, id, quantity, student)
}

func (s *shellSession) searchInteractive() error {
	keyword, err := s.prompt("Keyword (blank for all): ")
	if err != nil {
		return err
	}
	kindInput, err := s.prompt("Type (all/laptop/phone): ")
	if err != nil {
		return err
	}
	if kindInput == "" {
		kindInput = "all"
	}
	kind, ok := query.ParseKindFilter(kindInput)
	if !ok {
		return fmt.Errorf("unknown product type %q", kindInput)
	}
	minPrice, keep, err := s.promptFloatSentinel("Min price (-1 for unbounded): ")
	if err != nil {
		return err
	}
	if keep {
		minPrice = query.Unbounded
	}
	maxPrice, keep, err := s.promptFloatSentinel("Max price (-1 for unbounded): ")
	if err != nil {
		return err
	}
	if keep {
		maxPrice = query.Unbounded
	}

	return searchProducts(s.rt, query.Criteria{
		Keyword:  keyword,
		Kind:     kind,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
}

func (s *shellSession) dashboardInteractive() error {
	store, err := s.rt.Store()
	if err != nil {
		return err
	}
	summary := query.Dashboard(store.Products())

	s.console.Section("Dashboard")
	s.console.Line("Total quantity: %d", summary.TotalQuantity)
	s.console.Line("Total value:    %.2f", summary.TotalValue)
	s.console.Line("Laptops: qty=%d value=%.2f", summary.Laptops.Quantity, summary.Laptops.Value)
	s.console.Line("Phones:  qty=%d value=%.2f", summary.Phones.Quantity, summary.Phones.Value)
	for i, p := range summary.TopByPrice {
		b := p.Common()
		s.console.Line("Top %d: %s (%s) price=%.2f", i+1, b.Name, b.ID, b.Price)
	}
	return nil
}

func (s *shellSession) exportInteractive() error {
	store, err := s.rt.Store()
	if err != nil {
		return err
	}
	path := s.rt.ExportPath()
	if err := exportInventory(s.rt, store.Products(), path); err != nil {
		_ = s.rt.Audit().Logf(audit.ActionExportError, "%s: %v", path, err)
		return err
	}
	_ = s.rt.Audit().Logf(audit.ActionExport, "%s (%d products)", path, store.Len())
	s.console.Success("Exported inventory to %s", path)
	return nil
}

// prompt reads one trimmed line. io.EOF is returned unchanged so the
// caller can treat end of input as exit.
func (s *shellSession) prompt(label string) (string, error) {
	fmt.Fprint(os.Stdout, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *shellSession) promptFloat(label string) (float64, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return v, nil
}

func (s *shellSession) promptInt(label string) (int, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", raw)
	}
	return v, nil
}

// promptFloatSentinel treats blank and -1 as "keep current value".
func (s *shellSession) promptFloatSentinel(label string) (value float64, keep bool, err error) {
	raw, err := s.prompt(label)
	if err != nil {
		return 0, false, err
	}
	if raw == "" || raw == "-1" {
		return 0, true, nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, false, fmt.Errorf("not a number: %q", raw)
	}
	return v, false, nil
}

// promptIntSentinel treats blank and -1 as "keep current value".
func (s *shellSession) promptIntSentinel(label string) (value int, keep bool, err error) {
	raw, err := s.prompt(label)
	if err != nil {
		return 0, false, err
	}
	if raw == "" || raw == "-1" {
		return 0, true, nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return 0, false, fmt.Errorf("not a whole number: %q", raw)
	}
	return v, false, nil
}

func (s *shellSession) promptBool(label string) (bool, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return false, err
	}
	return parseYesNo(raw)
}

// promptBoolOptional returns answered=false on a blank line.
func (s *shellSession) promptBoolOptional(label string) (value, answered bool, err error) {
	raw, err := s.prompt(label)
	if err != nil {
		return false, false, err
	}
	if raw == "" {
		return false, false, nil
	}
	v, err := parseYesNo(raw)
	if err != nil {
		return false, false, err
	}
	return v, true, nil
}

func parseYesNo(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("answer y or n, got %q", raw)
}
