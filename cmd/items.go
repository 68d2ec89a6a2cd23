package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cotiza/internal/engine"
	"cotiza/internal/model"
	"cotiza/internal/render"
)

var (
	flagItemDesc  string
	flagItemHours float64
	flagItemFixed float64
	flagItemMode  string
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage budget line items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <project>",
	Short: "Add a line item to a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemAdd,
}

var itemSetCmd = &cobra.Command{
	Use:   "set <project> <item>",
	Short: "Update fields of a line item",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemSet,
}

var itemRmCmd = &cobra.Command{
	Use:   "rm <project> <item>",
	Short: "Remove a line item",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemRm,
}

var itemListCmd = &cobra.Command{
	Use:   "list <project>",
	Short: "List a project's line items",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemList,
}

func init() {
	for _, c := range []*cobra.Command{itemAddCmd, itemSetCmd} {
		c.Flags().StringVar(&flagItemDesc, "desc", "", "Item description")
		c.Flags().Float64Var(&flagItemHours, "hours", 0, "Estimated hours (hourly mode)")
		c.Flags().Float64Var(&flagItemFixed, "fixed", 0, "Fixed price (switches the item to fixed mode)")
		c.Flags().StringVar(&flagItemMode, "mode", "", "Pricing mode: hourly or fixed")
	}
	itemCmd.AddCommand(itemAddCmd, itemSetCmd, itemRmCmd, itemListCmd)
	rootCmd.AddCommand(itemCmd)
}

// itemPatchFromFlags builds the partial update from whichever flags were set.
func itemPatchFromFlags(cmd *cobra.Command) (engine.ItemPatch, error) {
	var patch engine.ItemPatch
	if cmd.Flags().Changed("desc") {
		patch.Description = &flagItemDesc
	}
	if cmd.Flags().Changed("hours") {
		patch.Hours = &flagItemHours
	}
	if cmd.Flags().Changed("fixed") {
		patch.FixedPrice = &flagItemFixed
		if !cmd.Flags().Changed("mode") {
			mode := model.PricingFixed
			patch.PricingMode = &mode
		}
	}
	if cmd.Flags().Changed("mode") {
		switch flagItemMode {
		case "hourly":
			mode := model.PricingHourly
			patch.PricingMode = &mode
		case "fixed":
			mode := model.PricingFixed
			patch.PricingMode = &mode
		default:
			return patch, fmt.Errorf("unknown pricing mode %q (want hourly or fixed)", flagItemMode)
		}
	}
	return patch, nil
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := resolveProject(s.eng.Snapshot(), args[0])
	if err != nil {
		return err
	}
	patch, err := itemPatchFromFlags(cmd)
	if err != nil {
		return err
	}

	id := s.eng.AddItem(p.ID)
	s.eng.UpdateItem(p.ID, id, patch)

	fmt.Printf("  Added item %s to %q\n", shortID(id), p.Name)
	return nil
}

func runItemSet(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	b := s.eng.Snapshot()
	p, err := resolveProject(b, args[0])
	if err != nil {
		return err
	}
	it, err := resolveItem(p, args[1])
	if err != nil {
		return err
	}
	patch, err := itemPatchFromFlags(cmd)
	if err != nil {
		return err
	}

	s.eng.UpdateItem(p.ID, it.ID, patch)
	fmt.Printf("  Updated item %s\n", shortID(it.ID))
	return nil
}

func runItemRm(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	b := s.eng.Snapshot()
	p, err := resolveProject(b, args[0])
	if err != nil {
		return err
	}
	it, err := resolveItem(p, args[1])
	if err != nil {
		return err
	}

	s.eng.RemoveItem(p.ID, it.ID)
	fmt.Printf("  Removed item %s\n", shortID(it.ID))
	return nil
}

func runItemList(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	setupStyling()
	b := s.eng.Snapshot()
	p, err := resolveProject(b, args[0])
	if err != nil {
		return err
	}
	if len(p.Items) == 0 {
		fmt.Printf("\n  No items in %q yet.\n", p.Name)
		return nil
	}

	money := currencyFormatter(s.cfg)
	rows := make([][]string, 0, len(p.Items))
	for i, it := range p.Items {
		desc := it.Description
		if desc == "" {
			desc = "(no description)"
		}
		mode := "hourly"
		hours := render.FormatHours(it.Hours)
		if it.PricingMode == model.PricingFixed {
			mode = "fixed"
			hours = "—"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			shortID(it.ID),
			desc,
			mode,
			hours,
			money(engine.ItemTotal(b, it)),
		})
	}

	fmt.Println()
	fmt.Print(render.RenderTable(render.Table{
		Title:   p.Name,
		Headers: []string{"#", "ID", "Description", "Mode", "Hours", "Total"},
		Rows:    rows,
	}))
	return nil
}
