package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate <amount>",
	Short: "Set the budget-wide hourly rate",
	Long:  "Set the hourly rate applied to every hourly-mode item. Totals re-price immediately; nothing is baked into stored items.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRate,
}

var taxCmd = &cobra.Command{
	Use:       "tax on|off",
	Short:     "Enable or disable the 18% IGV tax",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runTax,
}

func init() {
	rootCmd.AddCommand(rateCmd, taxCmd)
}

func runRate(_ *cobra.Command, args []string) error {
	rate, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid rate %q", args[0])
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	s.eng.SetHourlyRate(rate)
	money := currencyFormatter(s.cfg)
	fmt.Printf("  Hourly rate set to %s\n", money(s.eng.Snapshot().HourlyRate))
	return nil
}

func runTax(_ *cobra.Command, args []string) error {
	var enabled bool
	switch args[0] {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return fmt.Errorf("expected on or off, got %q", args[0])
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	s.eng.SetTaxEnabled(enabled)
	if enabled {
		fmt.Println("  IGV (18%) enabled.")
	} else {
		fmt.Println("  IGV disabled.")
	}
	return nil
}
