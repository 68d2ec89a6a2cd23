package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"cotiza/internal/config"
	"cotiza/internal/render"
	"cotiza/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Long:  "Capture your company identity, currency, default hourly rate, and theme into the config file. Every new budget starts from these values.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupAnswers holds the wizard's raw input before it is applied to config.
// Numeric fields stay strings until applySetupAnswers parses them.
type setupAnswers struct {
	companyName    string
	companyAddress string
	companyPhone   string
	companyEmail   string
	companyWebsite string
	companyTaxID   string

	currency string
	rate     string
	igv      bool
	theme    string
}

// answersFromConfig prefills the wizard with the current config so rerunning
// setup edits rather than starts over.
func answersFromConfig(cfg config.Config) setupAnswers {
	return setupAnswers{
		companyName:    cfg.Company.Name,
		companyAddress: cfg.Company.Address,
		companyPhone:   cfg.Company.Phone,
		companyEmail:   cfg.Company.Email,
		companyWebsite: cfg.Company.Website,
		companyTaxID:   cfg.Company.TaxID,
		currency:       cfg.General.Currency,
		rate:           render.FormatHours(cfg.General.DefaultHourlyRate),
		igv:            cfg.General.IGVEnabled,
		theme:          cfg.Appearance.Theme,
	}
}

// applySetupAnswers merges the wizard's answers into the config. An
// unparsable or non-positive rate keeps the config's current value.
func applySetupAnswers(cfg config.Config, a setupAnswers) config.Config {
	cfg.Company.Name = strings.TrimSpace(a.companyName)
	cfg.Company.Address = strings.TrimSpace(a.companyAddress)
	cfg.Company.Phone = strings.TrimSpace(a.companyPhone)
	cfg.Company.Email = strings.TrimSpace(a.companyEmail)
	cfg.Company.Website = strings.TrimSpace(a.companyWebsite)
	cfg.Company.TaxID = strings.TrimSpace(a.companyTaxID)

	cfg.General.Currency = a.currency
	if rate, err := strconv.ParseFloat(strings.TrimSpace(a.rate), 64); err == nil && rate > 0 {
		cfg.General.DefaultHourlyRate = rate
	}
	cfg.General.IGVEnabled = a.igv
	cfg.Appearance.Theme = a.theme
	return cfg
}

func validateRate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func newSetupForm(a *setupAnswers) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company name").
				Description("Shown on every proposal").
				Placeholder("Tu Empresa").
				Value(&a.companyName),
			huh.NewInput().Title("Address").Value(&a.companyAddress),
			huh.NewInput().Title("Phone").Value(&a.companyPhone),
			huh.NewInput().Title("Email").Value(&a.companyEmail),
			huh.NewInput().Title("Website").Value(&a.companyWebsite),
			huh.NewInput().Title("RUC / Tax ID").Value(&a.companyTaxID),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency").
				Options(
					huh.NewOption("US Dollar ($)", "USD"),
					huh.NewOption("Peruvian Sol (S/)", "PEN"),
					huh.NewOption("Euro (€)", "EUR"),
				).
				Value(&a.currency),
			huh.NewInput().
				Title("Default hourly rate").
				Description("Applied to every new budget").
				Validate(validateRate).
				Value(&a.rate),
			huh.NewConfirm().
				Title("Apply IGV (18%) on new budgets?").
				Value(&a.igv),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&a.theme),
		),
	)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("  Existing config could not be read; starting from defaults.")
		cfg = config.DefaultConfig()
	}
	answers := answersFromConfig(cfg)

	fmt.Println()
	fmt.Println("  Welcome to cotiza!")
	fmt.Println()

	if err := newSetupForm(&answers).Run(); err != nil {
		return err
	}

	cfg = applySetupAnswers(cfg, answers)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `cotiza setup` anytime to reconfigure.")
	return nil
}
