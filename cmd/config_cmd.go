package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cotiza/internal/config"
	"cotiza/internal/render"
	"cotiza/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current defaults",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	setupStyling()
	dbPath := cfg.Storage.DBPath
	if dbPath == "" {
		dbPath = store.DefaultPath()
	}

	fmt.Println()
	fmt.Printf("  Config file: %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print("  (not created yet, using defaults)")
	}
	fmt.Println()
	fmt.Println()
	fmt.Print(render.RenderTable(render.Table{
		Rows: [][]string{
			{"Currency", cfg.General.Currency},
			{"Default hourly rate", fmt.Sprintf("%.2f", cfg.General.DefaultHourlyRate)},
			{"IGV on new budgets", fmt.Sprintf("%t", cfg.General.IGVEnabled)},
			{"Company name", cfg.Company.Name},
			{"Theme", cfg.Appearance.Theme},
			{"Database", dbPath},
		},
	}))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config file already exists at %s", config.ConfigPath())
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.ConfigPath())
	return nil
}
