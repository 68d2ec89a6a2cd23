// Package config loads and saves the cotiza user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"cotiza/internal/model"
)

// Config holds all cotiza configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Company    CompanyConfig    `toml:"company"`
	Appearance AppearanceConfig `toml:"appearance"`
	Storage    StorageConfig    `toml:"storage"`
}

// GeneralConfig holds budget defaults applied to every new budget.
type GeneralConfig struct {
	Currency          string  `toml:"currency"`
	DefaultHourlyRate float64 `toml:"default_hourly_rate"`
	IGVEnabled        bool    `toml:"igv_enabled"`
}

// CompanyConfig holds the issuing company identity seeded into new budgets.
type CompanyConfig struct {
	Name    string `toml:"name,omitempty"`
	Address string `toml:"address,omitempty"`
	Phone   string `toml:"phone,omitempty"`
	Email   string `toml:"email,omitempty"`
	Website string `toml:"website,omitempty"`
	TaxID   string `toml:"tax_id,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:          "USD",
			DefaultHourlyRate: model.DefaultHourlyRate,
			IGVEnabled:        true,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cotiza")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cotiza")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// NewBudget returns a default budget with the config's company identity and
// rate preferences applied.
func NewBudget(cfg Config) model.Budget {
	b := model.DefaultBudget()
	if cfg.General.DefaultHourlyRate > 0 {
		b.HourlyRate = cfg.General.DefaultHourlyRate
	}
	b.IGVEnabled = cfg.General.IGVEnabled
	if cfg.Company.Name != "" {
		b.CompanyInfo = model.CompanyInfo{
			Name:    cfg.Company.Name,
			Address: cfg.Company.Address,
			Phone:   cfg.Company.Phone,
			Email:   cfg.Company.Email,
			Website: cfg.Company.Website,
			TaxID:   cfg.Company.TaxID,
		}
	}
	return b
}
