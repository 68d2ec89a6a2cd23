package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotiza/internal/model"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.General.Currency)
	assert.InDelta(t, model.DefaultHourlyRate, cfg.General.DefaultHourlyRate, 1e-9)
	assert.True(t, cfg.General.IGVEnabled)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.Currency = "PEN"
	cfg.General.DefaultHourlyRate = 25
	cfg.Company.Name = "Estudio Lima"
	cfg.Company.TaxID = "20600000001"
	require.NoError(t, Save(cfg))
	require.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "PEN", got.General.Currency)
	assert.InDelta(t, 25, got.General.DefaultHourlyRate, 1e-9)
	assert.Equal(t, "Estudio Lima", got.Company.Name)
	assert.Equal(t, "20600000001", got.Company.TaxID)
}

func TestLoadBadTOML(t *testing.T) {
	dir := withTempConfigDir(t)

	path := filepath.Join(dir, "cotiza", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestNewBudgetAppliesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DefaultHourlyRate = 30
	cfg.General.IGVEnabled = false
	cfg.Company.Name = "Estudio Lima"
	cfg.Company.Email = "hola@estudio.pe"

	b := NewBudget(cfg)
	assert.InDelta(t, 30, b.HourlyRate, 1e-9)
	assert.False(t, b.IGVEnabled)
	assert.Equal(t, "Estudio Lima", b.CompanyInfo.Name)
	assert.Equal(t, "hola@estudio.pe", b.CompanyInfo.Email)
}

func TestNewBudgetKeepsDefaultsWhenUnset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DefaultHourlyRate = 0

	b := NewBudget(cfg)
	assert.InDelta(t, model.DefaultHourlyRate, b.HourlyRate, 1e-9)
	assert.Equal(t, model.DefaultCompanyInfo().Name, b.CompanyInfo.Name)
}
