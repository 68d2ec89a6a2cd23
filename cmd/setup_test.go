package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotiza/internal/config"
)

func TestApplySetupAnswers(t *testing.T) {
	cfg := config.DefaultConfig()

	a := setupAnswers{
		companyName:  "  Estudio Lima  ",
		companyEmail: "hola@estudio.pe",
		companyTaxID: "20600000001",
		currency:     "PEN",
		rate:         "25",
		igv:          false,
		theme:        "flexoki-light",
	}

	got := applySetupAnswers(cfg, a)
	assert.Equal(t, "Estudio Lima", got.Company.Name)
	assert.Equal(t, "hola@estudio.pe", got.Company.Email)
	assert.Equal(t, "20600000001", got.Company.TaxID)
	assert.Equal(t, "PEN", got.General.Currency)
	assert.InDelta(t, 25, got.General.DefaultHourlyRate, 1e-9)
	assert.False(t, got.General.IGVEnabled)
	assert.Equal(t, "flexoki-light", got.Appearance.Theme)
}

func TestApplySetupAnswersBadRateKeepsCurrent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.DefaultHourlyRate = 20

	for _, rate := range []string{"", "abc", "0", "-5"} {
		got := applySetupAnswers(cfg, setupAnswers{
			currency: "USD",
			rate:     rate,
			theme:    "flexoki-dark",
		})
		assert.InDelta(t, 20, got.General.DefaultHourlyRate, 1e-9, "rate input %q", rate)
	}
}

func TestAnswersFromConfigRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Company.Name = "Estudio Lima"
	cfg.Company.Website = "https://estudio.pe"
	cfg.General.Currency = "EUR"
	cfg.General.DefaultHourlyRate = 37.5
	cfg.General.IGVEnabled = false

	a := answersFromConfig(cfg)
	assert.Equal(t, "Estudio Lima", a.companyName)
	assert.Equal(t, "37.5", a.rate)
	assert.False(t, a.igv)

	// Applying unchanged answers is a no-op.
	got := applySetupAnswers(cfg, a)
	assert.Equal(t, cfg, got)
}

func TestValidateRate(t *testing.T) {
	require.NoError(t, validateRate(""))
	require.NoError(t, validateRate("25"))
	require.NoError(t, validateRate(" 12.5 "))
	assert.Error(t, validateRate("abc"))
	assert.Error(t, validateRate("0"))
	assert.Error(t, validateRate("-3"))
}
