package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotiza/internal/model"
)

func docBudget() model.Budget {
	b := model.DefaultBudget()
	b.ClientName = "ACME"
	b.ClientEmail = "hola@acme.pe"
	b.Date = time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	b.HourlyRate = 15
	b.Projects = []model.Project{
		{ID: "p1", Name: "Website", Items: []model.BudgetItem{
			{ID: "i1", Description: "Landing", PricingMode: model.PricingHourly, Hours: 10},
			{ID: "i2", Description: "Logo", PricingMode: model.PricingFixed, FixedPrice: 200},
		}},
	}
	return b
}

func TestDocumentTotals(t *testing.T) {
	doc := Document(docBudget(), Options{Reference: "PRE-0001"})

	assert.Contains(t, doc, "Propuesta de Presupuesto")
	assert.Contains(t, doc, "5 de marzo de 2026")
	assert.Contains(t, doc, "PRE-0001")
	assert.Contains(t, doc, "Website")
	assert.Contains(t, doc, "$350.00") // subtotal
	assert.Contains(t, doc, "IGV (18%)")
	assert.Contains(t, doc, "$63.00")
	assert.Contains(t, doc, "$413.00")
}

func TestDocumentTaxDisabled(t *testing.T) {
	b := docBudget()
	b.IGVEnabled = false

	doc := Document(b, Options{Reference: "PRE-0001"})
	assert.NotContains(t, doc, "IGV (18%)")
	assert.Contains(t, doc, "$350.00")
}

func TestDocumentFixedItemShowsNoHours(t *testing.T) {
	doc := Document(docBudget(), Options{Reference: "PRE-0001"})

	line := lineContaining(t, doc, "Logo")
	assert.Contains(t, line, "—")
	assert.Contains(t, line, "$200.00")
}

func TestDocumentWeeksTokenSubstitution(t *testing.T) {
	b := docBudget()
	b.TimeEstimate = "Entrega estimada: [SEMANAS] semanas."

	doc := Document(b, Options{Reference: "PRE-0001"})
	assert.NotContains(t, doc, "[SEMANAS]")
	assert.Contains(t, doc, "Entrega estimada: 0.2 semanas.") // 10 h / 40
}

func TestDocumentOmitsBlankSections(t *testing.T) {
	b := docBudget()
	b.SupportTerms = "   "
	b.PreTableMessage = ""
	b.ProjectNote = ""

	doc := Document(b, Options{Reference: "PRE-0001"})
	assert.NotContains(t, doc, "Soporte Post-Proyecto")
}

func TestDocumentClientPlaceholders(t *testing.T) {
	b := docBudget()
	b.ClientName = ""
	b.ClientEmail = ""
	b.ClientPhone = ""

	doc := Document(b, Options{Reference: "PRE-0001"})
	assert.Contains(t, doc, "No especificado")
	assert.NotContains(t, doc, "Teléfono")
}

func TestDocumentUntitledProject(t *testing.T) {
	b := docBudget()
	b.Projects[0].Name = ""

	doc := Document(b, Options{Reference: "PRE-0001"})
	assert.Contains(t, doc, "Proyecto sin título")
}

func TestDocumentPaymentAdvance(t *testing.T) {
	doc := Document(docBudget(), Options{Reference: "PRE-0001"})

	// 20% of 413 with IGV on.
	assert.Contains(t, doc, "Pago inicial (20%): $82.60")
}

func lineContaining(t *testing.T, doc, substr string) string {
	t.Helper()
	for _, line := range strings.Split(doc, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	require.Failf(t, "line not found", "no line contains %q", substr)
	return ""
}
