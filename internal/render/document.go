package render

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"cotiza/internal/engine"
	"cotiza/internal/model"
)

// Options controls document rendering.
type Options struct {
	// Currency is the symbol prefixed to every amount. Defaults to "$".
	Currency string
	// Reference overrides the generated proposal reference number.
	Reference string
}

// placeholderProject is shown for projects saved without a name. The engine
// stores the empty string; only the document substitutes.
const placeholderProject = "Proyecto sin título"

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Document renders the full proposal for the budget: header, client and
// company blocks, one table per project, the costs summary, and every
// non-blank narrative section.
func Document(b model.Budget, opts Options) string {
	currency := opts.Currency
	if currency == "" {
		currency = "$"
	}
	ref := opts.Reference
	if ref == "" {
		ref = fmt.Sprintf("PRE-%04d", rand.Intn(10000))
	}

	money := func(v float64) string { return FormatCurrency(currency, v) }

	var doc strings.Builder
	doc.WriteString("\n")
	doc.WriteString(RenderTitle("Propuesta de Presupuesto"))
	doc.WriteString("\n")
	doc.WriteString(mutedStyle.Render(fmt.Sprintf("  %s  ·  Ref: %s", spanishDate(b.Date), ref)))
	doc.WriteString("\n\n")

	writeCompanyBlock(&doc, b.CompanyInfo)
	writeClientBlock(&doc, b)

	if msg := strings.TrimSpace(b.PreTableMessage); msg != "" {
		doc.WriteString(indentLines(msg))
		doc.WriteString("\n\n")
	}

	for _, p := range b.Projects {
		doc.WriteString(projectTable(b, p, money))
		doc.WriteString("\n")
	}

	doc.WriteString(summaryTable(b, money))
	doc.WriteString("\n")

	weeks := engine.WeeksFromHours(engine.BudgetHours(b))
	writeSection(&doc, "Tiempo Estimado",
		strings.ReplaceAll(b.TimeEstimate, model.WeeksToken, FormatWeeks(weeks)))
	writeSection(&doc, "Forma de Pago", paymentText(b, money))
	writeSection(&doc, "Soporte Post-Proyecto", b.SupportTerms)
	writeSection(&doc, "", b.ProjectNote)
	writeSection(&doc, "Términos y Condiciones", b.Terms)

	return doc.String()
}

func writeCompanyBlock(doc *strings.Builder, ci model.CompanyInfo) {
	doc.WriteString("  ")
	doc.WriteString(headerStyle.Render(ci.Name))
	doc.WriteString("\n")
	for _, line := range []string{ci.Address, ci.Phone, ci.Email, ci.Website} {
		if line == "" {
			continue
		}
		doc.WriteString("  ")
		doc.WriteString(mutedStyle.Render(line))
		doc.WriteString("\n")
	}
	if ci.TaxID != "" {
		doc.WriteString("  ")
		doc.WriteString(mutedStyle.Render("RUC: " + ci.TaxID))
		doc.WriteString("\n")
	}
	doc.WriteString("\n")
}

func writeClientBlock(doc *strings.Builder, b model.Budget) {
	rows := [][]string{
		{"Nombre", orPlaceholder(b.ClientName)},
		{"Correo", orPlaceholder(b.ClientEmail)},
	}
	if b.ClientPhone != "" {
		rows = append(rows, []string{"Teléfono", b.ClientPhone})
	}
	doc.WriteString(RenderTable(Table{
		Title: "Información del Cliente",
		Rows:  rows,
	}))
	doc.WriteString("\n")
}

func projectTable(b model.Budget, p model.Project, money func(float64) string) string {
	name := p.Name
	if strings.TrimSpace(name) == "" {
		name = placeholderProject
	}

	rows := make([][]string, 0, len(p.Items))
	for _, it := range p.Items {
		desc := it.Description
		if desc == "" {
			desc = "Sin descripción"
		}
		total := money(engine.ItemTotal(b, it))

		if it.PricingMode == model.PricingFixed {
			rows = append(rows, []string{desc, "—", "—", total})
			continue
		}
		rows = append(rows, []string{
			desc,
			FormatHours(it.Hours),
			FormatWeeks(engine.WeeksFromHours(it.Hours)),
			total,
		})
	}

	return RenderTable(Table{
		Title:   name,
		Headers: []string{"Descripción", "Horas", "Semanas", "Total"},
		Rows:    rows,
		Footer: []string{
			"Total del Proyecto",
			FormatHours(engine.ProjectHours(p)),
			"",
			money(engine.ProjectTotal(b, p)),
		},
	})
}

func summaryTable(b model.Budget, money func(float64) string) string {
	totalHours := engine.BudgetHours(b)
	rows := [][]string{
		{"Horas Totales", FormatHours(totalHours)},
		{"Semanas Estimadas (40 h/semana)", FormatWeeks(engine.WeeksFromHours(totalHours))},
		{"---"},
		{"Subtotal", money(engine.Subtotal(b))},
	}
	if b.IGVEnabled {
		rows = append(rows, []string{"IGV (18%)", money(engine.Tax(b))})
	}

	return RenderTable(Table{
		Title:  "Resumen",
		Rows:   rows,
		Footer: []string{"Total del Presupuesto", money(engine.TotalWithTax(b))},
	})
}

func paymentText(b model.Budget, money func(float64) string) string {
	if strings.TrimSpace(b.PaymentTerms) == "" {
		return ""
	}
	advance := fmt.Sprintf("Pago inicial (20%%): %s", money(engine.AdvancePayment(b)))
	return advance + "\n\n" + b.PaymentTerms
}

// writeSection renders a titled narrative block, omitted entirely when the
// text is blank.
func writeSection(doc *strings.Builder, title, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if title != "" {
		doc.WriteString("  ")
		doc.WriteString(headerStyle.Render(title))
		doc.WriteString("\n")
	}
	doc.WriteString(indentLines(text))
	doc.WriteString("\n\n")
}

func indentLines(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + valueStyle.Render(line)
	}
	return strings.Join(lines, "\n")
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return "No especificado"
	}
	return s
}

func spanishDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
