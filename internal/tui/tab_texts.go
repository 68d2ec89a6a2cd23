package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cotiza/internal/engine"
	"cotiza/internal/model"
	"cotiza/internal/tui/theme"
)

// narrativeBlock binds one editable text block of the proposal to its
// engine accessors and default text.
type narrativeBlock struct {
	name string
	get  func(model.Budget) string
	set  func(*engine.Engine, string)
	def  string
}

var narrativeBlocks = []narrativeBlock{
	{
		name: "Términos y Condiciones",
		get:  func(b model.Budget) string { return b.Terms },
		set:  func(e *engine.Engine, s string) { e.SetTerms(s) },
		def:  model.DefaultTerms,
	},
	{
		name: "Forma de Pago",
		get:  func(b model.Budget) string { return b.PaymentTerms },
		set:  func(e *engine.Engine, s string) { e.SetPaymentTerms(s) },
		def:  model.DefaultPaymentTerms,
	},
	{
		name: "Soporte Post-Proyecto",
		get:  func(b model.Budget) string { return b.SupportTerms },
		set:  func(e *engine.Engine, s string) { e.SetSupportTerms(s) },
		def:  model.DefaultSupportTerms,
	},
	{
		name: "Tiempo Estimado",
		get:  func(b model.Budget) string { return b.TimeEstimate },
		set:  func(e *engine.Engine, s string) { e.SetTimeEstimate(s) },
		def:  model.DefaultTimeEstimate,
	},
	{
		name: "Nota del Proyecto",
		get:  func(b model.Budget) string { return b.ProjectNote },
		set:  func(e *engine.Engine, s string) { e.SetProjectNote(s) },
		def:  model.DefaultProjectNote,
	},
	{
		name: "Mensaje Introductorio",
		get:  func(b model.Budget) string { return b.PreTableMessage },
		set:  func(e *engine.Engine, s string) { e.SetPreTableMessage(s) },
		def:  "",
	},
}

func (a *App) handleTextsKey(key string) {
	switch key {
	case "j", "down":
		if a.textsCursor < len(narrativeBlocks)-1 {
			a.textsCursor++
		}
	case "k", "up":
		if a.textsCursor > 0 {
			a.textsCursor--
		}

	case "e", "enter":
		block := narrativeBlocks[a.textsCursor]
		a.narrTarget = a.textsCursor
		a.narrVals = narrativeFormValues{text: block.get(a.eng.Snapshot())}
		a.form = newNarrativeForm(block.name, &a.narrVals)
		a.formKind = formNarrative

	case "R":
		block := narrativeBlocks[a.textsCursor]
		block.set(a.eng, block.def)
		a.statusMsg = block.name + " reset"
	}
}

func (a App) renderTextsTab() string {
	t := theme.Active
	b := a.eng.Snapshot()

	sel := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	name := lipgloss.NewStyle().Foreground(t.TextPrimary)
	preview := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	var out strings.Builder
	out.WriteString("\n")
	for i, block := range narrativeBlocks {
		cursor := "  "
		style := name
		if i == a.textsCursor {
			cursor = "> "
			style = sel
		}
		out.WriteString(cursor + style.Render(block.name) + "\n")

		text := strings.TrimSpace(block.get(b))
		if text == "" {
			out.WriteString("    " + dim.Render("(empty)") + "\n\n")
			continue
		}
		out.WriteString("    " + preview.Render(firstLine(text, 70)) + "\n\n")
	}
	return out.String()
}

// firstLine shows a one-line preview, truncated to max runes.
func firstLine(s string, max int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	r := []rune(s)
	if len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return s
}
