// Package tui provides the interactive Bubble Tea budget editor.
package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"cotiza/internal/config"
	"cotiza/internal/engine"
	"cotiza/internal/render"
	"cotiza/internal/tui/components"
	"cotiza/internal/tui/theme"
)

type formKind int

const (
	formNone formKind = iota
	formProject
	formItem
	formClient
	formCompany
	formRate
	formNarrative
)

// App is the root Bubble Tea model. It edits the budget through the engine;
// persistence happens behind the engine's observers, so every committed form
// is already saved by the time the next frame draws.
type App struct {
	eng      *engine.Engine
	currency string

	width  int
	height int

	activeTab int
	showHelp  bool
	statusMsg string

	// Projects tab
	cursor int

	// Texts tab
	textsCursor int

	// Preview tab
	preview    viewport.Model
	previewRef string

	// Active form overlay
	form     *huh.Form
	formKind formKind

	projVals    projectFormValues
	itemVals    itemFormValues
	clientVals  clientFormValues
	companyVals companyFormValues
	rateVal     string
	narrVals    narrativeFormValues

	targetProject string
	targetItem    string
	narrTarget    int
}

// NewApp creates the editor model bound to the given engine.
func NewApp(eng *engine.Engine, cfg config.Config) App {
	theme.SetActive(cfg.Appearance.Theme)
	return App{
		eng:        eng,
		currency:   currencySymbol(cfg),
		preview:    viewport.New(0, 0),
		previewRef: fmt.Sprintf("PRE-%04d", rand.Intn(10000)),
	}
}

func currencySymbol(cfg config.Config) string {
	switch cfg.General.Currency {
	case "", "USD":
		return "$"
	case "PEN":
		return "S/ "
	case "EUR":
		return "€"
	default:
		return cfg.General.Currency + " "
	}
}

func (a App) money(v float64) string {
	return render.FormatCurrency(a.currency, v)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.preview.Width = msg.Width
		a.preview.Height = msg.Height - 4
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width - 4)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// An active form intercepts all keys.
		if a.form != nil {
			return a.updateForm(msg)
		}

		return a.handleKey(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.applyForm()
		a.form = nil
		a.formKind = formNone
	case huh.StateAborted:
		a.form = nil
		a.formKind = formNone
		a.statusMsg = ""
	}

	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	a.statusMsg = ""

	switch key {
	case "q":
		return *a, tea.Quit
	case "?":
		a.showHelp = !a.showHelp
		return *a, nil
	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return *a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return *a, nil
	}

	if a.showHelp {
		a.showHelp = false
		return *a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return *a, nil
		}
	}

	switch a.activeTab {
	case 0:
		a.handleProjectsKey(key)
	case 1:
		a.handleClientKey(key)
	case 2:
		a.handleTextsKey(key)
	case 3:
		return *a, a.handlePreviewKey(msg)
	}
	return *a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	if a.form != nil {
		return a.renderFormView()
	}

	t := theme.Active

	var b strings.Builder
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", a.width)))
	b.WriteString("\n")

	if a.showHelp {
		b.WriteString(a.renderHelp())
	} else {
		switch a.activeTab {
		case 0:
			b.WriteString(a.renderProjectsTab())
		case 1:
			b.WriteString(a.renderClientTab())
		case 2:
			b.WriteString(a.renderTextsTab())
		case 3:
			b.WriteString(a.renderPreviewTab())
		}
	}

	content := b.String()
	lines := strings.Count(content, "\n")
	for lines < a.height-2 {
		content += "\n"
		lines++
	}

	total := fmt.Sprintf("Total: %s", a.money(a.eng.TotalWithTax()))
	content += components.RenderStatusBar(a.width, a.statusHints(), total)
	return content
}

func (a App) statusHints() string {
	if a.showHelp {
		return "any key to close"
	}
	switch a.activeTab {
	case 0:
		return "[a]dd project  [i]tem  [e]dit  [d]elete  [r]ate  [x]tax  [?]help  [q]uit"
	case 1:
		return "[e]dit client  [o]company  [?]help  [q]uit"
	case 2:
		return "[enter]edit  [R]eset  [?]help  [q]uit"
	case 3:
		return "[j/k]scroll  [g]top  [?]help  [q]uit"
	}
	return "[?]help  [q]uit"
}

func (a App) renderFormView() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	label := map[formKind]string{
		formProject:   "Project",
		formItem:      "Line Item",
		formClient:    "Client",
		formCompany:   "Company",
		formRate:      "Hourly Rate",
		formNarrative: "Text Block",
	}[a.formKind]

	return "\n " + title.Render(label) + "\n\n" + a.form.View()
}

func (a App) renderHelp() string {
	t := theme.Active
	heading := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	key := lipgloss.NewStyle().Foreground(t.TextPrimary)
	desc := lipgloss.NewStyle().Foreground(t.TextMuted)

	row := func(k, d string) string {
		return "  " + key.Render(fmt.Sprintf("%-12s", k)) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(" " + heading.Render("Keys") + "\n\n")
	b.WriteString(row("tab / p c t v", "switch tabs"))
	b.WriteString(row("j / k", "move cursor, scroll preview"))
	b.WriteString(row("a", "add project (Projects tab)"))
	b.WriteString(row("i", "add item under the selected project"))
	b.WriteString(row("e / enter", "edit the selected row"))
	b.WriteString(row("d", "delete the selected row"))
	b.WriteString(row("r", "set the hourly rate"))
	b.WriteString(row("x", "toggle IGV (18%)"))
	b.WriteString(row("R", "reset a text block to its default"))
	b.WriteString(row("q", "quit (autosaved)"))
	return b.String()
}
