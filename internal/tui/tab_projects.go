package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cotiza/internal/engine"
	"cotiza/internal/model"
	"cotiza/internal/render"
	"cotiza/internal/tui/theme"
)

type rowKind int

const (
	rowProject rowKind = iota
	rowItem
)

// projectRow is one navigable line on the projects tab: either a project
// header or one of its items.
type projectRow struct {
	kind      rowKind
	projectID string
	itemID    string
}

// rows flattens the budget tree into the navigable row list.
func (a App) rows() []projectRow {
	b := a.eng.Snapshot()
	var out []projectRow
	for _, p := range b.Projects {
		out = append(out, projectRow{kind: rowProject, projectID: p.ID})
		for _, it := range p.Items {
			out = append(out, projectRow{kind: rowItem, projectID: p.ID, itemID: it.ID})
		}
	}
	return out
}

func (a *App) clampCursor() {
	n := len(a.rows())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) handleProjectsKey(key string) {
	rows := a.rows()

	switch key {
	case "j", "down":
		if a.cursor < len(rows)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}

	case "a":
		a.targetProject = a.eng.AddProject()
		a.projVals = projectFormValues{}
		a.form = newProjectForm(&a.projVals)
		a.formKind = formProject
		a.cursor = len(a.rows()) - 1

	case "i":
		if len(rows) == 0 {
			a.statusMsg = "add a project first"
			return
		}
		pid := rows[a.cursor].projectID
		itemID := a.eng.AddItem(pid)
		if itemID == "" {
			return
		}
		a.targetProject = pid
		a.targetItem = itemID
		a.itemVals = itemFormValues{mode: "hourly"}
		a.form = newItemForm(&a.itemVals)
		a.formKind = formItem

	case "e", "enter":
		if len(rows) == 0 {
			return
		}
		a.editRow(rows[a.cursor])

	case "d":
		if len(rows) == 0 {
			return
		}
		row := rows[a.cursor]
		if row.kind == rowProject {
			a.eng.RemoveProject(row.projectID)
			a.statusMsg = "project removed"
		} else {
			a.eng.RemoveItem(row.projectID, row.itemID)
			a.statusMsg = "item removed"
		}
		a.clampCursor()

	case "r":
		a.rateVal = render.FormatHours(a.eng.Snapshot().HourlyRate)
		a.form = newRateForm(&a.rateVal)
		a.formKind = formRate

	case "x":
		b := a.eng.Snapshot()
		a.eng.SetTaxEnabled(!b.IGVEnabled)
		if b.IGVEnabled {
			a.statusMsg = "IGV off"
		} else {
			a.statusMsg = "IGV on (18%)"
		}
	}
}

func (a *App) editRow(row projectRow) {
	b := a.eng.Snapshot()
	pi := b.FindProject(row.projectID)
	if pi < 0 {
		return
	}
	p := b.Projects[pi]

	if row.kind == rowProject {
		a.targetProject = p.ID
		a.projVals = projectFormValues{name: p.Name}
		a.form = newProjectForm(&a.projVals)
		a.formKind = formProject
		return
	}

	ii := p.FindItem(row.itemID)
	if ii < 0 {
		return
	}
	it := p.Items[ii]
	a.targetProject = p.ID
	a.targetItem = it.ID
	a.itemVals = itemFormValues{
		description: it.Description,
		mode:        string(it.PricingMode),
		hours:       render.FormatHours(it.Hours),
		fixedPrice:  render.FormatHours(it.FixedPrice),
	}
	a.form = newItemForm(&a.itemVals)
	a.formKind = formItem
}

func (a App) renderProjectsTab() string {
	t := theme.Active
	b := a.eng.Snapshot()

	projStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	moneyStyle := lipgloss.NewStyle().Foreground(t.Green)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(b.Projects) == 0 {
		return "\n  " + itemStyle.Render("No projects yet. Press ") +
			selStyle.Render("a") + itemStyle.Render(" to add one.") + "\n"
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("  %s %s   %s %s\n\n",
		dimStyle.Render("Rate:"), moneyStyle.Render(a.money(b.HourlyRate)),
		dimStyle.Render("IGV:"), igvLabel(b.IGVEnabled)))

	rowIdx := 0
	for _, p := range b.Projects {
		cursor := "  "
		style := projStyle
		if rowIdx == a.cursor {
			cursor = "> "
			style = selStyle
		}

		name := p.Name
		if strings.TrimSpace(name) == "" {
			name = "(untitled)"
		}
		out.WriteString(fmt.Sprintf("%s%s  %s\n",
			cursor,
			style.Render(name),
			moneyStyle.Render(a.money(engine.ProjectTotal(b, p)))))
		rowIdx++

		for _, it := range p.Items {
			cursor = "    "
			style = itemStyle
			if rowIdx == a.cursor {
				cursor = "  > "
				style = selStyle
			}

			desc := it.Description
			if desc == "" {
				desc = "(no description)"
			}
			detail := fmt.Sprintf("%s h", render.FormatHours(it.Hours))
			if it.PricingMode == model.PricingFixed {
				detail = "fixed"
			}
			out.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
				cursor,
				style.Render(desc),
				dimStyle.Render(detail),
				moneyStyle.Render(a.money(engine.ItemTotal(b, it)))))
			rowIdx++
		}
	}

	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("  %s %s",
		dimStyle.Render("Subtotal:"), moneyStyle.Render(a.money(engine.Subtotal(b)))))
	if b.IGVEnabled {
		out.WriteString(fmt.Sprintf("   %s %s",
			dimStyle.Render("IGV:"), moneyStyle.Render(a.money(engine.Tax(b)))))
	}
	out.WriteString("\n")
	return out.String()
}

func igvLabel(enabled bool) string {
	t := theme.Active
	if enabled {
		return lipgloss.NewStyle().Foreground(t.Green).Render("18%")
	}
	return lipgloss.NewStyle().Foreground(t.TextDim).Render("off")
}
