package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cotiza/internal/tui/theme"
)

func (a *App) handleClientKey(key string) {
	b := a.eng.Snapshot()

	switch key {
	case "e", "enter":
		a.clientVals = clientFormValues{
			name:  b.ClientName,
			email: b.ClientEmail,
			phone: b.ClientPhone,
		}
		a.form = newClientForm(&a.clientVals)
		a.formKind = formClient

	case "o":
		c := b.CompanyInfo
		a.companyVals = companyFormValues{
			name:    c.Name,
			address: c.Address,
			phone:   c.Phone,
			email:   c.Email,
			website: c.Website,
			taxID:   c.TaxID,
		}
		a.form = newCompanyForm(&a.companyVals)
		a.formKind = formCompany
	}
}

func (a App) renderClientTab() string {
	t := theme.Active
	b := a.eng.Snapshot()

	heading := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	field := func(name, v string) string {
		if strings.TrimSpace(v) == "" {
			return "  " + label.Render(padLabel(name)) + dim.Render("(not set)") + "\n"
		}
		return "  " + label.Render(padLabel(name)) + value.Render(v) + "\n"
	}

	var out strings.Builder
	out.WriteString("\n ")
	out.WriteString(heading.Render("Client"))
	out.WriteString("\n\n")
	out.WriteString(field("Name", b.ClientName))
	out.WriteString(field("Email", b.ClientEmail))
	out.WriteString(field("Phone", b.ClientPhone))

	c := b.CompanyInfo
	out.WriteString("\n ")
	out.WriteString(heading.Render("Company"))
	out.WriteString("\n\n")
	out.WriteString(field("Name", c.Name))
	out.WriteString(field("Address", c.Address))
	out.WriteString(field("Phone", c.Phone))
	out.WriteString(field("Email", c.Email))
	out.WriteString(field("Website", c.Website))
	out.WriteString(field("RUC", c.TaxID))

	return out.String()
}

func padLabel(s string) string {
	const w = 10
	if len(s) >= w {
		return s + " "
	}
	return s + strings.Repeat(" ", w-len(s))
}
