package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"cotiza/internal/engine"
	"cotiza/internal/model"
)

type projectFormValues struct {
	name string
}

type itemFormValues struct {
	description string
	mode        string
	hours       string
	fixedPrice  string
}

type clientFormValues struct {
	name  string
	email string
	phone string
}

type companyFormValues struct {
	name    string
	address string
	phone   string
	email   string
	website string
	taxID   string
}

type narrativeFormValues struct {
	text string
}

// validNumber accepts empty input (kept as zero) or any non-negative number.
func validNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// parseNumber turns validated form input into a value; anything unparsable
// collapses to zero, matching the engine's coercion rule.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func newProjectForm(vals *projectFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("Website redesign").
				Value(&vals.name),
		),
	)
}

func newItemForm(vals *itemFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("Descripción del ítem").
				Value(&vals.description),
			huh.NewSelect[string]().
				Title("Pricing mode").
				Options(
					huh.NewOption("Hourly (hours × rate)", "hourly"),
					huh.NewOption("Fixed price", "fixed"),
				).
				Value(&vals.mode),
			huh.NewInput().
				Title("Hours").
				Placeholder("0").
				Validate(validNumber).
				Value(&vals.hours),
			huh.NewInput().
				Title("Fixed price").
				Placeholder("0").
				Validate(validNumber).
				Value(&vals.fixedPrice),
		),
	)
}

func newClientForm(vals *clientFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&vals.name),
			huh.NewInput().Title("Email").Value(&vals.email),
			huh.NewInput().Title("Phone").Value(&vals.phone),
		),
	)
}

func newCompanyForm(vals *companyFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&vals.name),
			huh.NewInput().Title("Address").Value(&vals.address),
			huh.NewInput().Title("Phone").Value(&vals.phone),
			huh.NewInput().Title("Email").Value(&vals.email),
			huh.NewInput().Title("Website").Value(&vals.website),
			huh.NewInput().Title("RUC / Tax ID").Value(&vals.taxID),
		),
	)
}

func newRateForm(rate *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hourly rate").
				Description("Applied to every hourly-mode item").
				Validate(validNumber).
				Value(rate),
		),
	)
}

func newNarrativeForm(title string, vals *narrativeFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Lines(8).
				Value(&vals.text),
		),
	)
}

// applyForm commits a completed form through the engine.
func (a *App) applyForm() {
	switch a.formKind {
	case formProject:
		a.eng.RenameProject(a.targetProject, a.projVals.name)
		a.statusMsg = "project saved"

	case formItem:
		desc := a.itemVals.description
		mode := model.PricingHourly
		if a.itemVals.mode == "fixed" {
			mode = model.PricingFixed
		}
		hours := parseNumber(a.itemVals.hours)
		fixed := parseNumber(a.itemVals.fixedPrice)
		a.eng.UpdateItem(a.targetProject, a.targetItem, engine.ItemPatch{
			Description: &desc,
			PricingMode: &mode,
			Hours:       &hours,
			FixedPrice:  &fixed,
		})
		a.statusMsg = "item saved"

	case formClient:
		a.eng.SetClientInfo(a.clientVals.name, a.clientVals.email, a.clientVals.phone)
		a.statusMsg = "client saved"

	case formCompany:
		v := a.companyVals
		a.eng.UpdateCompanyInfo(engine.CompanyPatch{
			Name:    &v.name,
			Address: &v.address,
			Phone:   &v.phone,
			Email:   &v.email,
			Website: &v.website,
			TaxID:   &v.taxID,
		})
		a.statusMsg = "company saved"

	case formRate:
		a.eng.SetHourlyRate(parseNumber(a.rateVal))
		a.statusMsg = "rate saved"

	case formNarrative:
		narrativeBlocks[a.narrTarget].set(a.eng, a.narrVals.text)
		a.statusMsg = narrativeBlocks[a.narrTarget].name + " saved"
	}
}
