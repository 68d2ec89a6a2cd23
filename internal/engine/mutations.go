package engine

import (
	"github.com/google/uuid"

	"cotiza/internal/model"
)

// ItemPatch carries a partial item update. Nil fields are left untouched;
// numeric fields pass through sanitization before the merge.
type ItemPatch struct {
	Description *string
	PricingMode *model.PricingMode
	Hours       *float64
	FixedPrice  *float64
}

// BudgetPatch carries a partial top-level update, used by the CLI flag
// editors. Nil fields are left untouched.
type BudgetPatch struct {
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	HourlyRate  *float64
	IGVEnabled  *bool

	Terms           *string
	PaymentTerms    *string
	SupportTerms    *string
	TimeEstimate    *string
	ProjectNote     *string
	PreTableMessage *string
}

// CompanyPatch carries a partial company-info update.
type CompanyPatch struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
	Website *string
	TaxID   *string
}

// AddProject appends a new empty project and returns its id.
func (e *Engine) AddProject() string {
	b := e.budget.Clone()
	p := model.Project{
		ID:    uuid.New().String(),
		Items: []model.BudgetItem{},
	}
	b.Projects = append(b.Projects, p)
	e.commit(b)
	return p.ID
}

// RenameProject replaces the project name. Unknown ids are a no-op.
func (e *Engine) RenameProject(projectID, name string) {
	i := e.budget.FindProject(projectID)
	if i < 0 {
		return
	}
	b := e.budget.Clone()
	b.Projects[i].Name = name
	e.commit(b)
}

// RemoveProject deletes the project and all its items. Unknown ids are a no-op.
func (e *Engine) RemoveProject(projectID string) {
	i := e.budget.FindProject(projectID)
	if i < 0 {
		return
	}
	b := e.budget.Clone()
	b.Projects = append(b.Projects[:i], b.Projects[i+1:]...)
	e.commit(b)
}

// AddItem appends a new hourly item to the project and returns its id.
// The item's unit price records the current hourly rate. Returns "" if the
// project does not exist.
func (e *Engine) AddItem(projectID string) string {
	i := e.budget.FindProject(projectID)
	if i < 0 {
		return ""
	}
	b := e.budget.Clone()
	it := model.BudgetItem{
		ID:          uuid.New().String(),
		PricingMode: model.PricingHourly,
		UnitPrice:   b.HourlyRate,
	}
	b.Projects[i].Items = append(b.Projects[i].Items, it)
	e.commit(b)
	return it.ID
}

// UpdateItem merges the patch into the item. Unknown project or item ids are
// a no-op.
func (e *Engine) UpdateItem(projectID, itemID string, patch ItemPatch) {
	pi := e.budget.FindProject(projectID)
	if pi < 0 {
		return
	}
	ii := e.budget.Projects[pi].FindItem(itemID)
	if ii < 0 {
		return
	}
	b := e.budget.Clone()
	it := &b.Projects[pi].Items[ii]
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.PricingMode != nil {
		mode := *patch.PricingMode
		if mode != model.PricingFixed {
			mode = model.PricingHourly
		}
		it.PricingMode = mode
	}
	if patch.Hours != nil {
		it.Hours = sanitizeNumber(*patch.Hours)
	}
	if patch.FixedPrice != nil {
		it.FixedPrice = sanitizeNumber(*patch.FixedPrice)
	}
	e.commit(b)
}

// RemoveItem deletes the item. Unknown ids are a no-op.
func (e *Engine) RemoveItem(projectID, itemID string) {
	pi := e.budget.FindProject(projectID)
	if pi < 0 {
		return
	}
	ii := e.budget.Projects[pi].FindItem(itemID)
	if ii < 0 {
		return
	}
	b := e.budget.Clone()
	items := b.Projects[pi].Items
	b.Projects[pi].Items = append(items[:ii], items[ii+1:]...)
	e.commit(b)
}

// SetClientInfo replaces the three client identity fields atomically.
func (e *Engine) SetClientInfo(name, email, phone string) {
	b := e.budget.Clone()
	b.ClientName = name
	b.ClientEmail = email
	b.ClientPhone = phone
	e.commit(b)
}

// UpdateCompanyInfo merges the patch onto the current company info.
func (e *Engine) UpdateCompanyInfo(patch CompanyPatch) {
	b := e.budget.Clone()
	ci := &b.CompanyInfo
	if patch.Name != nil {
		ci.Name = *patch.Name
	}
	if patch.Address != nil {
		ci.Address = *patch.Address
	}
	if patch.Phone != nil {
		ci.Phone = *patch.Phone
	}
	if patch.Email != nil {
		ci.Email = *patch.Email
	}
	if patch.Website != nil {
		ci.Website = *patch.Website
	}
	if patch.TaxID != nil {
		ci.TaxID = *patch.TaxID
	}
	if ci.Name == "" {
		ci.Name = model.DefaultCompanyInfo().Name
	}
	e.commit(b)
}

// SetTerms replaces the terms text.
func (e *Engine) SetTerms(text string) { e.setNarrative(func(b *model.Budget) { b.Terms = text }) }

// SetPaymentTerms replaces the payment terms text.
func (e *Engine) SetPaymentTerms(text string) {
	e.setNarrative(func(b *model.Budget) { b.PaymentTerms = text })
}

// SetSupportTerms replaces the support terms text.
func (e *Engine) SetSupportTerms(text string) {
	e.setNarrative(func(b *model.Budget) { b.SupportTerms = text })
}

// SetTimeEstimate replaces the time estimate text. The week token, if
// present, is stored verbatim and substituted at render time.
func (e *Engine) SetTimeEstimate(text string) {
	e.setNarrative(func(b *model.Budget) { b.TimeEstimate = text })
}

// SetProjectNote replaces the project note text.
func (e *Engine) SetProjectNote(text string) {
	e.setNarrative(func(b *model.Budget) { b.ProjectNote = text })
}

// SetPreTableMessage replaces the pre-table message. The text may carry rich
// formatting; it is opaque to the engine.
func (e *Engine) SetPreTableMessage(text string) {
	e.setNarrative(func(b *model.Budget) { b.PreTableMessage = text })
}

func (e *Engine) setNarrative(apply func(*model.Budget)) {
	b := e.budget.Clone()
	apply(&b)
	e.commit(b)
}

// SetHourlyRate replaces the budget-wide hourly rate. Item totals are never
// baked in, so existing hourly items re-price on the next query.
func (e *Engine) SetHourlyRate(rate float64) {
	b := e.budget.Clone()
	b.HourlyRate = sanitizeNumber(rate)
	e.commit(b)
}

// SetTaxEnabled toggles the IGV tax.
func (e *Engine) SetTaxEnabled(enabled bool) {
	b := e.budget.Clone()
	b.IGVEnabled = enabled
	e.commit(b)
}

// Apply shallow-merges the patch into the budget's top-level fields.
func (e *Engine) Apply(patch BudgetPatch) {
	b := e.budget.Clone()
	if patch.ClientName != nil {
		b.ClientName = *patch.ClientName
	}
	if patch.ClientEmail != nil {
		b.ClientEmail = *patch.ClientEmail
	}
	if patch.ClientPhone != nil {
		b.ClientPhone = *patch.ClientPhone
	}
	if patch.HourlyRate != nil {
		b.HourlyRate = sanitizeNumber(*patch.HourlyRate)
	}
	if patch.IGVEnabled != nil {
		b.IGVEnabled = *patch.IGVEnabled
	}
	if patch.Terms != nil {
		b.Terms = *patch.Terms
	}
	if patch.PaymentTerms != nil {
		b.PaymentTerms = *patch.PaymentTerms
	}
	if patch.SupportTerms != nil {
		b.SupportTerms = *patch.SupportTerms
	}
	if patch.TimeEstimate != nil {
		b.TimeEstimate = *patch.TimeEstimate
	}
	if patch.ProjectNote != nil {
		b.ProjectNote = *patch.ProjectNote
	}
	if patch.PreTableMessage != nil {
		b.PreTableMessage = *patch.PreTableMessage
	}
	e.commit(b)
}

// Replace discards the current budget for the given snapshot. The caller is
// responsible for structural validation; the engine only normalizes.
func (e *Engine) Replace(b model.Budget) {
	e.commit(Normalize(b))
}
