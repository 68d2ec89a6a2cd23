// Package model defines domain types for cotiza budgets.
package model

import "time"

// PricingMode selects which pricing field of a BudgetItem is authoritative.
type PricingMode string

const (
	// PricingHourly bills the item as hours times the budget-wide hourly rate.
	PricingHourly PricingMode = "hourly"
	// PricingFixed bills the item at its fixed price, ignoring hours.
	PricingFixed PricingMode = "fixed"
)

// BudgetItem is one billable line within a project.
type BudgetItem struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	PricingMode PricingMode `json:"pricingMode"`
	Hours       float64     `json:"hours"`
	FixedPrice  float64     `json:"fixedPrice"`
	// UnitPrice records the budget hourly rate at item creation. Display-only;
	// totals always read the live rate from the Budget.
	UnitPrice float64 `json:"unitPrice"`
}

// Project is a named, ordered group of budget items.
type Project struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Items []BudgetItem `json:"items"`
}

// CompanyInfo holds the issuing company identity shown on the proposal.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	TaxID   string `json:"taxId"`
}

// Budget is the root aggregate: one client proposal/quotation.
type Budget struct {
	ClientName  string      `json:"clientName"`
	ClientEmail string      `json:"clientEmail"`
	ClientPhone string      `json:"clientPhone,omitempty"`
	CompanyInfo CompanyInfo `json:"companyInfo"`
	Date        time.Time   `json:"date"`
	Projects    []Project   `json:"projects"`

	HourlyRate float64 `json:"hourlyRate"`
	IGVEnabled bool    `json:"igvEnabled"`

	// Narrative blocks. Rendered only when non-blank; TimeEstimate may carry
	// the week-count substitution token.
	Terms           string `json:"terms"`
	PaymentTerms    string `json:"paymentTerms"`
	SupportTerms    string `json:"supportTerms"`
	TimeEstimate    string `json:"timeEstimate"`
	ProjectNote     string `json:"projectNote"`
	PreTableMessage string `json:"preTableMessage"`
}

// Clone returns a deep copy of the budget. Projects and items are copied so
// the result shares no slices with the receiver.
func (b Budget) Clone() Budget {
	out := b
	out.Projects = make([]Project, len(b.Projects))
	for i, p := range b.Projects {
		cp := p
		cp.Items = make([]BudgetItem, len(p.Items))
		copy(cp.Items, p.Items)
		out.Projects[i] = cp
	}
	return out
}

// FindProject returns the index of the project with the given id, or -1.
func (b Budget) FindProject(projectID string) int {
	for i, p := range b.Projects {
		if p.ID == projectID {
			return i
		}
	}
	return -1
}

// FindItem returns the index of the item with the given id, or -1.
func (p Project) FindItem(itemID string) int {
	for i, it := range p.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// ItemCount returns the total number of items across all projects.
func (b Budget) ItemCount() int {
	n := 0
	for _, p := range b.Projects {
		n += len(p.Items)
	}
	return n
}
