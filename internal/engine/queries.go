package engine

import (
	"math"

	"cotiza/internal/model"
)

// The computations below are pure functions of a budget snapshot so the
// render layer can work from the same value the engine hands its observers.
// Engine methods delegate to them against the current budget.

// ItemTotal returns one line's total: the fixed price for fixed-mode items,
// hours times the budget rate otherwise.
func ItemTotal(b model.Budget, it model.BudgetItem) float64 {
	if it.PricingMode == model.PricingFixed {
		return finiteOrZero(it.FixedPrice)
	}
	return finiteOrZero(it.Hours) * finiteOrZero(b.HourlyRate)
}

// ProjectHours sums hours over the project's hourly-mode items. Fixed-mode
// items contribute no hours.
func ProjectHours(p model.Project) float64 {
	var total float64
	for _, it := range p.Items {
		if it.PricingMode == model.PricingFixed {
			continue
		}
		total += finiteOrZero(it.Hours)
	}
	return total
}

// ProjectTotal sums item totals over one project.
func ProjectTotal(b model.Budget, p model.Project) float64 {
	var total float64
	for _, it := range p.Items {
		total += ItemTotal(b, it)
	}
	return total
}

// BudgetHours sums hours across all projects.
func BudgetHours(b model.Budget) float64 {
	var total float64
	for _, p := range b.Projects {
		total += ProjectHours(p)
	}
	return total
}

// Subtotal is the grand total before tax.
func Subtotal(b model.Budget) float64 {
	var total float64
	for _, p := range b.Projects {
		total += ProjectTotal(b, p)
	}
	return total
}

// Tax returns the IGV amount, zero when the toggle is off.
func Tax(b model.Budget) float64 {
	if !b.IGVEnabled {
		return 0
	}
	return Subtotal(b) * model.IGVRate
}

// TotalWithTax is subtotal plus tax.
func TotalWithTax(b model.Budget) float64 {
	return Subtotal(b) + Tax(b)
}

// AdvancePayment is the conventional 20% initial payment on the final total.
func AdvancePayment(b model.Budget) float64 {
	return TotalWithTax(b) * model.AdvanceRate
}

// WeeksFromHours converts hours into a week estimate at 40 hours/week.
// Non-finite input yields 0.
func WeeksFromHours(hours float64) float64 {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0
	}
	return hours / model.HoursPerWeek
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// HoursForProject returns the hourly-mode hour sum for the project, or 0 for
// an unknown id.
func (e *Engine) HoursForProject(projectID string) float64 {
	i := e.budget.FindProject(projectID)
	if i < 0 {
		return 0
	}
	return ProjectHours(e.budget.Projects[i])
}

// TotalHours returns the hour sum across all projects.
func (e *Engine) TotalHours() float64 {
	return BudgetHours(e.budget)
}

// TotalForProject returns the project's amount, or 0 for an unknown id.
func (e *Engine) TotalForProject(projectID string) float64 {
	i := e.budget.FindProject(projectID)
	if i < 0 {
		return 0
	}
	return ProjectTotal(e.budget, e.budget.Projects[i])
}

// Subtotal returns the pre-tax grand total.
func (e *Engine) Subtotal() float64 {
	return Subtotal(e.budget)
}

// Tax returns the IGV amount for the current budget.
func (e *Engine) Tax() float64 {
	return Tax(e.budget)
}

// TotalWithTax returns the final total.
func (e *Engine) TotalWithTax() float64 {
	return TotalWithTax(e.budget)
}

// AdvancePayment returns the 20% initial payment.
func (e *Engine) AdvancePayment() float64 {
	return AdvancePayment(e.budget)
}
