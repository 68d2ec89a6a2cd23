// Package engine owns the in-memory budget and every operation that reads or
// changes it. Mutations always produce a fresh budget value and notify
// subscribed observers with the new snapshot; derived figures are recomputed
// from the current snapshot on every query.
package engine

import (
	"time"

	"github.com/google/uuid"

	"cotiza/internal/model"
)

// Observer receives the new budget snapshot after every mutation.
type Observer func(model.Budget)

// Engine holds one budget and is its sole writer. It is not safe for
// concurrent use; callers are expected to run mutations one at a time.
type Engine struct {
	budget    model.Budget
	observers []Observer
}

// New creates an engine holding a default budget stamped with the current time.
func New() *Engine {
	b := model.DefaultBudget()
	b.Date = time.Now()
	return &Engine{budget: b}
}

// NewFromSnapshot creates an engine holding the given budget. The snapshot is
// normalized (numeric coercion, default backfill) so every stored numeric
// field is finite from here on.
func NewFromSnapshot(b model.Budget) *Engine {
	return &Engine{budget: Normalize(b)}
}

// Snapshot returns a deep copy of the current budget.
func (e *Engine) Snapshot() model.Budget {
	return e.budget.Clone()
}

// Subscribe registers an observer called after every mutation. Observers run
// synchronously in registration order.
func (e *Engine) Subscribe(fn Observer) {
	e.observers = append(e.observers, fn)
}

// commit installs the new budget value and fans the snapshot out to observers.
func (e *Engine) commit(b model.Budget) {
	e.budget = b
	for _, fn := range e.observers {
		fn(b.Clone())
	}
}

// Normalize coerces every numeric field to a non-negative finite value and
// backfills defaults the snapshot may lack: pricing mode, company identity,
// ids, and the creation date. Missing or duplicate ids are re-minted so
// every id is unique within its collection.
func Normalize(b model.Budget) model.Budget {
	out := b.Clone()
	out.HourlyRate = sanitizeNumber(out.HourlyRate)
	if out.Date.IsZero() {
		out.Date = time.Now()
	}
	if out.CompanyInfo.Name == "" {
		out.CompanyInfo.Name = model.DefaultCompanyInfo().Name
	}
	if out.Projects == nil {
		out.Projects = []model.Project{}
	}
	projectIDs := make(map[string]bool, len(out.Projects))
	for pi := range out.Projects {
		p := &out.Projects[pi]
		p.ID = uniqueID(p.ID, projectIDs)
		if p.Items == nil {
			p.Items = []model.BudgetItem{}
		}
		itemIDs := make(map[string]bool, len(p.Items))
		for ii := range p.Items {
			it := &p.Items[ii]
			it.ID = uniqueID(it.ID, itemIDs)
			if it.PricingMode != model.PricingFixed {
				it.PricingMode = model.PricingHourly
			}
			it.Hours = sanitizeNumber(it.Hours)
			it.FixedPrice = sanitizeNumber(it.FixedPrice)
			it.UnitPrice = sanitizeNumber(it.UnitPrice)
		}
	}
	return out
}

// uniqueID returns id unless it is empty or already in seen, in which case a
// fresh one is minted. The returned id is recorded in seen.
func uniqueID(id string, seen map[string]bool) string {
	if id == "" || seen[id] {
		id = uuid.New().String()
	}
	seen[id] = true
	return id
}
