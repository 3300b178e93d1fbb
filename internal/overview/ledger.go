// Package overview holds the state controllers behind the monthly spend
// overview: the budget ledger with its one-edit-per-month lock, the edit
// session, the card expansion toggle, and the toast.
package overview

import (
	"errors"
	"fmt"

	"spendview/internal/model"
)

var (
	// ErrLocked is returned when a save targets a budget already locked
	// for the month.
	ErrLocked = errors.New("budget locked for this month")

	// ErrUnknownCategory is returned when a save targets a category with
	// no budget entry.
	ErrUnknownCategory = errors.New("unknown budget category")

	// ErrNegativeBudget is returned when a save carries a negative value.
	ErrNegativeBudget = errors.New("budget must not be negative")
)

// Ledger owns the mutable budget list for the session. The transaction
// set it is paired with never changes; only Save mutates the ledger.
type Ledger struct {
	budgets []model.CategoryBudget
}

// NewLedger copies the seed budgets so the caller's slice stays pristine.
func NewLedger(seed []model.CategoryBudget) *Ledger {
	budgets := make([]model.CategoryBudget, len(seed))
	copy(budgets, seed)
	return &Ledger{budgets: budgets}
}

// Budgets returns the current budget entries. Callers must not mutate
// the returned slice; all mutation goes through Save.
func (l *Ledger) Budgets() []model.CategoryBudget {
	return l.budgets
}

// Get returns the budget entry for category.
func (l *Ledger) Get(category string) (model.CategoryBudget, bool) {
	for _, b := range l.budgets {
		if b.Category == category {
			return b, true
		}
	}
	return model.CategoryBudget{}, false
}

// Save applies the new monthly value and locks the category, both in one
// step. A locked category, an unknown category, or a negative value
// leaves the ledger untouched. Zero is a valid budget; percentage math
// degrades to 0 rather than failing.
func (l *Ledger) Save(category string, value float64) error {
	if value < 0 {
		return fmt.Errorf("save %q: %w", category, ErrNegativeBudget)
	}
	for i, b := range l.budgets {
		if b.Category != category {
			continue
		}
		if b.Locked {
			return fmt.Errorf("save %q: %w", category, ErrLocked)
		}
		l.budgets[i].Monthly = value
		l.budgets[i].Locked = true
		return nil
	}
	return fmt.Errorf("save %q: %w", category, ErrUnknownCategory)
}
