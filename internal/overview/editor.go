package overview

import "spendview/internal/model"

// Editor tracks the in-flight budget edit. At most one category is being
// edited at a time, and a locked category never enters edit mode.
type Editor struct {
	category string
	draft    float64
	active   bool
}

// Begin starts editing the given budget, seeding the draft with the
// current monthly value. It refuses locked budgets and reports whether
// edit mode was entered.
func (e *Editor) Begin(b model.CategoryBudget) bool {
	if b.Locked {
		return false
	}
	e.category = b.Category
	e.draft = b.Monthly
	e.active = true
	return true
}

// SetDraft replaces the draft value. No validation happens here; the
// save path decides what is acceptable.
func (e *Editor) SetDraft(v float64) {
	if !e.active {
		return
	}
	e.draft = v
}

// Cancel leaves edit mode without touching any budget.
func (e *Editor) Cancel() {
	*e = Editor{}
}

// Active reports whether an edit is in flight.
func (e *Editor) Active() bool { return e.active }

// Category returns the category being edited, or "" when idle.
func (e *Editor) Category() string {
	if !e.active {
		return ""
	}
	return e.category
}

// Draft returns the current draft value.
func (e *Editor) Draft() float64 { return e.draft }
