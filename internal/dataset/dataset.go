// Package dataset supplies the transaction and budget seed data the
// overview renders: a bundled demo month, a randomized generator, and
// validation for externally supplied snapshots.
package dataset

import (
	"fmt"
	"sort"

	"spendview/internal/model"
)

// Dataset pairs the fixed transaction list with its budget seed. The
// transaction slice is ordered date-ascending.
type Dataset struct {
	Transactions []model.Transaction
	Budgets      []model.CategoryBudget
}

// Validate checks the invariants the view relies on: unique transaction
// IDs, known sources, non-negative amounts, unique budget categories.
func (d Dataset) Validate() error {
	seen := make(map[string]struct{}, len(d.Transactions))
	for _, t := range d.Transactions {
		if t.ID == "" {
			return fmt.Errorf("transaction with empty id (merchant %q)", t.Merchant)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("duplicate transaction id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.Amount < 0 {
			return fmt.Errorf("transaction %s: negative amount", t.ID)
		}
		if !t.Source.Valid() {
			return fmt.Errorf("transaction %s: unknown source %q", t.ID, t.Source)
		}
	}

	cats := make(map[string]struct{}, len(d.Budgets))
	for _, b := range d.Budgets {
		if _, dup := cats[b.Category]; dup {
			return fmt.Errorf("duplicate budget category %q", b.Category)
		}
		cats[b.Category] = struct{}{}
		if b.Monthly < 0 {
			return fmt.Errorf("budget %q: negative monthly value", b.Category)
		}
	}

	return nil
}

// SortByDate orders transactions date-ascending in place. Snapshot rows
// arrive in storage order, so callers normalize before rendering.
func (d *Dataset) SortByDate() {
	sort.SliceStable(d.Transactions, func(i, j int) bool {
		return d.Transactions[i].Date.Before(d.Transactions[j].Date)
	})
}
