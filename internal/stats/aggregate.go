// Package stats computes derived spend statistics from the fixed
// transaction set and the current budget list. All functions are pure:
// callers rerun them after any budget mutation.
package stats

import (
	"math"
	"sort"

	"spendview/internal/model"
)

// Compute builds the full derived view over transactions and budgets.
func Compute(txns []model.Transaction, budgets []model.CategoryBudget) model.DerivedStats {
	var ds model.DerivedStats

	for _, b := range budgets {
		ds.TotalBudget += b.Monthly
	}
	for _, t := range txns {
		ds.TotalSpent += t.Amount
	}
	if ds.TotalBudget > 0 {
		ds.SpentPercent = int(math.Round(ds.TotalSpent / ds.TotalBudget * 100))
	}

	ds.Categories = categoryStats(txns, ds.TotalSpent)
	for _, cs := range ds.Categories {
		if cs.Amount > ds.MaxCategoryAmount {
			ds.MaxCategoryAmount = cs.Amount
		}
	}

	return ds
}

// SpentByCategory sums transaction amounts for one category.
func SpentByCategory(txns []model.Transaction, category string) float64 {
	var total float64
	for _, t := range txns {
		if t.Category == category {
			total += t.Amount
		}
	}
	return total
}

// ByCategory returns the transactions matching category, preserving the
// source order (date-ascending by construction of the dataset).
func ByCategory(txns []model.Transaction, category string) []model.Transaction {
	var result []model.Transaction
	for _, t := range txns {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// SpendPercent is the rounded spent/budget percentage for one category,
// degrading to 0 when the budget is 0.
func SpendPercent(spent, budget float64) int {
	if budget <= 0 {
		return 0
	}
	return int(math.Round(spent / budget * 100))
}

// categoryStats aggregates per-category totals, sorted descending by
// amount. Equal amounts keep first-appearance order from the transaction
// list, so the ordering is deterministic for a fixed dataset.
func categoryStats(txns []model.Transaction, totalSpent float64) []model.CategoryStat {
	idx := make(map[string]int)
	var cats []model.CategoryStat

	for _, t := range txns {
		i, ok := idx[t.Category]
		if !ok {
			i = len(cats)
			idx[t.Category] = i
			cats = append(cats, model.CategoryStat{Category: t.Category})
		}
		cats[i].Amount += t.Amount
	}

	if totalSpent > 0 {
		for i := range cats {
			cats[i].PercentOfTotal = cats[i].Amount / totalSpent * 100
		}
	}

	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Amount > cats[j].Amount
	})

	return cats
}
