package model

// CategoryStat holds aggregated spend for one category.
type CategoryStat struct {
	Category       string
	Amount         float64
	PercentOfTotal float64 // share of TotalSpent, 0 when TotalSpent is 0
}

// DerivedStats is the ephemeral aggregate recomputed from the transaction
// set and the current budget list. It carries no state of its own.
type DerivedStats struct {
	TotalBudget  float64
	TotalSpent   float64
	SpentPercent int // rounded, 0 when TotalBudget is 0

	// Categories is sorted descending by Amount. Categories with equal
	// amounts keep the order in which they first appear in the
	// transaction list.
	Categories []CategoryStat

	// MaxCategoryAmount normalizes bar widths; 0 when Categories is empty.
	MaxCategoryAmount float64
}
