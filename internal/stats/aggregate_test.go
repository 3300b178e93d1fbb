package stats

import (
	"math"
	"testing"
	"time"

	"spendview/internal/model"
)

func txn(id, category string, amount float64, day int) model.Transaction {
	return model.Transaction{
		ID:       id,
		Date:     time.Date(2026, time.August, day, 0, 0, 0, 0, time.Local),
		Amount:   amount,
		Merchant: "m-" + id,
		Category: category,
		Source:   model.SourceManual,
	}
}

func TestComputeTotals(t *testing.T) {
	txns := []model.Transaction{
		txn("a", "Food", 1250, 2),
		txn("b", "Food", 890, 5),
		txn("c", "Food", 380, 11),
		txn("d", "Transport", 340, 3),
	}
	budgets := []model.CategoryBudget{
		{Category: "Food", Monthly: 8000},
		{Category: "Transport", Monthly: 3000},
	}

	ds := Compute(txns, budgets)

	if ds.TotalBudget != 11000 {
		t.Fatalf("TotalBudget = %.0f, want 11000", ds.TotalBudget)
	}
	if ds.TotalSpent != 2860 {
		t.Fatalf("TotalSpent = %.0f, want 2860", ds.TotalSpent)
	}
	if ds.SpentPercent != 26 {
		t.Fatalf("SpentPercent = %d, want 26", ds.SpentPercent)
	}
	if ds.MaxCategoryAmount != 2520 {
		t.Fatalf("MaxCategoryAmount = %.0f, want 2520", ds.MaxCategoryAmount)
	}
}

func TestComputeCategoryPartition(t *testing.T) {
	txns := []model.Transaction{
		txn("a", "Food", 1250, 2),
		txn("b", "Transport", 340, 3),
		txn("c", "Food", 890, 5),
		txn("d", "Shopping", 2199, 6),
		txn("e", "Transport", 620, 9),
	}

	ds := Compute(txns, nil)

	var sum, shares float64
	for _, cs := range ds.Categories {
		sum += cs.Amount
		shares += cs.PercentOfTotal
	}
	if sum != ds.TotalSpent {
		t.Fatalf("category amounts sum to %.2f, want TotalSpent %.2f", sum, ds.TotalSpent)
	}
	if math.Abs(shares-100) > 1e-9 {
		t.Fatalf("category shares sum to %.6f, want 100", shares)
	}
}

func TestComputeCategoriesSortedDescending(t *testing.T) {
	txns := []model.Transaction{
		txn("a", "Entertainment", 499, 8),
		txn("b", "Shopping", 2199, 6),
		txn("c", "Food", 1250, 2),
		txn("d", "Food", 890, 5),
	}

	ds := Compute(txns, nil)

	want := []string{"Shopping", "Food", "Entertainment"}
	if len(ds.Categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(ds.Categories), len(want))
	}
	for i, cs := range ds.Categories {
		if cs.Category != want[i] {
			t.Fatalf("Categories[%d] = %q, want %q", i, cs.Category, want[i])
		}
	}
}

func TestComputeTieKeepsFirstAppearanceOrder(t *testing.T) {
	// Health and Transport land on identical totals; Health appears first
	// in the transaction list and must stay first in the output.
	txns := []model.Transaction{
		txn("a", "Health", 500, 1),
		txn("b", "Transport", 200, 2),
		txn("c", "Transport", 300, 3),
	}

	ds := Compute(txns, nil)

	if ds.Categories[0].Category != "Health" {
		t.Fatalf("first category = %q, want Health (first appearance wins ties)", ds.Categories[0].Category)
	}
	if ds.Categories[1].Category != "Transport" {
		t.Fatalf("second category = %q, want Transport", ds.Categories[1].Category)
	}
}

func TestComputeZeroBudgetGivesZeroPercent(t *testing.T) {
	txns := []model.Transaction{txn("a", "Food", 100, 1)}

	ds := Compute(txns, nil)
	if ds.SpentPercent != 0 {
		t.Fatalf("SpentPercent with no budget = %d, want 0", ds.SpentPercent)
	}

	ds = Compute(txns, []model.CategoryBudget{{Category: "Food", Monthly: 0}})
	if ds.SpentPercent != 0 {
		t.Fatalf("SpentPercent with zero budget = %d, want 0", ds.SpentPercent)
	}
}

func TestComputeEmptyInputs(t *testing.T) {
	ds := Compute(nil, nil)
	if ds.TotalSpent != 0 || ds.TotalBudget != 0 || ds.SpentPercent != 0 {
		t.Fatalf("empty Compute = %+v, want all zero", ds)
	}
	if len(ds.Categories) != 0 {
		t.Fatalf("empty Compute produced %d categories", len(ds.Categories))
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	txns := []model.Transaction{
		txn("a", "Food", 1250, 2),
		txn("b", "Transport", 340, 3),
	}
	budgets := []model.CategoryBudget{{Category: "Food", Monthly: 8000}}

	first := Compute(txns, budgets)
	second := Compute(txns, budgets)

	if first.TotalSpent != second.TotalSpent || first.SpentPercent != second.SpentPercent {
		t.Fatal("repeated Compute over the same inputs diverged")
	}
	for i := range first.Categories {
		if first.Categories[i] != second.Categories[i] {
			t.Fatalf("Categories[%d] diverged: %+v vs %+v", i, first.Categories[i], second.Categories[i])
		}
	}
}

func TestSpendPercent(t *testing.T) {
	cases := []struct {
		name   string
		spent  float64
		budget float64
		want   int
	}{
		{"under", 2520, 8000, 32},
		{"rounds half up", 1500, 2000, 75},
		{"exact", 2200, 2200, 100},
		{"over budget", 2500, 2000, 125},
		{"zero budget", 500, 0, 0},
		{"negative budget", 500, -10, 0},
		{"nothing spent", 0, 1000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SpendPercent(tc.spent, tc.budget); got != tc.want {
				t.Fatalf("SpendPercent(%.0f, %.0f) = %d, want %d", tc.spent, tc.budget, got, tc.want)
			}
		})
	}
}

func TestSpentByCategory(t *testing.T) {
	txns := []model.Transaction{
		txn("a", "Food", 1250, 2),
		txn("b", "Transport", 340, 3),
		txn("c", "Food", 890, 5),
	}

	if got := SpentByCategory(txns, "Food"); got != 2140 {
		t.Fatalf("SpentByCategory(Food) = %.0f, want 2140", got)
	}
	if got := SpentByCategory(txns, "Health"); got != 0 {
		t.Fatalf("SpentByCategory(Health) = %.0f, want 0", got)
	}
}

func TestByCategoryPreservesOrder(t *testing.T) {
	txns := []model.Transaction{
		txn("a", "Food", 1250, 2),
		txn("b", "Transport", 340, 3),
		txn("c", "Food", 890, 5),
		txn("d", "Food", 380, 11),
	}

	got := ByCategory(txns, "Food")
	wantIDs := []string{"a", "c", "d"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d transactions, want %d", len(got), len(wantIDs))
	}
	for i, tx := range got {
		if tx.ID != wantIDs[i] {
			t.Fatalf("ByCategory[%d].ID = %q, want %q", i, tx.ID, wantIDs[i])
		}
	}
}
