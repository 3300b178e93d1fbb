package dataset

import (
	"time"

	"spendview/internal/model"
)

// Demo returns the bundled demo month: a fixed transaction list pinned to
// the current calendar month and the matching budget seed. Every budget
// starts unlocked except Utilities, which ships already locked so the
// disabled edit affordance is visible out of the box.
func Demo(now time.Time) Dataset {
	day := func(d int) time.Time {
		return time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, time.Local)
	}

	txns := []model.Transaction{
		{ID: "t01", Date: day(1), Amount: 1800, Merchant: "City Power & Light", Category: "Utilities", Source: model.SourceEmail},
		{ID: "t02", Date: day(2), Amount: 1250, Merchant: "Green Basket Grocers", Category: "Food", Source: model.SourceEmail},
		{ID: "t03", Date: day(3), Amount: 340, Merchant: "Metro Transit", Category: "Transport", Source: model.SourceSMS},
		{ID: "t04", Date: day(5), Amount: 890, Merchant: "Spice Route Kitchen", Category: "Food", Source: model.SourceSMS},
		{ID: "t05", Date: day(6), Amount: 2199, Merchant: "Northline Apparel", Category: "Shopping", Source: model.SourceEmail},
		{ID: "t06", Date: day(8), Amount: 499, Merchant: "StreamBox", Category: "Entertainment", Source: model.SourceEmail},
		{ID: "t07", Date: day(9), Amount: 620, Merchant: "RideWay Cabs", Category: "Transport", Source: model.SourceSMS},
		{ID: "t08", Date: day(11), Amount: 380, Merchant: "Corner Bakery", Category: "Food", Source: model.SourceManual},
		{ID: "t09", Date: day(12), Amount: 1450, Merchant: "Wellness Pharmacy", Category: "Health", Source: model.SourceEmail},
		{ID: "t10", Date: day(14), Amount: 760, Merchant: "Page & Bound Books", Category: "Shopping", Source: model.SourceManual},
		{ID: "t11", Date: day(15), Amount: 320, Merchant: "Cinema Square", Category: "Entertainment", Source: model.SourceSMS},
		{ID: "t12", Date: day(17), Amount: 540, Merchant: "Metro Transit", Category: "Transport", Source: model.SourceSMS},
	}

	budgets := []model.CategoryBudget{
		{Category: "Food", Monthly: 8000},
		{Category: "Transport", Monthly: 3000},
		{Category: "Shopping", Monthly: 5000},
		{Category: "Entertainment", Monthly: 2000},
		{Category: "Health", Monthly: 2500},
		{Category: "Utilities", Monthly: 2200, Locked: true},
	}

	return Dataset{Transactions: txns, Budgets: budgets}
}
