package dataset

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"spendview/internal/model"
)

var generatorMerchants = map[string][]string{
	"Food":          {"Green Basket Grocers", "Spice Route Kitchen", "Corner Bakery", "Daily Dairy"},
	"Transport":     {"Metro Transit", "RideWay Cabs", "Fuel Stop 24"},
	"Shopping":      {"Northline Apparel", "Page & Bound Books", "Gadget Garage"},
	"Entertainment": {"StreamBox", "Cinema Square", "Arcade Alley"},
	"Health":        {"Wellness Pharmacy", "City Clinic"},
	"Utilities":     {"City Power & Light", "AquaFlow Water", "FiberNet"},
}

var generatorSources = []model.Source{model.SourceEmail, model.SourceSMS, model.SourceManual}

// Generate builds a randomized demo month with n transactions spread over
// the budget categories of the bundled seed. The seed value makes runs
// reproducible; transactions come back date-ascending.
func Generate(now time.Time, n int, seed int64) Dataset {
	rng := rand.New(rand.NewSource(seed))
	budgets := Demo(now).Budgets

	cats := make([]string, 0, len(budgets))
	for _, b := range budgets {
		cats = append(cats, b.Category)
	}

	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()

	txns := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		cat := cats[rng.Intn(len(cats))]
		merchants := generatorMerchants[cat]
		txns = append(txns, model.Transaction{
			ID:       uuid.NewString(),
			Date:     time.Date(now.Year(), now.Month(), 1+rng.Intn(daysInMonth), 0, 0, 0, 0, time.Local),
			Amount:   float64(50 + rng.Intn(2450)),
			Merchant: merchants[rng.Intn(len(merchants))],
			Category: cat,
			Source:   generatorSources[rng.Intn(len(generatorSources))],
		})
	}

	ds := Dataset{Transactions: txns, Budgets: budgets}
	ds.SortByDate()
	return ds
}
