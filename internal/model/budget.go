package model

// CategoryBudget is the monthly budget attached to one spend category.
// Category is the unique key. Monthly is mutable only while Locked is
// false, and only via the single save operation, which sets Monthly and
// Locked together. Once Locked, the budget stays locked for the rest of
// the session.
type CategoryBudget struct {
	Category string
	Monthly  float64
	Locked   bool
}
