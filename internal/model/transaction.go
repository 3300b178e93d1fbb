// Package model defines domain types for spendview transactions, budgets,
// and derived statistics.
package model

import "time"

// Source identifies how a transaction entered the dataset.
type Source string

const (
	SourceEmail  Source = "email"
	SourceSMS    Source = "sms"
	SourceManual Source = "manual"
)

// Valid reports whether s is one of the known sources.
func (s Source) Valid() bool {
	switch s {
	case SourceEmail, SourceSMS, SourceManual:
		return true
	}
	return false
}

// Transaction is one spend record. Transactions are read-only reference
// data: never created, mutated, or destroyed at runtime.
type Transaction struct {
	ID       string
	Date     time.Time
	Amount   float64 // whole currency units, non-negative
	Merchant string
	Category string
	Source   Source
}
