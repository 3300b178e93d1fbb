package store

import (
	"path/filepath"
	"testing"
	"time"

	"spendview/internal/dataset"
	"spendview/internal/model"
)

func testDataset() dataset.Dataset {
	return dataset.Demo(time.Date(2026, time.August, 29, 0, 0, 0, 0, time.Local))
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spend.db")

	want := testDataset()

	snap, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := snap.WriteDataset(want); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}
	if err := snap.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	if len(got.Transactions) != len(want.Transactions) {
		t.Fatalf("read %d transactions, want %d", len(got.Transactions), len(want.Transactions))
	}
	if len(got.Budgets) != len(want.Budgets) {
		t.Fatalf("read %d budgets, want %d", len(got.Budgets), len(want.Budgets))
	}

	byID := make(map[string]model.Transaction)
	for _, tx := range want.Transactions {
		byID[tx.ID] = tx
	}
	for _, tx := range got.Transactions {
		orig, ok := byID[tx.ID]
		if !ok {
			t.Fatalf("read unknown transaction id %q", tx.ID)
		}
		if tx.Amount != orig.Amount || tx.Merchant != orig.Merchant ||
			tx.Category != orig.Category || tx.Source != orig.Source {
			t.Fatalf("transaction %s changed in round trip: %+v vs %+v", tx.ID, tx, orig)
		}
		if !tx.Date.Equal(orig.Date) {
			t.Fatalf("transaction %s date = %s, want %s", tx.ID, tx.Date, orig.Date)
		}
	}

	lockedSurvived := false
	for _, b := range got.Budgets {
		if b.Category == "Utilities" && b.Locked && b.Monthly == 2200 {
			lockedSurvived = true
		}
	}
	if !lockedSurvived {
		t.Fatal("locked Utilities budget did not survive the round trip")
	}
}

func TestReadDatasetOrdersByDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spend.db")

	// Write transactions in reverse date order; reads must come back ascending.
	ds := testDataset()
	for i, j := 0, len(ds.Transactions)-1; i < j; i, j = i+1, j-1 {
		ds.Transactions[i], ds.Transactions[j] = ds.Transactions[j], ds.Transactions[i]
	}

	snap, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = snap.Close() }()

	if err := snap.WriteDataset(ds); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}

	got, err := snap.ReadDataset()
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}
	for i := 1; i < len(got.Transactions); i++ {
		if got.Transactions[i].Date.Before(got.Transactions[i-1].Date) {
			t.Fatalf("transactions out of date order at index %d", i)
		}
	}
}

func TestWriteDatasetReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spend.db")

	snap, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = snap.Close() }()

	if err := snap.WriteDataset(testDataset()); err != nil {
		t.Fatalf("first write: %v", err)
	}

	smaller := dataset.Dataset{
		Transactions: []model.Transaction{{
			ID:       "only",
			Date:     time.Date(2026, time.August, 3, 0, 0, 0, 0, time.Local),
			Amount:   42,
			Merchant: "Corner Bakery",
			Category: "Food",
			Source:   model.SourceManual,
		}},
		Budgets: []model.CategoryBudget{{Category: "Food", Monthly: 8000}},
	}
	if err := snap.WriteDataset(smaller); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := snap.ReadDataset()
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}
	if len(got.Transactions) != 1 || len(got.Budgets) != 1 {
		t.Fatalf("second write did not replace contents: %d transactions, %d budgets",
			len(got.Transactions), len(got.Budgets))
	}
	if got.Transactions[0].ID != "only" {
		t.Fatalf("surviving transaction id = %q, want only", got.Transactions[0].ID)
	}
}

func TestLoadDatasetRejectsBrokenSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spend.db")

	snap, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// Bypass WriteDataset to plant an invalid source value.
	_, err = snap.db.Exec(`INSERT INTO transactions (id, date, amount, merchant, category, source)
		VALUES ('x', '2026-08-01', 10, 'Shop', 'Food', 'fax')`)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := snap.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := LoadDataset(path); err == nil {
		t.Fatal("LoadDataset accepted a snapshot with an unknown source")
	}
}
