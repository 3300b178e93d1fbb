// Package store reads and writes SQLite dataset snapshots. A snapshot is
// the hand-off format between an ingestion collaborator and spendview:
// the dashboard only ever reads it at startup, and budget edits made in
// the view are never written back.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"spendview/internal/dataset"
	"spendview/internal/model"
)

const dateLayout = "2006-01-02"

// Snapshot wraps an open snapshot database.
type Snapshot struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(path string) (*Snapshot, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Close closes the snapshot database.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

// WriteDataset replaces the snapshot contents with the given dataset.
func (s *Snapshot) WriteDataset(ds dataset.Dataset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM budgets"); err != nil {
		return err
	}

	for _, t := range ds.Transactions {
		_, err := tx.Exec(`INSERT INTO transactions (id, date, amount, merchant, category, source)
			VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Date.Format(dateLayout), t.Amount, t.Merchant, t.Category, string(t.Source))
		if err != nil {
			return fmt.Errorf("writing transaction %s: %w", t.ID, err)
		}
	}

	for _, b := range ds.Budgets {
		locked := 0
		if b.Locked {
			locked = 1
		}
		_, err := tx.Exec(`INSERT INTO budgets (category, monthly, locked) VALUES (?, ?, ?)`,
			b.Category, b.Monthly, locked)
		if err != nil {
			return fmt.Errorf("writing budget %q: %w", b.Category, err)
		}
	}

	return tx.Commit()
}

// ReadDataset loads the full dataset, transactions ordered date-ascending.
func (s *Snapshot) ReadDataset() (dataset.Dataset, error) {
	var ds dataset.Dataset

	rows, err := s.db.Query(`SELECT id, date, amount, merchant, category, source
		FROM transactions ORDER BY date, id`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var t model.Transaction
		var dateStr, source string
		if err := rows.Scan(&t.ID, &dateStr, &t.Amount, &t.Merchant, &t.Category, &source); err != nil {
			return ds, err
		}
		t.Date, err = time.ParseInLocation(dateLayout, dateStr, time.Local)
		if err != nil {
			return ds, fmt.Errorf("transaction %s: bad date %q: %w", t.ID, dateStr, err)
		}
		t.Source = model.Source(source)
		ds.Transactions = append(ds.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return ds, err
	}

	budgetRows, err := s.db.Query(`SELECT category, monthly, locked FROM budgets ORDER BY category`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = budgetRows.Close() }()

	for budgetRows.Next() {
		var b model.CategoryBudget
		var locked int
		if err := budgetRows.Scan(&b.Category, &b.Monthly, &locked); err != nil {
			return ds, err
		}
		b.Locked = locked != 0
		ds.Budgets = append(ds.Budgets, b)
	}
	if err := budgetRows.Err(); err != nil {
		return ds, err
	}

	if err := ds.Validate(); err != nil {
		return ds, fmt.Errorf("snapshot: %w", err)
	}
	return ds, nil
}

// LoadDataset opens path, reads the dataset, and closes the snapshot.
func LoadDataset(path string) (dataset.Dataset, error) {
	snap, err := Open(path)
	if err != nil {
		return dataset.Dataset{}, err
	}
	defer func() { _ = snap.Close() }()
	return snap.ReadDataset()
}
