// Package store persists expenses in a local sqlite database.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/gastos-dev/gastos/internal/model"
)

// Amounts are stored as text in canonical fixed-2 form, not REAL, so no
// float rounding sneaks in between import and export.
const schema = `
CREATE TABLE IF NOT EXISTS expenses (
	id          TEXT PRIMARY KEY,
	owner_id    TEXT NOT NULL,
	date        TEXT NOT NULL,
	amount      TEXT NOT NULL,
	description TEXT NOT NULL,
	category    TEXT NOT NULL,
	month       TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_owner_month ON expenses(owner_id, month);
CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
`

// Store wraps the sqlite handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the expense database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

const insertSQL = `
INSERT INTO expenses (id, owner_id, date, amount, description, category, month, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// BulkInsert writes a batch of expenses in one transaction and returns the
// generated IDs in input order. A zero CreatedAt is stamped here so every
// stored record has one.
func (s *Store) BulkInsert(expenses []model.Expense) ([]string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback is a no-op after commit

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]string, 0, len(expenses))
	for i, e := range expenses {
		e.ID = uuid.NewString()
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now().UTC()
		}
		if _, err := stmt.Exec(e.ID, e.OwnerID, e.Date, e.Amount.StringFixed(2),
			e.Description, e.Category, e.Month, e.CreatedAt.Format(time.RFC3339)); err != nil {
			return nil, fmt.Errorf("insert expense %d: %w", i, err)
		}
		ids = append(ids, e.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return ids, nil
}

// Insert writes one expense and returns its generated ID.
func (s *Store) Insert(e model.Expense) (string, error) {
	ids, err := s.BulkInsert([]model.Expense{e})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// Update rewrites an existing expense. Month is recomputed from the date so
// the two can never drift apart.
func (s *Store) Update(e model.Expense) error {
	res, err := s.db.Exec(`
		UPDATE expenses
		SET owner_id = ?, date = ?, amount = ?, description = ?, category = ?, month = ?
		WHERE id = ?
	`, e.OwnerID, e.Date, e.Amount.StringFixed(2), e.Description, e.Category,
		model.MonthOf(e.Date), e.ID)
	if err != nil {
		return fmt.Errorf("updating expense %s: %w", e.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating expense %s: %w", e.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s not found", e.ID)
	}
	return nil
}

// Delete removes an expense by ID.
func (s *Store) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting expense %s: %w", id, err)
	}
	return nil
}

// Get returns one expense by ID.
func (s *Store) Get(id string) (model.Expense, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, date, amount, description, category, month, created_at
		FROM expenses WHERE id = ?
	`, id)
	e, err := scanExpense(row.Scan)
	if err == sql.ErrNoRows {
		return model.Expense{}, fmt.Errorf("expense %s not found", id)
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("loading expense %s: %w", id, err)
	}
	return e, nil
}

// ListByOwner returns an owner's expenses ordered by date descending. An
// empty month means all months.
func (s *Store) ListByOwner(ownerID, month string) ([]model.Expense, error) {
	query := `
		SELECT id, owner_id, date, amount, description, category, month, created_at
		FROM expenses WHERE owner_id = ?
	`
	args := []any{ownerID}
	if month != "" {
		query += ` AND month = ?`
		args = append(args, month)
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Summarize aggregates one owner's expenses for one month: total, count and
// per-category totals. Sums are computed in decimal, not SQL REAL.
func (s *Store) Summarize(ownerID, month string) (model.MonthlySummary, error) {
	expenses, err := s.ListByOwner(ownerID, month)
	if err != nil {
		return model.MonthlySummary{}, err
	}

	summary := model.MonthlySummary{
		OwnerID:    ownerID,
		Month:      month,
		Total:      decimal.Zero,
		Categories: make(map[string]decimal.Decimal),
		Count:      len(expenses),
	}
	for _, e := range expenses {
		summary.Total = summary.Total.Add(e.Amount)
		summary.Categories[e.Category] = summary.Categories[e.Category].Add(e.Amount)
	}
	return summary, nil
}

func scanExpense(scan func(dest ...any) error) (model.Expense, error) {
	var e model.Expense
	var amount, createdAt string
	if err := scan(&e.ID, &e.OwnerID, &e.Date, &amount, &e.Description,
		&e.Category, &e.Month, &createdAt); err != nil {
		return model.Expense{}, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	e.Amount = d

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	e.CreatedAt = ts

	return e, nil
}
