package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the canonical date layout for stored expenses.
const DateFormat = "2006-01-02"

// MonthFormat is the canonical layout for the derived month field.
const MonthFormat = "2006-01"

// Expense is one normalized expense record.
type Expense struct {
	ID          string          // assigned by the store at persistence time
	OwnerID     string          // opaque owner identifier, constant across a batch
	Date        string          // canonical YYYY-MM-DD
	Amount      decimal.Decimal // non-negative, 2 fractional digits
	Description string
	Category    string
	Month       string // derived: first 7 chars of Date (YYYY-MM)
	CreatedAt   time.Time
}

// SetDate updates Date and recomputes Month. Month is never set on its own.
func (e *Expense) SetDate(date string) {
	e.Date = date
	e.Month = MonthOf(date)
}

// MonthOf returns the YYYY-MM prefix of a canonical YYYY-MM-DD date.
func MonthOf(date string) string {
	if len(date) < len(MonthFormat) {
		return date
	}
	return date[:len(MonthFormat)]
}

// MonthlySummary aggregates one owner's expenses for one month.
type MonthlySummary struct {
	OwnerID    string
	Month      string
	Total      decimal.Decimal
	Categories map[string]decimal.Decimal
	Count      int
}
