// Package importer turns raw CSV rows into normalized expenses. Rows are
// processed independently: one bad row is reported and skipped, the rest of
// the batch goes through.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gastos-dev/gastos/internal/category"
	"github.com/gastos-dev/gastos/internal/model"
	"github.com/gastos-dev/gastos/internal/normalize"
)

// RawRow is one imported line keyed by column name, as produced by the CSV
// reader. Column-name variants (case, language) are resolved via the alias
// lists below.
type RawRow map[string]model.Value

// Alias candidates per logical field, tried in this order; first non-empty
// cell wins.
var (
	dateAliases        = []string{"fecha", "date", "Fecha", "Date", "FECHA"}
	amountAliases      = []string{"importe", "amount", "Importe", "Amount", "IMPORTE"}
	descriptionAliases = []string{"descripción", "descripcion", "description", "Descripción", "Description", "DESCRIPCION"}
	categoryAliases    = []string{"categoría", "categoria", "category", "Categoría", "Category", "CATEGORIA"}
)

var (
	errDateRequired        = errors.New("date required")
	errAmountRequired      = errors.New("amount required")
	errDescriptionRequired = errors.New("description required")
)

// lookup resolves a logical field against its alias candidates.
func lookup(row RawRow, aliases []string) (model.Value, bool) {
	for _, name := range aliases {
		if v, ok := row[name]; ok && !v.Empty() {
			return v, true
		}
	}
	return model.Value{}, false
}

// ProcessRow validates and normalizes one raw row. Validation fails fast in
// a fixed order so error messages are deterministic: required fields first
// (presence, not truthiness: a literal 0 amount is valid), then date format,
// then amount format and sign. When the row has no category column the
// description is classified against rules.
func ProcessRow(row RawRow, ownerID string, rules *category.RuleSet) (model.Expense, error) {
	rawDate, ok := lookup(row, dateAliases)
	if !ok {
		return model.Expense{}, errDateRequired
	}
	rawAmount, ok := lookup(row, amountAliases)
	if !ok {
		return model.Expense{}, errAmountRequired
	}
	rawDesc, ok := lookup(row, descriptionAliases)
	if !ok {
		return model.Expense{}, errDescriptionRequired
	}

	date, ok := normalize.ParseDate(rawDate)
	if !ok {
		return model.Expense{}, fmt.Errorf("invalid date format: %s", rawDate.Raw())
	}

	amount, ok := normalize.ParseAmount(rawAmount)
	if !ok || amount.IsNegative() {
		return model.Expense{}, fmt.Errorf("invalid amount: %s", rawAmount.Raw())
	}

	description := rawDesc.Raw()

	var cat string
	if rawCat, ok := lookup(row, categoryAliases); ok {
		cat = rawCat.Raw()
	} else {
		cat = rules.Classify(description)
	}

	return model.Expense{
		OwnerID:     ownerID,
		Date:        date,
		Amount:      amount,
		Description: description,
		Category:    cat,
		Month:       model.MonthOf(date),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// RowError is one rejected row: its 1-based position in the source file
// (header included, so the first data row is 2) and what was wrong with it.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// Report summarizes one import: accepted expenses and rejected rows, both in
// input order. Partial success is a first-class outcome: Expenses is handed
// on for persistence even when some rows failed.
type Report struct {
	Processed int
	Skipped   int
	Errors    []RowError
	Expenses  []model.Expense
}

// Success reports whether every row was accepted.
func (r Report) Success() bool {
	return len(r.Errors) == 0
}

// ImportBatch processes every row of one uploaded file. A row failure never
// skips or aborts the rows after it.
func ImportBatch(rows []RawRow, ownerID string, rules *category.RuleSet) Report {
	var report Report
	for i, row := range rows {
		exp, err := ProcessRow(row, ownerID, rules)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, RowError{Row: i + 2, Message: err.Error()})
			continue
		}
		report.Processed++
		report.Expenses = append(report.Expenses, exp)
	}
	return report
}

// ReadRows reads a headered CSV into raw rows. The first line names the
// columns; blank lines are skipped; short rows keep whatever columns they
// have. Quoting, escaping and UTF-8 are the csv package's problem, not ours.
func ReadRows(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var rows []RawRow
	for _, rec := range records[1:] {
		row := make(RawRow, len(header))
		for i, field := range rec {
			if i >= len(header) {
				break
			}
			row[header[i]] = model.String(field)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ImportCSV reads a CSV stream and imports it as one batch. Row-level
// problems land in the report, never in the returned error. A reader-level
// failure is a whole-batch failure: the error is returned and the report
// carries zero processed rows plus a single entry surfacing the message.
func ImportCSV(r io.Reader, ownerID string, rules *category.RuleSet) (Report, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return Report{Errors: []RowError{{Row: 0, Message: err.Error()}}}, err
	}
	return ImportBatch(rows, ownerID, rules), nil
}
