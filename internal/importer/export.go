package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gastos-dev/gastos/internal/model"
)

// ExportHeader is the CSV header for exported expense files. Column names
// and order are part of the file format: prior exports depend on them.
const ExportHeader = "Fecha,Usuario,Importe,Categoría,Descripción,Mes,Creado"

const (
	exportNumFields = 7
	colFecha        = 0
	colUsuario      = 1
	colImporte      = 2
	colCategoria    = 3
	colDescripcion  = 4
	colMes          = 5
	colCreado       = 6
)

// MarshalExpense converts an expense to an export CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, exportNumFields)
	row[colFecha] = e.Date
	row[colUsuario] = e.OwnerID
	row[colImporte] = e.Amount.StringFixed(2)
	row[colCategoria] = e.Category
	row[colDescripcion] = e.Description
	row[colMes] = e.Month
	if !e.CreatedAt.IsZero() {
		row[colCreado] = e.CreatedAt.UTC().Format(time.RFC3339)
	}
	return row
}

// WriteExpenses writes expenses to an export CSV writer (including header).
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ExportHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ExportRows converts expenses to field maps keyed by the export column
// names, in input order. Re-importing them with no edits reproduces the same
// date, amount, category and description.
func ExportRows(expenses []model.Expense) []RawRow {
	header := strings.Split(ExportHeader, ",")
	rows := make([]RawRow, 0, len(expenses))
	for _, e := range expenses {
		rec := MarshalExpense(e)
		row := make(RawRow, exportNumFields)
		for i, name := range header {
			row[name] = model.String(rec[i])
		}
		rows = append(rows, row)
	}
	return rows
}
