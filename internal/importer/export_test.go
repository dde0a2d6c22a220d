package importer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastos-dev/gastos/internal/category"
	"github.com/gastos-dev/gastos/internal/model"
)

func sampleExpenses() []model.Expense {
	created := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	return []model.Expense{
		{
			OwnerID:     "u1",
			Date:        "2024-03-15",
			Amount:      decimal.RequireFromString("45.50"),
			Description: "Supermercado Dia",
			Category:    "Comida",
			Month:       "2024-03",
			CreatedAt:   created,
		},
		{
			OwnerID:     "u1",
			Date:        "2024-03-16",
			Amount:      decimal.RequireFromString("12.00"),
			Description: "Cine Yelmo",
			Category:    "Entretenimiento",
			Month:       "2024-03",
			CreatedAt:   created,
		},
	}
}

func TestWriteExpenses_HeaderAndOrder(t *testing.T) {
	var buf bytes.Buffer
	err := WriteExpenses(&buf, sampleExpenses())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	// Column names and order are the external file format; exact match.
	assert.Equal(t, "Fecha,Usuario,Importe,Categoría,Descripción,Mes,Creado", lines[0])
	assert.Equal(t, "2024-03-15,u1,45.50,Comida,Supermercado Dia,2024-03,2024-03-20T12:00:00Z", lines[1])
}

func TestMarshalExpense(t *testing.T) {
	rec := MarshalExpense(sampleExpenses()[0])
	require.Len(t, rec, exportNumFields)
	assert.Equal(t, "2024-03-15", rec[colFecha])
	assert.Equal(t, "u1", rec[colUsuario])
	assert.Equal(t, "45.50", rec[colImporte])
	assert.Equal(t, "Comida", rec[colCategoria])
	assert.Equal(t, "Supermercado Dia", rec[colDescripcion])
	assert.Equal(t, "2024-03", rec[colMes])
	assert.Equal(t, "2024-03-20T12:00:00Z", rec[colCreado])
}

func TestExportRows_RoundTrip(t *testing.T) {
	expenses := sampleExpenses()
	rows := ExportRows(expenses)
	require.Len(t, rows, len(expenses))

	report := ImportBatch(rows, "u1", category.NewRuleSet())
	require.True(t, report.Success())
	require.Len(t, report.Expenses, len(expenses))

	for i, got := range report.Expenses {
		want := expenses[i]
		assert.Equal(t, want.Date, got.Date)
		assert.True(t, want.Amount.Equal(got.Amount), "amount %s != %s", want.Amount, got.Amount)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.OwnerID, got.OwnerID)
		assert.Equal(t, want.Month, got.Month)
	}
}

func TestWriteExpenses_RoundTripThroughFile(t *testing.T) {
	expenses := sampleExpenses()

	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, expenses))

	report, err := ImportCSV(&buf, "u1", category.NewRuleSet())
	require.NoError(t, err)
	require.True(t, report.Success())
	require.Len(t, report.Expenses, len(expenses))

	assert.Equal(t, "45.50", report.Expenses[0].Amount.StringFixed(2))
	assert.Equal(t, "Cine Yelmo", report.Expenses[1].Description)
	assert.Equal(t, "Entretenimiento", report.Expenses[1].Category)
}

func TestWriteExpenses_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, nil))
	assert.Equal(t, "Fecha,Usuario,Importe,Categoría,Descripción,Mes,Creado\n", buf.String())
}
