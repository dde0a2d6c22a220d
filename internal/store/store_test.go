package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastos-dev/gastos/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "gastos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func expense(owner, date, amount, category, description string) model.Expense {
	return model.Expense{
		OwnerID:     owner,
		Date:        date,
		Amount:      decimal.RequireFromString(amount),
		Description: description,
		Category:    category,
		Month:       model.MonthOf(date),
		CreatedAt:   time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
	}
}

func TestBulkInsert(t *testing.T) {
	st := openTestStore(t)

	ids, err := st.BulkInsert([]model.Expense{
		expense("u1", "2024-03-15", "45.50", "Comida", "Supermercado Dia"),
		expense("u1", "2024-03-16", "12.00", "Entretenimiento", "Cine Yelmo"),
	})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])

	got, err := st.Get(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Supermercado Dia", got.Description)
	assert.Equal(t, "45.50", got.Amount.StringFixed(2))
	assert.Equal(t, "2024-03", got.Month)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestBulkInsert_StampsCreatedAt(t *testing.T) {
	st := openTestStore(t)

	e := expense("u1", "2024-03-15", "10.00", "Comida", "Cena")
	e.CreatedAt = time.Time{}
	ids, err := st.BulkInsert([]model.Expense{e})
	require.NoError(t, err)

	got, err := st.Get(ids[0])
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestListByOwner_OrderAndFilters(t *testing.T) {
	st := openTestStore(t)

	_, err := st.BulkInsert([]model.Expense{
		expense("u1", "2024-03-15", "45.50", "Comida", "Supermercado"),
		expense("u1", "2024-04-02", "30.00", "Transporte", "Gasolina"),
		expense("u1", "2024-03-20", "12.00", "Entretenimiento", "Cine"),
		expense("u2", "2024-03-21", "99.00", "Compras", "Zapatos"),
	})
	require.NoError(t, err)

	all, err := st.ListByOwner("u1", "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Date descending.
	assert.Equal(t, "2024-04-02", all[0].Date)
	assert.Equal(t, "2024-03-20", all[1].Date)
	assert.Equal(t, "2024-03-15", all[2].Date)

	march, err := st.ListByOwner("u1", "2024-03")
	require.NoError(t, err)
	require.Len(t, march, 2)

	other, err := st.ListByOwner("u3", "")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpdate_RecomputesMonth(t *testing.T) {
	st := openTestStore(t)

	id, err := st.Insert(expense("u1", "2024-03-15", "45.50", "Comida", "Supermercado"))
	require.NoError(t, err)

	e, err := st.Get(id)
	require.NoError(t, err)
	e.Date = "2024-04-01"
	e.Month = "stale"
	require.NoError(t, st.Update(e))

	got, err := st.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", got.Date)
	assert.Equal(t, "2024-04", got.Month)
}

func TestUpdate_Missing(t *testing.T) {
	st := openTestStore(t)

	e := expense("u1", "2024-03-15", "45.50", "Comida", "Supermercado")
	e.ID = "no-such-id"
	err := st.Update(e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDelete(t *testing.T) {
	st := openTestStore(t)

	id, err := st.Insert(expense("u1", "2024-03-15", "45.50", "Comida", "Supermercado"))
	require.NoError(t, err)

	require.NoError(t, st.Delete(id))
	_, err = st.Get(id)
	require.Error(t, err)

	// Deleting an already-gone ID is not an error.
	require.NoError(t, st.Delete(id))
}

func TestSummarize(t *testing.T) {
	st := openTestStore(t)

	_, err := st.BulkInsert([]model.Expense{
		expense("u1", "2024-03-15", "45.50", "Comida", "Supermercado"),
		expense("u1", "2024-03-16", "10.50", "Comida", "Cena"),
		expense("u1", "2024-03-17", "12.00", "Entretenimiento", "Cine"),
		expense("u1", "2024-04-01", "99.00", "Compras", "Zapatos"),
	})
	require.NoError(t, err)

	summary, err := st.Summarize("u1", "2024-03")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, "68.00", summary.Total.StringFixed(2))
	assert.Equal(t, "56.00", summary.Categories["Comida"].StringFixed(2))
	assert.Equal(t, "12.00", summary.Categories["Entretenimiento"].StringFixed(2))
}
