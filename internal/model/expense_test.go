package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDate_KeepsMonthInSync(t *testing.T) {
	e := Expense{}
	e.SetDate("2024-03-15")
	assert.Equal(t, "2024-03-15", e.Date)
	assert.Equal(t, "2024-03", e.Month)

	e.SetDate("2025-01-02")
	assert.Equal(t, "2025-01", e.Month)
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, "2024-03", MonthOf("2024-03-15"))
	assert.Equal(t, "2024", MonthOf("2024"))
}

func TestValue(t *testing.T) {
	assert.True(t, String("").Empty())
	assert.True(t, String("   ").Empty())
	assert.False(t, String("x").Empty())

	// A numeric zero is present; presence is not truthiness.
	assert.False(t, Number(0).Empty())

	assert.Equal(t, "x", String(" x ").Raw())
	assert.Equal(t, "45.5", Number(45.5).Raw())
	assert.Equal(t, "0", Number(0).Raw())
}
