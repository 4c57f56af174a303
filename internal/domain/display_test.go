package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayList(t *testing.T) {
	a := newExpense(t, 1, ExpenseFood, "2023-02-01")
	b := newExpense(t, 2, ExpenseFood, "2023-02-02")
	c := newExpense(t, 3, ExpenseFood, "2023-02-03")

	first := NewDisplayList([]Record{a, b, c})
	assert.Equal(t, 3, first.Len())
	assert.Equal(t, 1, a.DisplayID())
	assert.Equal(t, 3, c.DisplayID())

	got, ok := first.Lookup(2)
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = first.Lookup(0)
	assert.False(t, ok)
	_, ok = first.Lookup(4)
	assert.False(t, ok)
}

func TestDisplayList_OlderRenderStaysStable(t *testing.T) {
	a := newExpense(t, 1, ExpenseFood, "2023-02-01")
	b := newExpense(t, 2, ExpenseFood, "2023-02-02")

	first := NewDisplayList([]Record{a, b})
	second := NewDisplayList([]Record{b, a})

	got, ok := first.Lookup(1)
	require.True(t, ok)
	assert.Same(t, a, got, "first render must keep resolving its own rows")

	got, ok = second.Lookup(1)
	require.True(t, ok)
	assert.Same(t, b, got)
	assert.Equal(t, []Record{b, a}, second.Rows())
}
