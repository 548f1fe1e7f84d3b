package utils

import (
	"testing"

	"github.com/bethropolis/tabula/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestIndexToColName(t *testing.T) {
	cases := map[int]string{0: "A", 1: "A", 2: "B", 26: "Z", 27: "AA", 52: "AZ", 53: "BA", 703: "AAA"}
	for in, want := range cases {
		assert.Equal(t, want, IndexToColName(in), "index %d", in)
	}
}

func TestColNameToIndex(t *testing.T) {
	for _, idx := range []int{1, 2, 26, 27, 52, 53, 703} {
		got, ok := ColNameToIndex(IndexToColName(idx))
		assert.True(t, ok)
		assert.Equal(t, idx, got)
	}

	got, ok := ColNameToIndex("ab")
	assert.True(t, ok)
	assert.Equal(t, 28, got)

	_, ok = ColNameToIndex("")
	assert.False(t, ok)
	_, ok = ColNameToIndex("A1")
	assert.False(t, ok)
}

func TestCellReference(t *testing.T) {
	assert.Equal(t, "B3", CellReference(types.CellPosition{Row: 3, Col: 2}))
	assert.Equal(t, "AA10", CellReference(types.CellPosition{Row: 10, Col: 27}))
}

func TestParseCellReference(t *testing.T) {
	pos, ok := ParseCellReference("b3")
	assert.True(t, ok)
	assert.Equal(t, types.CellPosition{Row: 3, Col: 2}, pos)

	pos, ok = ParseCellReference(" AA10 ")
	assert.True(t, ok)
	assert.Equal(t, types.CellPosition{Row: 10, Col: 27}, pos)

	for _, bad := range []string{"", "B", "12", "B0", "3B", "B-1", "w"} {
		_, ok := ParseCellReference(bad)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestParseColumnOrIndex(t *testing.T) {
	n, ok := ParseColumnOrIndex("3")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = ParseColumnOrIndex("C")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = ParseColumnOrIndex("0")
	assert.False(t, ok)
}
