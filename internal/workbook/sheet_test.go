package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSheetShape(t *testing.T) {
	s := NewSheet("S", 2, 3)
	assert.Len(t, s.Data, 3)
	for _, row := range s.Data {
		assert.Len(t, row, 4)
	}
	assert.Zero(t, s.MaxRows)
	assert.Zero(t, s.MaxCols)
}

func TestCellOutsideGridIsEmpty(t *testing.T) {
	s := NewSheet("S", 1, 1)
	assert.Equal(t, EmptyCell(), s.Cell(5, 5))
	assert.Equal(t, EmptyCell(), s.Cell(-1, 0))
	assert.Nil(t, s.Row(9))
}

func TestRowAndColumnAreCopies(t *testing.T) {
	s := NewSheet("S", 2, 2)
	s.Data[1][1] = CellFromInput("a")
	s.Data[2] = s.Data[2][:1]

	row := s.Row(1)
	row[1] = CellFromInput("changed")
	assert.Equal(t, "a", s.Data[1][1].Value)

	col := s.Column(2)
	assert.Len(t, col, 3, "one entry per physical row, including row 0")
	assert.Equal(t, EmptyCell(), col[2], "short rows pad with empty cells")
}

func TestCloneIsDeep(t *testing.T) {
	s := NewSheet("S", 1, 1)
	s.Data[1][1] = CellFromInput("x")
	s.MaxRows, s.MaxCols = 1, 1

	c := s.Clone()
	require.Equal(t, s, c)
	c.Data[1][1] = CellFromInput("y")
	assert.Equal(t, "x", s.Data[1][1].Value)
}

func TestRecalculateBounds(t *testing.T) {
	s := NewSheet("S", 5, 5)
	s.Data[2][4] = CellFromInput("a")
	s.Data[3][1] = CellFromInput("b")
	s.MaxRows, s.MaxCols = 5, 5

	s.RecalculateMaxRows()
	s.RecalculateMaxCols()
	assert.Equal(t, 3, s.MaxRows)
	assert.Equal(t, 4, s.MaxCols)

	s.Data[0][5] = CellFromInput("header slot")
	s.RecalculateMaxCols()
	assert.Equal(t, 4, s.MaxCols, "row 0 is never scanned")
}
