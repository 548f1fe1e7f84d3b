package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridOf(t *testing.T, rows ...[]string) *Workbook {
	t.Helper()
	w := New("")
	for r, row := range rows {
		for c, v := range row {
			if v != "" {
				require.NoError(t, w.SetCellValue(r+1, c+1, v))
			}
		}
	}
	w.SetModified(false)
	return w
}

func values(s *Sheet) [][]string {
	out := make([][]string, 0, s.MaxRows)
	for r := 1; r <= s.MaxRows; r++ {
		row := make([]string, 0, s.MaxCols)
		for c := 1; c <= s.MaxCols; c++ {
			row = append(row, s.Cell(r, c).Value)
		}
		out = append(out, row)
	}
	return out
}

func TestNewDefaultsToOneSheet(t *testing.T) {
	w := New("book.csv")
	assert.Equal(t, []string{"Sheet1"}, w.SheetNames())
	assert.Equal(t, "book.csv", w.FilePath())
	assert.False(t, w.IsModified())
}

func TestSetCellValue(t *testing.T) {
	w := New("")
	require.NoError(t, w.SetCellValue(3, 2, "x"))
	s := w.ActiveSheet()
	assert.Equal(t, 3, s.MaxRows)
	assert.Equal(t, 2, s.MaxCols)
	assert.True(t, w.IsModified())

	w.SetModified(false)
	require.NoError(t, w.SetCellValue(3, 2, "x"))
	assert.False(t, w.IsModified(), "writing the same value is not a change")

	require.NoError(t, w.SetCellValue(5, 5, ""))
	assert.Equal(t, 3, s.MaxRows, "an empty write never grows the bounds")

	assert.ErrorIs(t, w.SetCellValue(0, 1, "x"), ErrInvalidCell)
}

func TestPutCellLeavesFlagAndBounds(t *testing.T) {
	w := New("")
	require.NoError(t, w.PutCell(2, 2, CellFromInput("x")))
	assert.False(t, w.IsModified())
	assert.Zero(t, w.ActiveSheet().MaxRows)
	assert.Equal(t, "x", w.ActiveSheet().Cell(2, 2).Value)
}

func TestDeleteRows(t *testing.T) {
	w := gridOf(t, []string{"1", "a"}, []string{"2"}, []string{"3"}, []string{"4"})

	require.NoError(t, w.DeleteRows(2, 3))
	assert.Equal(t, [][]string{{"1", "a"}, {"4", ""}}, values(w.ActiveSheet()))
	assert.True(t, w.IsModified())

	require.NoError(t, w.DeleteRows(2, 50))
	assert.Equal(t, 1, w.ActiveSheet().MaxRows)
}

func TestDeleteRowOutsideBounds(t *testing.T) {
	w := gridOf(t, []string{"1"})
	require.NoError(t, w.DeleteRow(0))
	require.NoError(t, w.DeleteRow(2))
	assert.False(t, w.IsModified())
	assert.Equal(t, 1, w.ActiveSheet().MaxRows)
}

func TestDeleteLastRowShrinksColumns(t *testing.T) {
	w := gridOf(t, []string{"1"}, []string{"", "", "wide"})
	require.NoError(t, w.DeleteRow(2))
	assert.Equal(t, 1, w.ActiveSheet().MaxCols)
}

func TestInsertRowsRestoresOrder(t *testing.T) {
	w := gridOf(t, []string{"1"}, []string{"2"}, []string{"3"}, []string{"4"})
	s := w.ActiveSheet()
	captured := [][]Cell{s.Row(2), s.Row(3)}

	require.NoError(t, w.DeleteRows(2, 3))
	require.NoError(t, w.InsertRows(2, captured))
	assert.Equal(t, [][]string{{"1"}, {"2"}, {"3"}, {"4"}}, values(s))
	assert.Equal(t, 4, s.MaxRows)

	assert.ErrorIs(t, w.InsertRows(0, captured), ErrInsertIndex)
}

func TestInsertRowsPadsShortGrid(t *testing.T) {
	w := New("")
	require.NoError(t, w.InsertRows(3, [][]Cell{{EmptyCell(), CellFromInput("x")}}))
	s := w.ActiveSheet()
	assert.Equal(t, "x", s.Cell(3, 1).Value)
	s.RecalculateMaxRows()
	assert.Equal(t, 3, s.MaxRows)
}

func TestDeleteAndInsertColumns(t *testing.T) {
	w := gridOf(t, []string{"A", "B", "C", "D"}, []string{"a", "b", "c", "d"})
	s := w.ActiveSheet()
	captured := [][]Cell{s.Column(2), s.Column(3)}

	require.NoError(t, w.DeleteColumns(2, 3))
	assert.Equal(t, [][]string{{"A", "D"}, {"a", "d"}}, values(s))

	require.NoError(t, w.InsertColumns(2, captured))
	assert.Equal(t, [][]string{{"A", "B", "C", "D"}, {"a", "b", "c", "d"}}, values(s))
	assert.Equal(t, 4, s.MaxCols)
}

func TestDeleteColumnClampsEnd(t *testing.T) {
	w := gridOf(t, []string{"A", "B", "C"})
	require.NoError(t, w.DeleteColumns(2, 9))
	assert.Equal(t, [][]string{{"A"}}, values(w.ActiveSheet()))

	require.NoError(t, w.DeleteColumn(5))
	assert.Equal(t, 1, w.ActiveSheet().MaxCols)
}

func TestInsertColumnRecomputesRows(t *testing.T) {
	w := gridOf(t, []string{"A", ""}, []string{"", "tail"})
	s := w.ActiveSheet()
	col := s.Column(2)

	require.NoError(t, w.DeleteColumn(2))
	assert.Equal(t, 1, s.MaxRows)

	require.NoError(t, w.InsertColumn(2, col))
	assert.Equal(t, 2, s.MaxRows)
	assert.Equal(t, 2, s.MaxCols)
	assert.Equal(t, "tail", s.Cell(2, 2).Value)
}

func TestDeleteCurrentSheet(t *testing.T) {
	w := New("", NewSheet("S0", 0, 0), NewSheet("S1", 0, 0), NewSheet("S2", 0, 0))
	require.NoError(t, w.SwitchSheet(2))

	require.NoError(t, w.DeleteCurrentSheet())
	assert.Equal(t, 1, w.ActiveSheetIndex(), "index clamps to the new last sheet")
	assert.True(t, w.IsModified())

	require.NoError(t, w.DeleteCurrentSheet())
	assert.ErrorIs(t, w.DeleteCurrentSheet(), ErrLastSheet)
	assert.Equal(t, []string{"S0"}, w.SheetNames())
}

func TestInsertSheetAtKeepsActiveSheet(t *testing.T) {
	w := New("", NewSheet("S0", 0, 0), NewSheet("S2", 0, 0))
	require.NoError(t, w.SwitchSheet(1))

	require.NoError(t, w.InsertSheetAt(NewSheet("S1", 0, 0), 1))
	assert.Equal(t, []string{"S0", "S1", "S2"}, w.SheetNames())
	assert.Equal(t, "S2", w.ActiveSheetName())

	require.NoError(t, w.InsertSheetAt(NewSheet("S3", 0, 0), 3))
	assert.Equal(t, "S2", w.ActiveSheetName())

	assert.ErrorIs(t, w.InsertSheetAt(NewSheet("X", 0, 0), 9), ErrInsertIndex)
}

func TestSwitchSheetOutOfRange(t *testing.T) {
	w := New("")
	assert.ErrorIs(t, w.SwitchSheet(1), ErrSheetIndex)
	_, err := w.SheetAt(-1)
	assert.ErrorIs(t, err, ErrSheetIndex)
}
