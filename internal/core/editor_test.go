package core

import (
	"testing"

	"github.com/bethropolis/tabula/internal/core/actions"
	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/layout"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/bethropolis/tabula/internal/workbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSheet fills a sheet from rows of values, row 1 first.
func buildSheet(t *testing.T, name string, rows [][]string) *workbook.Sheet {
	t.Helper()
	wb := workbook.New("", workbook.NewSheet(name, 0, 0))
	for r, row := range rows {
		for c, v := range row {
			if v != "" {
				require.NoError(t, wb.SetCellValue(r+1, c+1, v))
			}
		}
	}
	return wb.ActiveSheet()
}

func newTestEditor(t *testing.T, sheets ...*workbook.Sheet) *Editor {
	t.Helper()
	wb := workbook.New("test.csv", sheets...)
	lay := layout.New(15, 5, 50)
	return NewEditor(wb, lay, Options{})
}

func cellAt(e *Editor, row, col int) string {
	return e.ActiveSheet().Cell(row, col).Value
}

func TestCellEditRoundTrip(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"old"}}))
	before := e.ActiveSheet().Cell(1, 1)

	require.NoError(t, e.EditCell("new"))
	after := e.ActiveSheet().Cell(1, 1)
	assert.Equal(t, "new", after.Value)
	assert.True(t, e.Workbook().IsModified())

	require.True(t, e.Undo())
	assert.Equal(t, before, e.ActiveSheet().Cell(1, 1))
	assert.False(t, e.Workbook().IsModified(), "undoing everything returns to the clean state")
	assert.Equal(t, "Undid edit operation on cell A1", e.LastNotification())

	require.True(t, e.Redo())
	assert.Equal(t, after, e.ActiveSheet().Cell(1, 1))
	assert.True(t, e.Workbook().IsModified())
	assert.Equal(t, "Redid edit operation on cell A1", e.LastNotification())
}

func TestEditGrowsGridAndUndoShrinksBounds(t *testing.T) {
	e := newTestEditor(t)
	e.SetCursor(types.CellPosition{Row: 3, Col: 2})

	require.NoError(t, e.EditCell("x"))
	assert.Equal(t, 3, e.ActiveSheet().MaxRows)
	assert.Equal(t, 2, e.ActiveSheet().MaxCols)

	require.True(t, e.Undo())
	assert.Equal(t, 0, e.ActiveSheet().MaxRows)
	assert.Equal(t, 0, e.ActiveSheet().MaxCols)
	assert.Equal(t, types.Origin, e.Cursor)

	require.True(t, e.Redo())
	assert.Equal(t, "x", cellAt(e, 3, 2))
	assert.Equal(t, types.CellPosition{Row: 3, Col: 2}, e.Cursor)
}

func TestRowDeleteShapeRestoration(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{
		{"r1", "x"},
		{"r2", "y"},
		{"r3", ""},
		{"r4", "z"},
	}))
	before := e.ActiveSheet().Clone()

	e.SetCursor(types.CellPosition{Row: 2, Col: 1})
	require.NoError(t, e.DeleteCurrentRow())
	assert.Equal(t, 3, e.ActiveSheet().MaxRows)
	assert.Equal(t, "r3", cellAt(e, 2, 1))
	assert.Equal(t, "Deleted row 2", e.LastNotification())

	require.True(t, e.Undo())
	assert.Equal(t, before.Data, e.ActiveSheet().Data)
	assert.Equal(t, before.MaxRows, e.ActiveSheet().MaxRows)
	assert.Equal(t, before.MaxCols, e.ActiveSheet().MaxCols)
	assert.Equal(t, "Undid row 2 deletion", e.LastNotification())

	require.True(t, e.Redo())
	assert.Equal(t, "r3", cellAt(e, 2, 1))
	assert.Equal(t, "Redid row 2 deletion", e.LastNotification())
}

func TestMultiRowBatchFidelity(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{
		{"1"}, {"2"}, {"a"}, {"b"}, {"c"}, {"6"},
	}))

	require.NoError(t, e.DeleteRows(3, 5))
	assert.Equal(t, 3, e.ActiveSheet().MaxRows)
	assert.Equal(t, "6", cellAt(e, 3, 1))
	assert.Equal(t, "Deleted rows 3 to 5", e.LastNotification())

	require.True(t, e.Undo())
	assert.Equal(t, "a", cellAt(e, 3, 1))
	assert.Equal(t, "b", cellAt(e, 4, 1))
	assert.Equal(t, "c", cellAt(e, 5, 1))
	assert.Equal(t, "6", cellAt(e, 6, 1))
	assert.Equal(t, 6, e.ActiveSheet().MaxRows)
	assert.Equal(t, "Undid rows 3 to 5 deletion", e.LastNotification())
}

func TestDeleteRowsClampsAndDelegates(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"1"}, {"2"}, {"3"}, {"4"}}))

	require.NoError(t, e.DeleteRows(3, 99))
	assert.Equal(t, "Deleted rows 3 to 4", e.LastNotification())
	assert.Equal(t, 2, e.ActiveSheet().MaxRows)

	require.NoError(t, e.DeleteRows(2, 2))
	assert.Equal(t, "Deleted row 2", e.LastNotification())

	require.True(t, e.Undo())
	assert.Equal(t, "Undid row 2 deletion", e.LastNotification())
	require.True(t, e.Undo())
	assert.Equal(t, "Undid rows 3 to 4 deletion", e.LastNotification())
	assert.Equal(t, 4, e.ActiveSheet().MaxRows)
}

func TestDeleteOutsideBoundsIsNoop(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"1", "2"}}))

	require.NoError(t, e.DeleteRow(5))
	require.NoError(t, e.DeleteRows(0, 3))
	require.NoError(t, e.DeleteColumn(9))
	require.NoError(t, e.DeleteColumns(3, 1))

	assert.False(t, e.CanUndo())
	assert.False(t, e.Workbook().IsModified())
	assert.Equal(t, 1, e.ActiveSheet().MaxRows)
	assert.Equal(t, 2, e.ActiveSheet().MaxCols)
}

func TestColumnWidthFidelity(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{
		{"A", "B", "C"},
		{"a", "b", "c"},
	}))
	e.SetColumnWidth(2, 20)

	require.NoError(t, e.DeleteColumn(2))
	assert.Equal(t, "C", cellAt(e, 1, 2))
	assert.Equal(t, 2, e.ActiveSheet().MaxCols)
	assert.Equal(t, "Deleted column B", e.LastNotification())

	e.SetColumnWidth(1, 30)
	e.SetColumnWidth(2, 7)

	require.True(t, e.Undo())
	assert.Equal(t, "B", cellAt(e, 1, 2))
	assert.Equal(t, "b", cellAt(e, 2, 2))
	assert.Equal(t, "C", cellAt(e, 1, 3))
	assert.Equal(t, 3, e.ActiveSheet().MaxCols)
	assert.Equal(t, 20, e.ColumnWidth(2))
	assert.Equal(t, 30, e.ColumnWidth(1))
	assert.Equal(t, 7, e.ColumnWidth(3))
	assert.Equal(t, "Undid column B deletion", e.LastNotification())

	require.True(t, e.Redo())
	assert.Equal(t, "C", cellAt(e, 1, 2))
	assert.Equal(t, 7, e.ColumnWidth(2))
	assert.Equal(t, "Redid column B deletion", e.LastNotification())
}

func TestMultiColumnRoundTrip(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{
		{"A", "B", "C", "D"},
		{"a", "b", "c", "d"},
	}))
	e.SetColumnWidth(2, 20)
	e.SetColumnWidth(3, 25)
	before := e.ActiveSheet().Clone()

	require.NoError(t, e.DeleteColumns(2, 3))
	assert.Equal(t, "D", cellAt(e, 1, 2))
	assert.Equal(t, "Deleted columns B to C", e.LastNotification())
	assert.Equal(t, []int{15, 15, 15}, e.Layout().Widths())

	require.True(t, e.Undo())
	assert.Equal(t, before.Data, e.ActiveSheet().Data)
	assert.Equal(t, 4, e.ActiveSheet().MaxCols)
	assert.Equal(t, []int{15, 15, 20, 25, 15}, e.Layout().Widths())
	assert.Equal(t, "Undid columns B to C deletion", e.LastNotification())

	require.True(t, e.Redo())
	assert.Equal(t, "D", cellAt(e, 1, 2))
	assert.Equal(t, "Redid columns B to C deletion", e.LastNotification())
}

func TestDeleteColumnShrinksRows(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{
		{"a", ""},
		{"", "tail"},
	}))
	require.Equal(t, 2, e.ActiveSheet().MaxRows)

	require.NoError(t, e.DeleteColumn(2))
	assert.Equal(t, 1, e.ActiveSheet().MaxRows)

	require.True(t, e.Undo())
	assert.Equal(t, 2, e.ActiveSheet().MaxRows)
	assert.Equal(t, "tail", cellAt(e, 2, 2))
}

func TestLinearHistory(t *testing.T) {
	e := newTestEditor(t)

	require.NoError(t, e.EditCell("A"))
	require.NoError(t, e.EditCell("B"))
	require.True(t, e.Undo())
	assert.Equal(t, "A", cellAt(e, 1, 1))

	require.NoError(t, e.EditCell("C"))
	assert.False(t, e.Redo())
	assert.Equal(t, "No operations to redo", e.LastNotification())
	assert.Equal(t, "C", cellAt(e, 1, 1))
}

func TestSheetDeletionSymmetry(t *testing.T) {
	s0 := buildSheet(t, "S0", [][]string{{"zero"}})
	s1 := buildSheet(t, "S1", [][]string{{"one", "uno"}, {"1"}})
	s2 := buildSheet(t, "S2", [][]string{{"two"}})
	e := newTestEditor(t, s0, s1, s2)

	require.NoError(t, e.SwitchSheet(1))
	e.SetColumnWidth(1, 25)
	before := e.ActiveSheet().Clone()

	e.DeleteCurrentSheet()
	assert.Equal(t, []string{"S0", "S2"}, e.Workbook().SheetNames())
	assert.Equal(t, "Deleted sheet: S1", e.LastNotification())
	_, ok := e.Layout().SavedWidths("S1")
	assert.False(t, ok)

	require.True(t, e.Undo())
	assert.Equal(t, []string{"S0", "S1", "S2"}, e.Workbook().SheetNames())
	assert.Equal(t, 1, e.Workbook().ActiveSheetIndex())
	assert.Equal(t, before, e.ActiveSheet())
	assert.Equal(t, 25, e.ColumnWidth(1))
	assert.Equal(t, types.Origin, e.Cursor)
	assert.Equal(t, "Undid sheet S1 deletion", e.LastNotification())

	require.True(t, e.Redo())
	assert.Equal(t, []string{"S0", "S2"}, e.Workbook().SheetNames())
	assert.Equal(t, "Redid deletion of sheet S1", e.LastNotification())
}

func TestRestoredSheetIsIndependentOfHistory(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "S0", [][]string{{"zero"}}), buildSheet(t, "S1", [][]string{{"one"}}))
	require.NoError(t, e.SwitchSheet(1))
	e.DeleteCurrentSheet()

	require.True(t, e.Undo())
	e.ActiveSheet().Data[1][1] = workbook.CellFromInput("mutated")
	require.True(t, e.Redo())
	require.True(t, e.Undo())

	assert.Equal(t, "one", cellAt(e, 1, 1))
}

func TestDeleteLastSheetFails(t *testing.T) {
	e := newTestEditor(t)
	e.DeleteCurrentSheet()
	assert.Equal(t, "Failed to delete sheet: cannot delete the last sheet", e.LastNotification())
	assert.False(t, e.CanUndo())
	assert.Equal(t, 1, e.Workbook().SheetCount())
}

func TestIdleSafety(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"a", "b"}}))
	e.SetCursor(types.CellPosition{Row: 1, Col: 2})
	data := e.ActiveSheet().Clone()
	widths := e.Layout().Widths()

	assert.False(t, e.Undo())
	assert.Equal(t, "No operations to undo", e.LastNotification())
	assert.False(t, e.Redo())
	assert.Equal(t, "No operations to redo", e.LastNotification())

	assert.Equal(t, data, e.ActiveSheet())
	assert.Equal(t, widths, e.Layout().Widths())
	assert.Equal(t, types.CellPosition{Row: 1, Col: 2}, e.Cursor)
	assert.False(t, e.Workbook().IsModified())
}

func TestStaleSheetActionIsDropped(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"keep"}}))
	e.Push(actions.NewCell(actions.Target{SheetIndex: 4, SheetName: "Gone"}, 1, 1,
		workbook.EmptyCell(), workbook.CellFromInput("x"), actions.KindEdit))

	assert.False(t, e.Undo())
	assert.Contains(t, e.LastNotification(), "Cannot switch to sheet Gone")
	assert.False(t, e.CanUndo())
	assert.False(t, e.CanRedo(), "a dropped action does not reach the redo stack")
	assert.Equal(t, "keep", cellAt(e, 1, 1))
}

func TestUndoSwitchesToActionSheet(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "S0", nil), buildSheet(t, "S1", nil))
	require.NoError(t, e.EditCell("x"))
	require.NoError(t, e.SwitchSheet(1))

	require.True(t, e.Undo())
	assert.Equal(t, 0, e.Workbook().ActiveSheetIndex())
	assert.Equal(t, "", cellAt(e, 1, 1))
	assert.Equal(t, "Undid edit operation on cell A1 in sheet S0", e.LastNotification())
}

func TestCutPasteUndo(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"v"}}))

	require.NoError(t, e.CutCell())
	assert.Equal(t, "", cellAt(e, 1, 1))
	assert.Equal(t, "Cell content cut", e.LastNotification())

	e.SetCursor(types.CellPosition{Row: 1, Col: 2})
	require.NoError(t, e.PasteCell())
	assert.Equal(t, "v", cellAt(e, 1, 2))
	assert.Equal(t, "Content pasted", e.LastNotification())

	require.True(t, e.Undo())
	assert.Equal(t, "", cellAt(e, 1, 2))
	assert.Equal(t, "Undid paste operation on cell B1", e.LastNotification())

	require.True(t, e.Undo())
	assert.Equal(t, "v", cellAt(e, 1, 1))
	assert.Equal(t, "Undid cut operation on cell A1", e.LastNotification())
}

func TestCopyAndEmptyPaste(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"c"}}))

	require.NoError(t, e.PasteCell())
	assert.Equal(t, "Clipboard is empty", e.LastNotification())
	assert.False(t, e.CanUndo())

	e.CopyCell()
	assert.Equal(t, "Cell content copied", e.LastNotification())
	assert.False(t, e.CanUndo(), "copy records nothing")

	e.MoveCursor(1, 0)
	require.NoError(t, e.PasteCell())
	assert.Equal(t, "c", cellAt(e, 2, 1))
}

func TestCursorClampedAfterDelete(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"1", "a"}, {"2"}, {"3"}}))
	e.SetCursor(types.CellPosition{Row: 3, Col: 2})

	require.NoError(t, e.DeleteRow(3))
	assert.Equal(t, types.CellPosition{Row: 2, Col: 2}, e.Cursor)

	require.NoError(t, e.DeleteColumn(2))
	assert.Equal(t, types.CellPosition{Row: 2, Col: 1}, e.Cursor)
}

func TestSearchInvalidatedByStructuralChange(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"apple"}, {"pear"}, {"Apple pie"}}))

	e.Search("apple", true)
	assert.Len(t, e.Finder().Results(), 2)
	assert.Equal(t, types.CellPosition{Row: 3, Col: 1}, e.Cursor)

	require.NoError(t, e.DeleteRow(2))
	assert.Empty(t, e.Finder().Results())

	require.True(t, e.Undo())
	assert.Empty(t, e.Finder().Results())

	e.NextMatch()
	assert.Len(t, e.Finder().Results(), 2, "n re-runs the last query")
}

func TestSearchWrapNotification(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"x"}, {""}, {"x"}}))
	e.SetCursor(types.CellPosition{Row: 3, Col: 1})

	e.Search("x", true)
	assert.Equal(t, types.Origin, e.Cursor)
	assert.Contains(t, e.Notifications(), "Search wrapped to top")

	e.PrevMatch()
	assert.Equal(t, types.CellPosition{Row: 3, Col: 1}, e.Cursor)
	assert.Equal(t, "Search wrapped to bottom", e.LastNotification())
}

func TestMarkSavedClearsHistory(t *testing.T) {
	e := newTestEditor(t)
	require.NoError(t, e.EditCell("x"))
	e.MarkSaved()

	assert.False(t, e.Workbook().IsModified())
	assert.True(t, e.AllUndone())
	assert.False(t, e.Undo())
}

func TestModifiedAfterPartialUndo(t *testing.T) {
	e := newTestEditor(t)
	require.NoError(t, e.EditCell("a"))
	require.NoError(t, e.EditCell("b"))

	require.True(t, e.Undo())
	assert.True(t, e.Workbook().IsModified())
	require.True(t, e.Undo())
	assert.False(t, e.Workbook().IsModified())
}

func TestNotificationsBounded(t *testing.T) {
	wb := workbook.New("")
	e := NewEditor(wb, nil, Options{MaxNotifications: 3})
	mgr := event.NewManager()
	var seen []string
	mgr.Subscribe(event.TypeNotification, func(ev event.Event) bool {
		seen = append(seen, ev.Data.(event.NotificationData).Message)
		return false
	})
	e.SetEventManager(mgr)

	for _, msg := range []string{"one", "two", "three", "four"} {
		e.Notify(msg)
	}
	assert.Equal(t, []string{"two", "three", "four"}, e.Notifications())
	assert.Equal(t, []string{"one", "two", "three", "four"}, seen)
}

func TestSwitchSheetRemembersPosition(t *testing.T) {
	e := newTestEditor(t,
		buildSheet(t, "S0", [][]string{{"a", "b"}, {"c", "d"}}),
		buildSheet(t, "S1", [][]string{{"x"}}))

	e.SetCursor(types.CellPosition{Row: 2, Col: 2})
	e.SetColumnWidth(2, 33)
	require.NoError(t, e.SwitchSheet(1))
	assert.Equal(t, types.Origin, e.Cursor)
	assert.Equal(t, 15, e.ColumnWidth(2))

	require.NoError(t, e.SwitchSheet(0))
	assert.Equal(t, types.CellPosition{Row: 2, Col: 2}, e.Cursor)
	assert.Equal(t, 33, e.ColumnWidth(2))
	assert.Equal(t, "Switched to sheet: S0", e.LastNotification())
}

func TestSwitchToSheetByNameAndNumber(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Data", nil), buildSheet(t, "Notes", nil))

	e.SwitchToSheet("notes")
	assert.Equal(t, 1, e.Workbook().ActiveSheetIndex())
	e.SwitchToSheet("1")
	assert.Equal(t, 0, e.Workbook().ActiveSheetIndex())
	e.SwitchToSheet("missing")
	assert.Equal(t, "Sheet 'missing' not found", e.LastNotification())
}

func TestUndoLimit(t *testing.T) {
	e := NewEditor(workbook.New(""), nil, Options{UndoLimit: 2})
	require.NoError(t, e.EditCell("1"))
	require.NoError(t, e.EditCell("2"))
	require.NoError(t, e.EditCell("3"))

	require.True(t, e.Undo())
	require.True(t, e.Undo())
	assert.False(t, e.Undo())
	assert.Equal(t, "1", cellAt(e, 1, 1))
	assert.True(t, e.Workbook().IsModified())
}

func TestFitAndColumnWidthCommands(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"a somewhat long value", "b"}}))

	e.FitColumn(1)
	assert.Equal(t, layout.FitWidth(1, []string{"a somewhat long value"}), e.ColumnWidth(1))

	e.SetColumnWidth(2, 500)
	assert.Equal(t, 50, e.ColumnWidth(2))

	e.MinimizeAllColumns()
	assert.Equal(t, 5, e.ColumnWidth(1))
	assert.Equal(t, 5, e.ColumnWidth(2))
}

func TestJumpToNonEmpty(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{
		{"a", "b", "c", "", "", "f", ""},
		{"", "", "", "", "", "", "g"},
	}))

	e.JumpToNonEmpty(DirRight)
	assert.Equal(t, types.CellPosition{Row: 1, Col: 3}, e.Cursor, "end of the run")

	e.JumpToNonEmpty(DirRight)
	assert.Equal(t, types.CellPosition{Row: 1, Col: 6}, e.Cursor, "next value after a gap")

	e.JumpToNonEmpty(DirRight)
	assert.Equal(t, types.CellPosition{Row: 1, Col: 7}, e.Cursor, "edge when nothing follows")
	assert.Equal(t, "Jumped to edge (right)", e.LastNotification())

	e.JumpToNonEmpty(DirRight)
	assert.Equal(t, types.CellPosition{Row: 1, Col: 7}, e.Cursor)

	e.JumpToNonEmpty(DirDown)
	assert.Equal(t, types.CellPosition{Row: 2, Col: 7}, e.Cursor)
	assert.Equal(t, "Jumped to non-empty cell (down)", e.LastNotification())

	e.JumpToNonEmpty(DirLeft)
	assert.Equal(t, types.CellPosition{Row: 2, Col: 1}, e.Cursor)
}

func TestJumpToCell(t *testing.T) {
	e := newTestEditor(t, buildSheet(t, "Sheet1", [][]string{{"a", "b"}, {"c", "d"}}))

	assert.True(t, e.JumpToCell(types.CellPosition{Row: 2, Col: 2}))
	assert.Equal(t, "Jumped to cell B2", e.LastNotification())

	assert.False(t, e.JumpToCell(types.CellPosition{Row: 3, Col: 2}))
	assert.Equal(t, "Cell reference out of range: B3", e.LastNotification())
	assert.Equal(t, types.CellPosition{Row: 2, Col: 2}, e.Cursor)

	e.JumpToFirstNonEmptyColumn()
	assert.Equal(t, 1, e.Cursor.Col)
}
