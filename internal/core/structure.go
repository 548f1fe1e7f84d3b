package core

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/core/actions"
	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/utils"
	"github.com/bethropolis/tabula/internal/workbook"
)

// --- Rows ---

// DeleteCurrentRow deletes the row under the cursor.
func (e *Editor) DeleteCurrentRow() error {
	return e.DeleteRow(e.Cursor.Row)
}

// DeleteRow deletes one row. Rows outside [1, MaxRows] are ignored.
func (e *Editor) DeleteRow(row int) error {
	sheet := e.ActiveSheet()
	if row < 1 || row > sheet.MaxRows {
		return nil
	}

	e.history.Push(actions.NewRow(e.target(), row, sheet.Row(row)))
	if err := e.workbook.DeleteRow(row); err != nil {
		return fmt.Errorf("delete row %d: %w", row, err)
	}

	e.afterStructuralDelete()
	e.Notify(fmt.Sprintf("Deleted row %d", row))
	return nil
}

// DeleteRows deletes rows start..end. end is clamped to MaxRows and a
// single-row range is recorded as a single row deletion.
func (e *Editor) DeleteRows(start, end int) error {
	if start == end {
		return e.DeleteRow(start)
	}
	sheet := e.ActiveSheet()
	if start < 1 || start > sheet.MaxRows || start > end {
		return nil
	}
	end = min(end, sheet.MaxRows)

	rows := make([][]workbook.Cell, 0, end-start+1)
	for row := start; row <= end; row++ {
		rows = append(rows, sheet.Row(row))
	}

	e.history.Push(actions.NewMultiRow(e.target(), start, end, rows))
	if err := e.workbook.DeleteRows(start, end); err != nil {
		return fmt.Errorf("delete rows %d-%d: %w", start, end, err)
	}

	e.afterStructuralDelete()
	e.Notify(fmt.Sprintf("Deleted rows %d to %d", start, end))
	return nil
}

// --- Columns ---

// DeleteCurrentColumn deletes the column under the cursor.
func (e *Editor) DeleteCurrentColumn() error {
	return e.DeleteColumn(e.Cursor.Col)
}

// DeleteColumn deletes one column and its width. Columns outside
// [1, MaxCols] are ignored.
func (e *Editor) DeleteColumn(col int) error {
	sheet := e.ActiveSheet()
	if col < 1 || col > sheet.MaxCols {
		return nil
	}

	e.history.Push(actions.NewColumn(e.target(), col, sheet.Column(col), e.layout.Width(col)))
	if err := e.workbook.DeleteColumn(col); err != nil {
		return fmt.Errorf("delete column %s: %w", utils.IndexToColName(col), err)
	}
	e.layout.RemoveWidths(col, col)

	e.afterStructuralDelete()
	e.Notify(fmt.Sprintf("Deleted column %s", utils.IndexToColName(col)))
	return nil
}

// DeleteColumns deletes columns start..end with their widths. end is clamped
// to MaxCols and a single-column range is recorded as a single column deletion.
func (e *Editor) DeleteColumns(start, end int) error {
	if start == end {
		return e.DeleteColumn(start)
	}
	sheet := e.ActiveSheet()
	if start < 1 || start > sheet.MaxCols || start > end {
		return nil
	}
	end = min(end, sheet.MaxCols)

	columns := make([][]workbook.Cell, 0, end-start+1)
	widths := make([]int, 0, end-start+1)
	for col := start; col <= end; col++ {
		columns = append(columns, sheet.Column(col))
		widths = append(widths, e.layout.Width(col))
	}

	e.history.Push(actions.NewMultiColumn(e.target(), start, end, columns, widths))
	if err := e.workbook.DeleteColumns(start, end); err != nil {
		return fmt.Errorf("delete columns %s-%s: %w",
			utils.IndexToColName(start), utils.IndexToColName(end), err)
	}
	e.layout.RemoveWidths(start, end)

	e.afterStructuralDelete()
	e.Notify(fmt.Sprintf("Deleted columns %s to %s", utils.IndexToColName(start), utils.IndexToColName(end)))
	return nil
}

// afterStructuralDelete repairs engine state once the grid has shrunk.
func (e *Editor) afterStructuralDelete() {
	e.layout.Ensure(e.ActiveSheet().MaxCols)
	e.clampCursor()
	e.ScrollToCursor()
	e.finder.Invalidate()
	e.gridModified()
}

// --- Sheets ---

// DeleteCurrentSheet removes the active sheet. The last sheet cannot be deleted.
func (e *Editor) DeleteCurrentSheet() {
	name := e.workbook.ActiveSheetName()
	if e.workbook.SheetCount() <= 1 {
		e.Notify(fmt.Sprintf("Failed to delete sheet: %v", workbook.ErrLastSheet))
		return
	}

	act := actions.NewSheet(e.target(), e.ActiveSheet(), e.layout.Widths())
	if err := e.workbook.DeleteCurrentSheet(); err != nil {
		logger.Warnf("Editor: Deleting sheet %q failed: %v", name, err)
		e.Notify(fmt.Sprintf("Failed to delete sheet: %v", err))
		return
	}
	e.history.Push(act)

	e.afterSheetDeleted(name)
	e.Notify(fmt.Sprintf("Deleted sheet: %s", name))
}

// afterSheetDeleted drops the deleted sheet's side-table entries and loads
// the new active sheet's widths and position.
func (e *Editor) afterSheetDeleted(name string) {
	e.layout.ForgetSheet(name)
	e.restoreActiveSheetLayout()
	e.finder.Invalidate()
	e.gridModified()
}
