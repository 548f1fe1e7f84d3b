package core

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/bethropolis/tabula/internal/utils"
)

// SetViewSize updates the cached grid area, in terminal cells, excluding the
// column header line and status bar.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = max(width, 0)
	e.viewHeight = max(height, 0)

	if e.ScrollOff*2 >= e.viewHeight && e.viewHeight > 0 {
		e.ScrollOff = (e.viewHeight - 1) / 2
	} else if e.viewHeight <= 0 {
		e.ScrollOff = 0
	}
	e.ScrollToCursor()
}

// GetCursor returns the selected cell.
func (e *Editor) GetCursor() types.CellPosition {
	return e.Cursor
}

// SetCursor moves the selection to pos (rows and columns start at 1).
func (e *Editor) SetCursor(pos types.CellPosition) {
	e.Cursor = types.CellPosition{Row: max(pos.Row, 1), Col: max(pos.Col, 1)}
	e.ScrollToCursor()
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.Cursor})
}

// MoveCursor moves the selection by a delta. The cursor may move past the
// logical bounds; it never moves above row 1 or left of column 1.
func (e *Editor) MoveCursor(deltaRow, deltaCol int) {
	e.SetCursor(types.CellPosition{Row: e.Cursor.Row + deltaRow, Col: e.Cursor.Col + deltaCol})
}

// JumpToFirstRow selects row 1 of the current column.
func (e *Editor) JumpToFirstRow() {
	e.SetCursor(types.CellPosition{Row: 1, Col: e.Cursor.Col})
	e.Notify("Jumped to first row")
}

// JumpToLastRow selects the last non-empty row of the current column.
func (e *Editor) JumpToLastRow() {
	e.SetCursor(types.CellPosition{Row: e.ActiveSheet().MaxRows, Col: e.Cursor.Col})
	e.Notify("Jumped to last row")
}

// JumpToFirstColumn selects column A of the current row.
func (e *Editor) JumpToFirstColumn() {
	e.SetCursor(types.CellPosition{Row: e.Cursor.Row, Col: 1})
	e.Notify("Jumped to first column")
}

// JumpToLastColumn selects the last non-empty column of the current row.
func (e *Editor) JumpToLastColumn() {
	e.SetCursor(types.CellPosition{Row: e.Cursor.Row, Col: e.ActiveSheet().MaxCols})
	e.Notify("Jumped to last column")
}

// JumpToCell selects pos if it lies inside the logical bounds.
func (e *Editor) JumpToCell(pos types.CellPosition) bool {
	sheet := e.ActiveSheet()
	ref := utils.CellReference(pos)
	if pos.Row < 1 || pos.Col < 1 || pos.Row > sheet.MaxRows || pos.Col > sheet.MaxCols {
		e.Notify(fmt.Sprintf("Cell reference out of range: %s", ref))
		return false
	}
	e.SetCursor(pos)
	e.Notify(fmt.Sprintf("Jumped to cell %s", ref))
	return true
}

// clampCursor pulls the cursor back inside [1,max(MaxRows,1)] x [1,max(MaxCols,1)].
func (e *Editor) clampCursor() {
	sheet := e.ActiveSheet()
	if e.Cursor.Row > sheet.MaxRows {
		e.Cursor.Row = max(sheet.MaxRows, 1)
	}
	if e.Cursor.Col > sheet.MaxCols {
		e.Cursor.Col = max(sheet.MaxCols, 1)
	}
	e.Cursor.Row = max(e.Cursor.Row, 1)
	e.Cursor.Col = max(e.Cursor.Col, 1)
}

// --- Viewport ---

// VisibleRows returns the number of grid rows that fit in the view.
func (e *Editor) VisibleRows() int {
	return max(e.viewHeight, 1)
}

// RowHeaderWidth returns the width of the row-number gutter, including its
// trailing separator.
func (e *Editor) RowHeaderWidth() int {
	last := e.Viewport.Row + e.VisibleRows() - 1
	return max(3, len(fmt.Sprint(last))) + 1
}

// VisibleCols returns how many columns fit starting at the viewport's first
// column. At least one column is always considered visible.
func (e *Editor) VisibleCols() int {
	return e.visibleColsFrom(e.Viewport.Col)
}

func (e *Editor) visibleColsFrom(start int) int {
	if e.viewWidth <= 0 {
		return 1
	}
	avail := e.viewWidth - e.RowHeaderWidth()
	count := 0
	for col := start; avail > 0; col++ {
		avail -= e.layout.Width(col)
		if avail < 0 {
			break
		}
		count++
	}
	return max(count, 1)
}

// ScrollToCursor adjusts the viewport so the cursor is visible, keeping
// ScrollOff rows of context above and below where the view allows.
func (e *Editor) ScrollToCursor() {
	rows := e.VisibleRows()
	off := e.ScrollOff
	if off*2 >= rows {
		off = (rows - 1) / 2
	}

	if e.Cursor.Row-off < e.Viewport.Row {
		e.Viewport.Row = e.Cursor.Row - off
	} else if e.Cursor.Row+off >= e.Viewport.Row+rows {
		e.Viewport.Row = e.Cursor.Row + off - rows + 1
	}
	e.Viewport.Row = max(e.Viewport.Row, 1)

	e.ensureColumnVisible(e.Cursor.Col)
}

// ensureColumnVisible scrolls horizontally so col is on screen. A column
// sitting on the right edge gets one column of margin when more columns follow.
func (e *Editor) ensureColumnVisible(col int) {
	if col < e.Viewport.Col {
		e.Viewport.Col = max(col, 1)
		return
	}
	for e.Viewport.Col < col && col > e.Viewport.Col+e.visibleColsFrom(e.Viewport.Col)-1 {
		e.Viewport.Col++
	}

	visible := e.visibleColsFrom(e.Viewport.Col)
	last := e.Viewport.Col + visible - 1
	if col < e.ActiveSheet().MaxCols && col == last && visible > 1 {
		e.Viewport.Col++
	}
}
