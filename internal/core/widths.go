package core

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/layout"
	"github.com/bethropolis/tabula/internal/utils"
)

// ColumnWidth returns the display width of col on the active sheet.
func (e *Editor) ColumnWidth(col int) int {
	return e.layout.Width(col)
}

// FitColumn sizes col to its content.
func (e *Editor) FitColumn(col int) {
	if col < 1 {
		return
	}
	e.layout.SetWidth(col, max(e.fitWidth(col), e.layout.MinWidth))
	e.ensureColumnVisible(col)
	e.Notify(fmt.Sprintf("Column %s width adjusted", utils.IndexToColName(col)))
}

// FitAllColumns sizes every column within the logical bounds to its content.
func (e *Editor) FitAllColumns() {
	for col := 1; col <= e.ActiveSheet().MaxCols; col++ {
		e.layout.SetWidth(col, max(e.fitWidth(col), e.layout.MinWidth))
	}
	e.ensureColumnVisible(e.Cursor.Col)
	e.Notify("All column widths adjusted")
}

// MinimizeColumn shrinks col to the minimum width.
func (e *Editor) MinimizeColumn(col int) {
	if col < 1 {
		return
	}
	e.layout.SetWidth(col, e.layout.MinWidth)
	e.Notify(fmt.Sprintf("Column %s set to minimum width", utils.IndexToColName(col)))
}

// MinimizeAllColumns shrinks every column within the logical bounds.
func (e *Editor) MinimizeAllColumns() {
	for col := 1; col <= e.ActiveSheet().MaxCols; col++ {
		e.layout.SetWidth(col, e.layout.MinWidth)
	}
	e.Notify("All columns set to minimum width")
}

// SetColumnWidth sets col's width, clamped to the configured bounds.
func (e *Editor) SetColumnWidth(col, width int) {
	if col < 1 {
		return
	}
	clamped := e.layout.ClampWidth(width)
	e.layout.SetWidth(col, clamped)
	e.ensureColumnVisible(col)
	e.Notify(fmt.Sprintf("Column %s width set to %d", utils.IndexToColName(col), clamped))
}

func (e *Editor) fitWidth(col int) int {
	sheet := e.ActiveSheet()
	values := make([]string, 0, sheet.MaxRows)
	for row := 1; row <= sheet.MaxRows; row++ {
		values = append(values, sheet.Cell(row, col).Value)
	}
	return layout.FitWidth(col, values)
}
