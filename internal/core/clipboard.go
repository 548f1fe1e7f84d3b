package core

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/core/actions"
	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/workbook"
)

// CurrentCellValue returns the value under the cursor.
func (e *Editor) CurrentCellValue() string {
	return e.ActiveSheet().Cell(e.Cursor.Row, e.Cursor.Col).Value
}

// EditCell replaces the value under the cursor and records an Edit action.
func (e *Editor) EditCell(value string) error {
	return e.writeCell(value, actions.KindEdit)
}

// CopyCell puts the value under the cursor on the clipboard.
func (e *Editor) CopyCell() {
	e.clipboard.Set(e.CurrentCellValue())
	e.Notify("Cell content copied")
}

// CutCell moves the value under the cursor to the clipboard and clears it.
func (e *Editor) CutCell() error {
	e.clipboard.Set(e.CurrentCellValue())
	if err := e.writeCell("", actions.KindCut); err != nil {
		return err
	}
	e.Notify("Cell content cut")
	return nil
}

// PasteCell writes the clipboard value into the cell under the cursor.
func (e *Editor) PasteCell() error {
	text, ok := e.clipboard.Get()
	if !ok {
		e.Notify("Clipboard is empty")
		return nil
	}
	if err := e.writeCell(text, actions.KindPaste); err != nil {
		return err
	}
	e.Notify("Content pasted")
	return nil
}

// writeCell captures the old cell, records the action, then writes.
func (e *Editor) writeCell(value string, kind actions.CellKind) error {
	row, col := e.Cursor.Row, e.Cursor.Col
	if row < 1 || col < 1 {
		return fmt.Errorf("%s cell (%d,%d): %w", kind, row, col, workbook.ErrInvalidCell)
	}

	oldCell := e.ActiveSheet().Cell(row, col)
	newCell := workbook.CellFromInput(value)
	e.history.Push(actions.NewCell(e.target(), row, col, oldCell, newCell, kind))

	if err := e.workbook.SetCellValue(row, col, value); err != nil {
		logger.Warnf("Editor: %s failed at %v: %v", kind, e.Cursor, err)
		return err
	}
	e.layout.Ensure(e.ActiveSheet().MaxCols)
	e.gridModified()
	return nil
}
