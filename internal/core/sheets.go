package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/layout"
	"github.com/bethropolis/tabula/internal/types"
)

// SwitchSheet activates the sheet at index, saving the current sheet's
// widths and position and restoring the target's.
func (e *Editor) SwitchSheet(index int) error {
	e.layout.SaveSheet(e.workbook.ActiveSheetName(), layout.SheetPosition{
		Selected: e.Cursor,
		View:     e.Viewport,
	})

	if err := e.workbook.SwitchSheet(index); err != nil {
		return err
	}

	e.restoreActiveSheetLayout()
	e.finder.Invalidate()

	name := e.workbook.ActiveSheetName()
	e.dispatch(event.TypeSheetSwitched, event.SheetSwitchedData{Index: index, Name: name})
	e.Notify(fmt.Sprintf("Switched to sheet: %s", name))
	return nil
}

// restoreActiveSheetLayout loads the active sheet's saved widths and
// position, clamping the position to the sheet's bounds.
func (e *Editor) restoreActiveSheetLayout() {
	sheet := e.ActiveSheet()
	pos, ok := e.layout.RestoreSheet(sheet.Name, sheet.MaxCols)
	if !ok {
		e.Cursor = types.Origin
		e.Viewport = types.Viewport{Row: 1, Col: 1}
		return
	}
	e.Cursor = types.CellPosition{
		Row: min(pos.Selected.Row, max(sheet.MaxRows, 1)),
		Col: min(pos.Selected.Col, max(sheet.MaxCols, 1)),
	}
	e.Viewport = pos.View
	e.ScrollToCursor()
}

// NextSheet activates the following sheet.
func (e *Editor) NextSheet() {
	current := e.workbook.ActiveSheetIndex()
	if current >= e.workbook.SheetCount()-1 {
		e.Notify("Already at the last sheet")
		return
	}
	if err := e.SwitchSheet(current + 1); err != nil {
		e.Notify(fmt.Sprintf("Failed to switch sheet: %v", err))
	}
}

// PrevSheet activates the preceding sheet.
func (e *Editor) PrevSheet() {
	current := e.workbook.ActiveSheetIndex()
	if current == 0 {
		e.Notify("Already at the first sheet")
		return
	}
	if err := e.SwitchSheet(current - 1); err != nil {
		e.Notify(fmt.Sprintf("Failed to switch sheet: %v", err))
	}
}

// SwitchToSheet activates a sheet by 1-based number or by name, ignoring case.
func (e *Editor) SwitchToSheet(nameOrIndex string) {
	nameOrIndex = strings.TrimSpace(nameOrIndex)

	if n, err := strconv.Atoi(nameOrIndex); err == nil && n >= 1 && n <= e.workbook.SheetCount() {
		if err := e.SwitchSheet(n - 1); err != nil {
			e.Notify(fmt.Sprintf("Failed to switch to sheet %d: %v", n, err))
		}
		return
	}

	for i, name := range e.workbook.SheetNames() {
		if strings.EqualFold(name, nameOrIndex) {
			if err := e.SwitchSheet(i); err != nil {
				e.Notify(fmt.Sprintf("Failed to switch to sheet '%s': %v", nameOrIndex, err))
			}
			return
		}
	}

	e.Notify(fmt.Sprintf("Sheet '%s' not found", nameOrIndex))
}
