package core

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/core/actions"
	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/bethropolis/tabula/internal/utils"
	"github.com/bethropolis/tabula/internal/workbook"
)

// Undo reverts the most recent action. It reports whether an action was
// applied; an empty history or a failed apply leaves the grid untouched.
func (e *Editor) Undo() bool {
	a, ok := e.history.PopUndo()
	if !ok {
		e.Notify("No operations to undo")
		return false
	}
	logger.DebugTagf("history", "Editor: Undoing %s", actions.Describe(a))

	if !e.apply(a, true) {
		logger.Warnf("Editor: Dropped %s after failed undo", actions.Describe(a))
		return false
	}
	e.history.PushRedo(a)
	e.repair()
	e.workbook.SetModified(!e.history.AllUndone())
	return true
}

// Redo reapplies the most recently undone action.
func (e *Editor) Redo() bool {
	a, ok := e.history.PopRedo()
	if !ok {
		e.Notify("No operations to redo")
		return false
	}
	logger.DebugTagf("history", "Editor: Redoing %s", actions.Describe(a))

	if !e.apply(a, false) {
		logger.Warnf("Editor: Dropped %s after failed redo", actions.Describe(a))
		return false
	}
	e.history.PushUndo(a)
	e.repair()
	e.workbook.SetModified(true)
	return true
}

// repair restores the derived state every undo or redo may have disturbed.
func (e *Editor) repair() {
	e.workbook.RecalculateMaxRows()
	e.workbook.RecalculateMaxCols()
	e.layout.Ensure(e.ActiveSheet().MaxCols)
	e.clampCursor()
	e.ScrollToCursor()
	e.finder.Invalidate()

	e.gridModified()
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.Cursor})
}

// apply runs the inverse (undo) or the original (redo) of a. It reports
// false, after notifying, when the action could not be applied.
func (e *Editor) apply(a actions.Action, undo bool) bool {
	verb := "Redid"
	if undo {
		verb = "Undid"
	}

	switch act := a.(type) {
	case *actions.CellAction:
		return e.applyCell(act, undo, verb)
	case *actions.RowAction:
		return e.applyRow(act, undo, verb)
	case *actions.MultiRowAction:
		return e.applyMultiRow(act, undo, verb)
	case *actions.ColumnAction:
		return e.applyColumn(act, undo, verb)
	case *actions.MultiColumnAction:
		return e.applyMultiColumn(act, undo, verb)
	case *actions.SheetAction:
		if undo {
			return e.restoreSheet(act)
		}
		return e.redeleteSheet(act)
	default:
		logger.Errorf("Editor: Unknown action type %T", a)
		return false
	}
}

// switchToTarget activates the action's sheet if it is not already active.
// A stale index cannot be resolved; the caller drops the action.
func (e *Editor) switchToTarget(t actions.Target) (switched, ok bool) {
	if e.workbook.ActiveSheetIndex() == t.SheetIndex {
		return false, true
	}
	if err := e.SwitchSheet(t.SheetIndex); err != nil {
		e.Notify(fmt.Sprintf("Cannot switch to sheet %s: %v", t.SheetName, err))
		return false, false
	}
	return true, true
}

// failed reports a primitive failure during apply. Nothing further is
// applied and the action is dropped.
func (e *Editor) failed(undo bool, what string, err error) bool {
	op := "redo"
	if undo {
		op = "undo"
	}
	logger.Warnf("Editor: Cannot %s %s: %v", op, what, err)
	e.Notify(fmt.Sprintf("Cannot %s %s: %v", op, what, err))
	return false
}

func (e *Editor) applyCell(act *actions.CellAction, undo bool, verb string) bool {
	switched, ok := e.switchToTarget(act.Target)
	if !ok {
		return false
	}

	var err error
	if undo {
		err = e.workbook.PutCell(act.Row, act.Col, act.OldCell)
	} else {
		err = e.workbook.SetCellValue(act.Row, act.Col, act.NewCell.Value)
	}
	if err != nil {
		return e.failed(undo, fmt.Sprintf("%s operation", act.Kind), err)
	}

	e.SetCursor(types.CellPosition{Row: act.Row, Col: act.Col})

	ref := utils.CellReference(e.Cursor)
	if switched {
		e.Notify(fmt.Sprintf("%s %s operation on cell %s in sheet %s", verb, act.Kind, ref, act.SheetName))
	} else {
		e.Notify(fmt.Sprintf("%s %s operation on cell %s", verb, act.Kind, ref))
	}
	return true
}

func (e *Editor) applyRow(act *actions.RowAction, undo bool, verb string) bool {
	if _, ok := e.switchToTarget(act.Target); !ok {
		return false
	}

	var err error
	if undo {
		err = e.workbook.InsertRows(act.Row, [][]workbook.Cell{act.RowData})
	} else {
		err = e.workbook.DeleteRow(act.Row)
	}
	if err != nil {
		return e.failed(undo, fmt.Sprintf("row %d deletion", act.Row), err)
	}

	e.Notify(fmt.Sprintf("%s row %d deletion", verb, act.Row))
	return true
}

func (e *Editor) applyMultiRow(act *actions.MultiRowAction, undo bool, verb string) bool {
	if _, ok := e.switchToTarget(act.Target); !ok {
		return false
	}

	var err error
	if undo {
		err = e.workbook.InsertRows(act.StartRow, act.RowsData)
	} else {
		err = e.workbook.DeleteRows(act.StartRow, act.EndRow)
	}
	if err != nil {
		return e.failed(undo, fmt.Sprintf("rows %d to %d deletion", act.StartRow, act.EndRow), err)
	}

	e.Notify(fmt.Sprintf("%s rows %d to %d deletion", verb, act.StartRow, act.EndRow))
	return true
}

func (e *Editor) applyColumn(act *actions.ColumnAction, undo bool, verb string) bool {
	if _, ok := e.switchToTarget(act.Target); !ok {
		return false
	}
	name := utils.IndexToColName(act.Col)

	if undo {
		if err := e.workbook.InsertColumn(act.Col, act.ColumnData); err != nil {
			return e.failed(undo, fmt.Sprintf("column %s deletion", name), err)
		}
		e.layout.InsertWidth(act.Col, act.ColumnWidth)
		e.ensureColumnVisible(act.Col)
	} else {
		if err := e.workbook.DeleteColumn(act.Col); err != nil {
			return e.failed(undo, fmt.Sprintf("column %s deletion", name), err)
		}
		e.layout.RemoveWidths(act.Col, act.Col)
	}

	e.Notify(fmt.Sprintf("%s column %s deletion", verb, name))
	return true
}

func (e *Editor) applyMultiColumn(act *actions.MultiColumnAction, undo bool, verb string) bool {
	if _, ok := e.switchToTarget(act.Target); !ok {
		return false
	}
	first, last := utils.IndexToColName(act.StartCol), utils.IndexToColName(act.EndCol)

	if undo {
		if err := e.workbook.InsertColumns(act.StartCol, act.ColumnsData); err != nil {
			return e.failed(undo, fmt.Sprintf("columns %s to %s deletion", first, last), err)
		}
		for i := len(act.ColumnsData) - 1; i >= 0; i-- {
			width := e.layout.DefaultWidth
			if i < len(act.ColumnWidths) {
				width = act.ColumnWidths[i]
			}
			e.layout.InsertWidth(act.StartCol, width)
		}
		e.ensureColumnVisible(act.StartCol)
	} else {
		if err := e.workbook.DeleteColumns(act.StartCol, act.EndCol); err != nil {
			return e.failed(undo, fmt.Sprintf("columns %s to %s deletion", first, last), err)
		}
		e.layout.RemoveWidths(act.StartCol, act.EndCol)
	}

	e.Notify(fmt.Sprintf("%s columns %s to %s deletion", verb, first, last))
	return true
}

// restoreSheet puts a deleted sheet back at its old index, with its widths,
// and makes it active.
func (e *Editor) restoreSheet(act *actions.SheetAction) bool {
	if act.SheetData == nil {
		e.Notify(fmt.Sprintf("Failed to restore sheet %s: no snapshot", act.SheetName))
		return false
	}
	if err := e.workbook.InsertSheetAt(act.SheetData.Clone(), act.SheetIndex); err != nil {
		logger.Warnf("Editor: Restoring sheet %q failed: %v", act.SheetName, err)
		e.Notify(fmt.Sprintf("Failed to restore sheet %s: %v", act.SheetName, err))
		return false
	}
	e.layout.StoreSheet(act.SheetName, act.ColumnWidths)

	if err := e.SwitchSheet(act.SheetIndex); err != nil {
		e.Notify(fmt.Sprintf("Restored sheet %s but couldn't switch to it: %v", act.SheetName, err))
		return true
	}
	e.Notify(fmt.Sprintf("Undid sheet %s deletion", act.SheetName))
	return true
}

// redeleteSheet deletes the sheet again.
func (e *Editor) redeleteSheet(act *actions.SheetAction) bool {
	if e.workbook.ActiveSheetIndex() != act.SheetIndex {
		if err := e.SwitchSheet(act.SheetIndex); err != nil {
			e.Notify(fmt.Sprintf("Cannot switch to sheet %s to delete it: %v", act.SheetName, err))
			return false
		}
	}
	if err := e.workbook.DeleteCurrentSheet(); err != nil {
		logger.Warnf("Editor: Deleting sheet %q again failed: %v", act.SheetName, err)
		e.Notify(fmt.Sprintf("Failed to delete sheet: %v", err))
		return false
	}

	e.afterSheetDeleted(act.SheetName)
	e.Notify(fmt.Sprintf("Redid deletion of sheet %s", act.SheetName))
	return true
}
