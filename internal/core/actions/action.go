// Package actions defines the reversible mutations recorded in history.
//
// Action is a closed set: the unexported marker method keeps variants inside
// this package, so a type switch over the six kinds is exhaustive.
package actions

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/types"
	"github.com/bethropolis/tabula/internal/utils"
	"github.com/bethropolis/tabula/internal/workbook"
)

// ActionType identifies the variant of an Action.
type ActionType int

const (
	TypeCell ActionType = iota
	TypeRow
	TypeMultiRow
	TypeColumn
	TypeMultiColumn
	TypeSheet
)

func (t ActionType) String() string {
	switch t {
	case TypeCell:
		return "cell"
	case TypeRow:
		return "row"
	case TypeMultiRow:
		return "multi-row"
	case TypeColumn:
		return "column"
	case TypeMultiColumn:
		return "multi-column"
	case TypeSheet:
		return "sheet"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// CellKind says which user operation produced a Cell action.
type CellKind int

const (
	KindEdit CellKind = iota
	KindCut
	KindPaste
)

func (k CellKind) String() string {
	switch k {
	case KindCut:
		return "cut"
	case KindPaste:
		return "paste"
	default:
		return "edit"
	}
}

// Target is the sheet an action was recorded against.
type Target struct {
	SheetIndex int
	SheetName  string
}

// Sheet returns the action's target sheet.
func (t Target) Sheet() Target { return t }

// Action is an immutable record of one reversible mutation. Records are
// shared by pointer between the undo and redo stacks and never modified after
// construction.
type Action interface {
	Type() ActionType
	Sheet() Target
	action()
}

// CellAction is a single-cell overwrite. Both directions are direct writes.
type CellAction struct {
	Target
	Row, Col int
	OldCell  workbook.Cell
	NewCell  workbook.Cell
	Kind     CellKind
}

// RowAction is the deletion of one row.
type RowAction struct {
	Target
	Row     int
	RowData []workbook.Cell
}

// MultiRowAction is the deletion of rows StartRow..EndRow, captured top to bottom.
type MultiRowAction struct {
	Target
	StartRow, EndRow int
	RowsData         [][]workbook.Cell
}

// ColumnAction is the deletion of one column. ColumnData[i] is row i's cell.
type ColumnAction struct {
	Target
	Col         int
	ColumnData  []workbook.Cell
	ColumnWidth int
}

// MultiColumnAction is the deletion of columns StartCol..EndCol, captured
// left to right along with their widths.
type MultiColumnAction struct {
	Target
	StartCol, EndCol int
	ColumnsData      [][]workbook.Cell
	ColumnWidths     []int
}

// SheetAction is the deletion of a whole sheet.
type SheetAction struct {
	Target
	SheetData    *workbook.Sheet
	ColumnWidths []int
}

func (*CellAction) Type() ActionType        { return TypeCell }
func (*RowAction) Type() ActionType         { return TypeRow }
func (*MultiRowAction) Type() ActionType    { return TypeMultiRow }
func (*ColumnAction) Type() ActionType      { return TypeColumn }
func (*MultiColumnAction) Type() ActionType { return TypeMultiColumn }
func (*SheetAction) Type() ActionType       { return TypeSheet }

func (*CellAction) action()        {}
func (*RowAction) action()         {}
func (*MultiRowAction) action()    {}
func (*ColumnAction) action()      {}
func (*MultiColumnAction) action() {}
func (*SheetAction) action()       {}

// --- Constructors ---
// Constructors copy every slice and snapshot they are given so later edits to
// the live grid cannot reach into history.

// NewCell records a cell overwrite.
func NewCell(target Target, row, col int, oldCell, newCell workbook.Cell, kind CellKind) *CellAction {
	return &CellAction{Target: target, Row: row, Col: col, OldCell: oldCell, NewCell: newCell, Kind: kind}
}

// NewRow records a single row deletion.
func NewRow(target Target, row int, data []workbook.Cell) *RowAction {
	return &RowAction{Target: target, Row: row, RowData: cloneCells(data)}
}

// NewMultiRow records the deletion of rows start..end.
func NewMultiRow(target Target, start, end int, rows [][]workbook.Cell) *MultiRowAction {
	return &MultiRowAction{Target: target, StartRow: start, EndRow: end, RowsData: cloneGrid(rows)}
}

// NewColumn records a single column deletion.
func NewColumn(target Target, col int, data []workbook.Cell, width int) *ColumnAction {
	return &ColumnAction{Target: target, Col: col, ColumnData: cloneCells(data), ColumnWidth: width}
}

// NewMultiColumn records the deletion of columns start..end.
func NewMultiColumn(target Target, start, end int, columns [][]workbook.Cell, widths []int) *MultiColumnAction {
	return &MultiColumnAction{
		Target:       target,
		StartCol:     start,
		EndCol:       end,
		ColumnsData:  cloneGrid(columns),
		ColumnWidths: append([]int(nil), widths...),
	}
}

// NewSheet records a sheet deletion. The sheet is deep-copied.
func NewSheet(target Target, sheet *workbook.Sheet, widths []int) *SheetAction {
	var snapshot *workbook.Sheet
	if sheet != nil {
		snapshot = sheet.Clone()
	}
	return &SheetAction{Target: target, SheetData: snapshot, ColumnWidths: append([]int(nil), widths...)}
}

// Describe renders a short label for logging.
func Describe(a Action) string {
	switch act := a.(type) {
	case *CellAction:
		return fmt.Sprintf("%s %s on %q", act.Kind, utils.CellReference(types.CellPosition{Row: act.Row, Col: act.Col}), act.SheetName)
	case *RowAction:
		return fmt.Sprintf("delete row %d on %q", act.Row, act.SheetName)
	case *MultiRowAction:
		return fmt.Sprintf("delete rows %d-%d on %q", act.StartRow, act.EndRow, act.SheetName)
	case *ColumnAction:
		return fmt.Sprintf("delete column %s on %q", utils.IndexToColName(act.Col), act.SheetName)
	case *MultiColumnAction:
		return fmt.Sprintf("delete columns %s-%s on %q",
			utils.IndexToColName(act.StartCol), utils.IndexToColName(act.EndCol), act.SheetName)
	case *SheetAction:
		return fmt.Sprintf("delete sheet %q", act.SheetName)
	default:
		return "unknown action"
	}
}

func cloneCells(cells []workbook.Cell) []workbook.Cell {
	if cells == nil {
		return nil
	}
	out := make([]workbook.Cell, len(cells))
	copy(out, cells)
	return out
}

func cloneGrid(grid [][]workbook.Cell) [][]workbook.Cell {
	out := make([][]workbook.Cell, len(grid))
	for i, row := range grid {
		out[i] = cloneCells(row)
	}
	return out
}
