package core

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/types"
)

// Direction is a movement direction on the grid.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "down"
	}
}

func (d Direction) delta() (int, int) {
	switch d {
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	case DirUp:
		return -1, 0
	default:
		return 1, 0
	}
}

// JumpToFirstNonEmptyColumn selects the first non-empty cell of the current row.
func (e *Editor) JumpToFirstNonEmptyColumn() {
	sheet := e.ActiveSheet()
	col := 1
	for c := 1; c <= sheet.MaxCols; c++ {
		if !sheet.Cell(e.Cursor.Row, c).IsEmpty() {
			col = c
			break
		}
	}
	e.SetCursor(types.CellPosition{Row: e.Cursor.Row, Col: col})
	e.Notify("Jumped to first non-empty column")
}

// JumpToNonEmpty moves along dir the way Ctrl+arrow does in a spreadsheet:
// inside a run of values it goes to the end of the run, otherwise to the next
// value, stopping at the logical edge when there is none.
func (e *Editor) JumpToNonEmpty(dir Direction) {
	pos, ok := e.nonEmptyTarget(dir)
	if !ok {
		return
	}
	e.SetCursor(pos)
	if e.ActiveSheet().Cell(pos.Row, pos.Col).IsEmpty() {
		e.Notify(fmt.Sprintf("Jumped to edge (%s)", dir))
		return
	}
	e.Notify(fmt.Sprintf("Jumped to non-empty cell (%s)", dir))
}

func (e *Editor) nonEmptyTarget(dir Direction) (types.CellPosition, bool) {
	sheet := e.ActiveSheet()
	dr, dc := dir.delta()
	maxRow, maxCol := max(sheet.MaxRows, 1), max(sheet.MaxCols, 1)

	inside := func(p types.CellPosition) bool {
		return p.Row >= 1 && p.Col >= 1 && p.Row <= maxRow && p.Col <= maxCol
	}
	filled := func(p types.CellPosition) bool {
		return !sheet.Cell(p.Row, p.Col).IsEmpty()
	}

	cur := e.Cursor
	next := types.CellPosition{Row: cur.Row + dr, Col: cur.Col + dc}
	if !inside(next) {
		return cur, false
	}

	if filled(cur) && filled(next) {
		for {
			after := types.CellPosition{Row: next.Row + dr, Col: next.Col + dc}
			if !inside(after) || !filled(after) {
				return next, true
			}
			next = after
		}
	}

	for {
		if filled(next) {
			return next, true
		}
		after := types.CellPosition{Row: next.Row + dr, Col: next.Col + dc}
		if !inside(after) {
			return next, true
		}
		next = after
	}
}
