// internal/types/position.go
package types

import "fmt"

// CellPosition addresses a cell in a sheet.
// Row and Col are 1-based; index 0 is the reserved header slot on both axes.
type CellPosition struct {
	Row int
	Col int
}

// String renders the position as "(row,col)" for logs.
func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Viewport is the top-left cell currently visible in the grid.
type Viewport struct {
	Row int // First visible row (1-based)
	Col int // First visible column (1-based)
}

// Origin is the top-left cell of every sheet.
var Origin = CellPosition{Row: 1, Col: 1}
