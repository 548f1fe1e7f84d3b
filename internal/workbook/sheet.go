package workbook

// Sheet is a named grid of cells indexed [row][col], both 1-based.
// MaxRows and MaxCols are logical bounds (last non-empty row/column) and are
// independent of the physical size of Data, which may carry slack.
type Sheet struct {
	Name    string
	Data    [][]Cell
	MaxRows int
	MaxCols int
}

// NewSheet allocates an empty sheet with room for rows x cols cells plus the
// reserved index-0 row and column.
func NewSheet(name string, rows, cols int) *Sheet {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	data := make([][]Cell, rows+1)
	for i := range data {
		data[i] = emptyRow(cols + 1)
	}
	return &Sheet{Name: name, Data: data}
}

// Cell returns the cell at (row, col), or an empty cell outside the physical grid.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.Data) || col < 0 || col >= len(s.Data[row]) {
		return EmptyCell()
	}
	return s.Data[row][col]
}

// Row returns a copy of the physical row, or nil when it does not exist.
func (s *Sheet) Row(row int) []Cell {
	if row < 0 || row >= len(s.Data) {
		return nil
	}
	return cloneRow(s.Data[row])
}

// Column returns a copy of column col across every physical row (including
// the reserved row 0), padding short rows with empty cells.
func (s *Sheet) Column(col int) []Cell {
	column := make([]Cell, len(s.Data))
	for i := range s.Data {
		column[i] = s.Cell(i, col)
	}
	return column
}

// Clone deep-copies the sheet so later edits to either copy stay independent.
func (s *Sheet) Clone() *Sheet {
	data := make([][]Cell, len(s.Data))
	for i, row := range s.Data {
		data[i] = cloneRow(row)
	}
	return &Sheet{Name: s.Name, Data: data, MaxRows: s.MaxRows, MaxCols: s.MaxCols}
}

// RecalculateMaxRows rescans for the last row holding a non-empty cell.
func (s *Sheet) RecalculateMaxRows() {
	s.MaxRows = 0
	for r := len(s.Data) - 1; r >= 1; r-- {
		if rowHasContent(s.Data[r]) {
			s.MaxRows = r
			return
		}
	}
}

// RecalculateMaxCols rescans for the last column holding a non-empty cell.
func (s *Sheet) RecalculateMaxCols() {
	s.MaxCols = 0
	for r := 1; r < len(s.Data); r++ {
		row := s.Data[r]
		for c := len(row) - 1; c > s.MaxCols; c-- {
			if !row[c].IsEmpty() {
				s.MaxCols = c
				break
			}
		}
	}
}

// ensureSize grows the physical grid so that (row, col) is addressable.
func (s *Sheet) ensureSize(row, col int) {
	width := col + 1
	if len(s.Data) > 0 && len(s.Data[0]) > width {
		width = len(s.Data[0])
	}
	for len(s.Data) <= row {
		s.Data = append(s.Data, emptyRow(width))
	}
	for i := range s.Data {
		s.Data[i] = padRow(s.Data[i], col+1)
	}
}

func rowHasContent(row []Cell) bool {
	for c := 1; c < len(row); c++ {
		if !row[c].IsEmpty() {
			return true
		}
	}
	return false
}

func emptyRow(n int) []Cell {
	row := make([]Cell, n)
	for i := range row {
		row[i] = EmptyCell()
	}
	return row
}

// padRow extends row with empty cells until it has at least n entries.
func padRow(row []Cell, n int) []Cell {
	for len(row) < n {
		row = append(row, EmptyCell())
	}
	return row
}

func cloneRow(row []Cell) []Cell {
	if row == nil {
		return nil
	}
	out := make([]Cell, len(row))
	copy(out, row)
	return out
}
