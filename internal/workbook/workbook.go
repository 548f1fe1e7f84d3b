package workbook

import (
	"errors"
	"fmt"
)

var (
	// ErrLastSheet is returned when deleting the only remaining sheet.
	ErrLastSheet = errors.New("cannot delete the last sheet")
	// ErrSheetIndex is returned for a sheet index that does not resolve.
	ErrSheetIndex = errors.New("sheet index out of range")
	// ErrInvalidCell is returned for coordinates in the reserved row/column 0 or below.
	ErrInvalidCell = errors.New("cell coordinates out of range")
	// ErrInsertIndex is returned when a re-insertion position is past the end.
	ErrInsertIndex = errors.New("insert index out of range")
)

// Workbook is an ordered set of sheets with exactly one active sheet.
type Workbook struct {
	sheets   []*Sheet
	current  int
	filePath string
	modified bool
}

// New creates a workbook over the given sheets. With no sheets a single
// empty "Sheet1" is created so the minimum cardinality of one always holds.
func New(filePath string, sheets ...*Sheet) *Workbook {
	if len(sheets) == 0 {
		sheets = []*Sheet{NewSheet("Sheet1", 0, 0)}
	}
	return &Workbook{sheets: sheets, filePath: filePath}
}

// --- Accessors ---

// ActiveSheet returns the active sheet. The pointer is live: writes through it
// bypass the modified flag and bound bookkeeping.
func (w *Workbook) ActiveSheet() *Sheet {
	return w.sheets[w.current]
}

// ActiveSheetIndex returns the 0-based index of the active sheet.
func (w *Workbook) ActiveSheetIndex() int {
	return w.current
}

// ActiveSheetName returns the name of the active sheet.
func (w *Workbook) ActiveSheetName() string {
	return w.sheets[w.current].Name
}

// SheetCount returns the number of sheets.
func (w *Workbook) SheetCount() int {
	return len(w.sheets)
}

// SheetAt returns the sheet at index.
func (w *Workbook) SheetAt(index int) (*Sheet, error) {
	if index < 0 || index >= len(w.sheets) {
		return nil, fmt.Errorf("%w: %d", ErrSheetIndex, index)
	}
	return w.sheets[index], nil
}

// SheetNameAt returns the name of the sheet at index.
func (w *Workbook) SheetNameAt(index int) (string, error) {
	sheet, err := w.SheetAt(index)
	if err != nil {
		return "", err
	}
	return sheet.Name, nil
}

// SheetNames lists sheet names in order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.sheets))
	for i, s := range w.sheets {
		names[i] = s.Name
	}
	return names
}

// FilePath returns the path the workbook was loaded from.
func (w *Workbook) FilePath() string {
	return w.filePath
}

// SetFilePath changes where the workbook will be saved.
func (w *Workbook) SetFilePath(path string) {
	w.filePath = path
}

// IsModified reports whether there are unsaved changes.
func (w *Workbook) IsModified() bool {
	return w.modified
}

// SetModified sets the unsaved-changes flag.
func (w *Workbook) SetModified(modified bool) {
	w.modified = modified
}

// SwitchSheet makes the sheet at index active.
func (w *Workbook) SwitchSheet(index int) error {
	if index < 0 || index >= len(w.sheets) {
		return fmt.Errorf("%w: %d", ErrSheetIndex, index)
	}
	w.current = index
	return nil
}

// --- Cell writes ---

// SetCellValue writes a cell built from value at (row, col) on the active
// sheet, growing the grid as needed. Bounds only grow here; shrinking is left
// to the rescans.
func (w *Workbook) SetCellValue(row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCell, row, col)
	}
	sheet := w.ActiveSheet()
	sheet.ensureSize(row, col)

	if sheet.Data[row][col].Value != value {
		w.modified = true
	}
	sheet.Data[row][col] = CellFromInput(value)

	if value != "" {
		if row > sheet.MaxRows {
			sheet.MaxRows = row
		}
		if col > sheet.MaxCols {
			sheet.MaxCols = col
		}
	}
	return nil
}

// PutCell overwrites (row, col) on the active sheet with an exact cell value.
// It does not touch the modified flag or the bounds.
func (w *Workbook) PutCell(row, col int, cell Cell) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCell, row, col)
	}
	sheet := w.ActiveSheet()
	sheet.ensureSize(row, col)
	sheet.Data[row][col] = cell
	return nil
}

// --- Row primitives ---

// DeleteRow removes row from the active sheet. Rows outside [1, MaxRows] are
// a successful no-op.
func (w *Workbook) DeleteRow(row int) error {
	return w.DeleteRows(row, row)
}

// DeleteRows removes rows start..end (inclusive) from the active sheet. The
// end is clamped to MaxRows; a start outside [1, MaxRows] is a no-op.
func (w *Workbook) DeleteRows(start, end int) error {
	sheet := w.ActiveSheet()
	if start < 1 || start > sheet.MaxRows || end < start {
		return nil
	}
	end = min(end, sheet.MaxRows)

	if start < len(sheet.Data) {
		physicalEnd := min(end, len(sheet.Data)-1)
		sheet.Data = append(sheet.Data[:start], sheet.Data[physicalEnd+1:]...)
	}

	sheet.RecalculateMaxRows()
	sheet.RecalculateMaxCols()
	w.modified = true
	return nil
}

// InsertRows re-inserts rows at position at, in the given top-to-bottom order.
// Missing physical rows before at are padded with empty rows.
func (w *Workbook) InsertRows(at int, rows [][]Cell) error {
	if at < 1 {
		return fmt.Errorf("%w: row %d", ErrInsertIndex, at)
	}
	sheet := w.ActiveSheet()
	width := 1
	if len(sheet.Data) > 0 {
		width = len(sheet.Data[0])
	}
	for len(sheet.Data) < at {
		sheet.Data = append(sheet.Data, emptyRow(width))
	}

	inserted := make([][]Cell, len(rows))
	for i, row := range rows {
		inserted[i] = cloneRow(row)
		if inserted[i] == nil {
			inserted[i] = emptyRow(width)
		}
	}
	tail := append(inserted, sheet.Data[at:]...)
	sheet.Data = append(sheet.Data[:at], tail...)

	sheet.MaxRows += len(rows)
	sheet.RecalculateMaxCols()
	return nil
}

// --- Column primitives ---

// DeleteColumn removes col from every row of the active sheet. Columns
// outside [1, MaxCols] are a successful no-op.
func (w *Workbook) DeleteColumn(col int) error {
	return w.DeleteColumns(col, col)
}

// DeleteColumns removes columns start..end (inclusive) from every row of the
// active sheet. The end is clamped to MaxCols; a start outside [1, MaxCols] is
// a no-op.
func (w *Workbook) DeleteColumns(start, end int) error {
	sheet := w.ActiveSheet()
	if start < 1 || start > sheet.MaxCols || end < start {
		return nil
	}
	end = min(end, sheet.MaxCols)

	for i, row := range sheet.Data {
		if start >= len(row) {
			continue
		}
		physicalEnd := min(end, len(row)-1)
		sheet.Data[i] = append(row[:start], row[physicalEnd+1:]...)
	}

	sheet.RecalculateMaxRows()
	sheet.RecalculateMaxCols()
	w.modified = true
	return nil
}

// InsertColumn re-inserts a captured column at position at. data[i] goes into
// row i; short rows are padded with empty cells up to at first.
func (w *Workbook) InsertColumn(at int, data []Cell) error {
	if err := w.insertColumn(at, data); err != nil {
		return err
	}
	sheet := w.ActiveSheet()
	sheet.MaxCols++
	sheet.RecalculateMaxRows()
	return nil
}

// InsertColumns re-inserts captured columns (left-to-right order) starting at
// position at. Columns are placed rightmost first so each lands at its
// original offset.
func (w *Workbook) InsertColumns(at int, columns [][]Cell) error {
	if at < 1 {
		return fmt.Errorf("%w: column %d", ErrInsertIndex, at)
	}
	for i := len(columns) - 1; i >= 0; i-- {
		if err := w.insertColumn(at, columns[i]); err != nil {
			return err
		}
	}
	sheet := w.ActiveSheet()
	sheet.MaxCols += len(columns)
	sheet.RecalculateMaxRows()
	return nil
}

func (w *Workbook) insertColumn(at int, data []Cell) error {
	if at < 1 {
		return fmt.Errorf("%w: column %d", ErrInsertIndex, at)
	}
	sheet := w.ActiveSheet()
	for len(sheet.Data) < len(data) {
		sheet.Data = append(sheet.Data, nil)
	}
	for i := range data {
		row := padRow(sheet.Data[i], at)
		row = append(row, Cell{})
		copy(row[at+1:], row[at:])
		row[at] = data[i]
		sheet.Data[i] = row
	}
	return nil
}

// --- Sheet primitives ---

// DeleteCurrentSheet removes the active sheet and clamps the active index.
func (w *Workbook) DeleteCurrentSheet() error {
	if len(w.sheets) <= 1 {
		return ErrLastSheet
	}
	w.sheets = append(w.sheets[:w.current], w.sheets[w.current+1:]...)
	if w.current >= len(w.sheets) {
		w.current = len(w.sheets) - 1
	}
	w.modified = true
	return nil
}

// InsertSheetAt splices sheet in at index. The workbook takes ownership of
// sheet; callers holding a snapshot should pass a Clone. The active sheet
// stays the same sheet it was before the insert.
func (w *Workbook) InsertSheetAt(sheet *Sheet, index int) error {
	if index < 0 || index > len(w.sheets) {
		return fmt.Errorf("%w: sheet %d of %d", ErrInsertIndex, index, len(w.sheets))
	}
	w.sheets = append(w.sheets, nil)
	copy(w.sheets[index+1:], w.sheets[index:])
	w.sheets[index] = sheet
	if index <= w.current {
		w.current++
	}
	w.modified = true
	return nil
}

// AddSheet appends a new empty sheet.
func (w *Workbook) AddSheet(name string) *Sheet {
	sheet := NewSheet(name, 0, 0)
	w.sheets = append(w.sheets, sheet)
	w.modified = true
	return sheet
}

// --- Bounds ---

// RecalculateMaxRows rescans the active sheet's row bound.
func (w *Workbook) RecalculateMaxRows() {
	w.ActiveSheet().RecalculateMaxRows()
}

// RecalculateMaxCols rescans the active sheet's column bound.
func (w *Workbook) RecalculateMaxCols() {
	w.ActiveSheet().RecalculateMaxCols()
}
