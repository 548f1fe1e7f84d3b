// Package layout owns the per-sheet side tables that live outside the grid:
// the column width table and the remembered cursor/view position of each
// sheet, both keyed by sheet name.
package layout

import (
	"github.com/bethropolis/tabula/internal/types"
	"github.com/bethropolis/tabula/internal/utils"
	"github.com/rivo/uniseg"
)

const (
	DefaultColumnWidth = 15
	MinColumnWidth     = 5
	MaxColumnWidth     = 50
)

// SheetPosition is the cursor and scroll offset remembered for a sheet.
type SheetPosition struct {
	Selected types.CellPosition
	View     types.Viewport
}

// Layout holds the active sheet's width table plus saved tables and positions
// for every sheet the user has visited.
type Layout struct {
	DefaultWidth int
	MinWidth     int
	MaxWidth     int

	widths      []int // active sheet, 1-based; slot 0 unused
	sheetWidths map[string][]int
	positions   map[string]SheetPosition
}

// New creates a layout with the given width bounds. Zero values fall back to
// the package defaults.
func New(defaultWidth, minWidth, maxWidth int) *Layout {
	if defaultWidth <= 0 {
		defaultWidth = DefaultColumnWidth
	}
	if minWidth <= 0 {
		minWidth = MinColumnWidth
	}
	if maxWidth < minWidth {
		maxWidth = max(MaxColumnWidth, minWidth)
	}
	return &Layout{
		DefaultWidth: defaultWidth,
		MinWidth:     minWidth,
		MaxWidth:     maxWidth,
		widths:       []int{defaultWidth},
		sheetWidths:  make(map[string][]int),
		positions:    make(map[string]SheetPosition),
	}
}

// --- Active width table ---

// Width returns the width of col, or the default for columns past the table.
func (l *Layout) Width(col int) int {
	if col >= 0 && col < len(l.widths) {
		return l.widths[col]
	}
	return l.DefaultWidth
}

// Widths returns a copy of the active width table.
func (l *Layout) Widths() []int {
	return append([]int(nil), l.widths...)
}

// SetWidths replaces the active width table.
func (l *Layout) SetWidths(widths []int) {
	if len(widths) == 0 {
		l.widths = []int{l.DefaultWidth}
		return
	}
	l.widths = append([]int(nil), widths...)
}

// SetWidth sets the width of col, growing the table if needed.
func (l *Layout) SetWidth(col, width int) {
	if col < 1 {
		return
	}
	l.pad(col + 1)
	l.widths[col] = width
}

// ClampWidth bounds width to [MinWidth, MaxWidth].
func (l *Layout) ClampWidth(width int) int {
	return min(max(width, l.MinWidth), l.MaxWidth)
}

// Ensure resizes the table to exactly maxCols+1 entries, padding with the
// default width.
func (l *Layout) Ensure(maxCols int) {
	n := maxCols + 1
	if len(l.widths) > n {
		l.widths = l.widths[:n]
		return
	}
	l.pad(n)
}

// InsertWidth splices width in at col, shifting later columns right.
func (l *Layout) InsertWidth(col, width int) {
	if col < 1 {
		return
	}
	l.pad(col)
	l.widths = append(l.widths, 0)
	copy(l.widths[col+1:], l.widths[col:])
	l.widths[col] = width
}

// RemoveWidths drops the widths of columns start..end that exist in the table.
func (l *Layout) RemoveWidths(start, end int) {
	for col := end; col >= start; col-- {
		if col >= 1 && col < len(l.widths) {
			l.widths = append(l.widths[:col], l.widths[col+1:]...)
		}
	}
}

func (l *Layout) pad(n int) {
	for len(l.widths) < n {
		l.widths = append(l.widths, l.DefaultWidth)
	}
}

// --- Per-sheet tables ---

// SaveSheet stores the active widths and the given position under name.
func (l *Layout) SaveSheet(name string, pos SheetPosition) {
	l.sheetWidths[name] = l.Widths()
	l.positions[name] = pos
}

// RestoreSheet loads name's widths into the active table, or a fresh default
// table sized for maxCols. It returns the saved position, if any.
func (l *Layout) RestoreSheet(name string, maxCols int) (SheetPosition, bool) {
	if saved, ok := l.sheetWidths[name]; ok {
		l.SetWidths(saved)
	} else {
		l.widths = nil
		l.pad(maxCols + 1)
		l.sheetWidths[name] = l.Widths()
	}
	pos, ok := l.positions[name]
	return pos, ok
}

// StoreSheet records widths and a fresh top-left position for a sheet that is
// not active, as when a deleted sheet comes back.
func (l *Layout) StoreSheet(name string, widths []int) {
	l.sheetWidths[name] = append([]int(nil), widths...)
	l.positions[name] = SheetPosition{
		Selected: types.Origin,
		View:     types.Viewport{Row: 1, Col: 1},
	}
}

// SavedWidths returns a copy of the stored widths for name.
func (l *Layout) SavedWidths(name string) ([]int, bool) {
	w, ok := l.sheetWidths[name]
	if !ok {
		return nil, false
	}
	return append([]int(nil), w...), true
}

// SavedPosition returns the stored position for name.
func (l *Layout) SavedPosition(name string) (SheetPosition, bool) {
	pos, ok := l.positions[name]
	return pos, ok
}

// ForgetSheet drops every entry kept for name.
func (l *Layout) ForgetSheet(name string) {
	delete(l.sheetWidths, name)
	delete(l.positions, name)
}

// --- Auto-fit ---

// FitWidth computes the display width needed for a column holding values:
// the widest grapheme-aware value or the header name, at least 3, plus
// padding (less padding once content is wide).
func FitWidth(col int, values []string) int {
	width := max(3, len(utils.IndexToColName(col)))
	for _, v := range values {
		if v == "" {
			continue
		}
		width = max(width, uniseg.StringWidth(v))
	}
	if width > 20 {
		return width + 3
	}
	return width + 4
}
