// Package find keeps the search cache for the active sheet: the last query,
// every matching cell in row-major order, and the current match.
package find

import (
	"strings"
	"sync"

	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/bethropolis/tabula/internal/workbook"
)

// EditorInterface defines what the find manager reads from the editor.
type EditorInterface interface {
	ActiveSheet() *workbook.Sheet
	GetCursor() types.CellPosition
}

// Result describes one jump between matches.
type Result struct {
	Pos     types.CellPosition
	Forward bool
	Wrapped bool // the jump went past the last match (or the first, backward)
}

// Manager caches search results. The cache is invalidated by any change to
// the grid's shape; the query itself survives so n/N can re-run it.
type Manager struct {
	editor    EditorInterface
	mutex     sync.RWMutex
	query     string
	forward   bool
	results   []types.CellPosition
	current   int // index into results, -1 when none
	highlight bool
}

// NewManager creates a find manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{editor: editor, forward: true, current: -1}
}

// Search runs query over the active sheet and jumps to the first match in the
// given direction from the cursor. It returns the number of matches.
func (m *Manager) Search(query string, forward bool) (int, Result, bool) {
	if query == "" {
		return 0, Result{}, false
	}
	matches := FindAll(m.editor.ActiveSheet(), query)

	m.mutex.Lock()
	m.query = query
	m.forward = forward
	m.results = matches
	m.current = -1
	m.highlight = true
	m.mutex.Unlock()

	logger.DebugTagf("find", "Find: %q matched %d cell(s)", query, len(matches))
	if len(matches) == 0 {
		return 0, Result{}, false
	}
	res, ok := m.jump(forward)
	return len(matches), res, ok
}

// Next jumps to the next match in the search direction. With an empty cache
// the last query is re-run first.
func (m *Manager) Next() (Result, bool) {
	return m.step(false)
}

// Prev jumps to the next match against the search direction.
func (m *Manager) Prev() (Result, bool) {
	return m.step(true)
}

func (m *Manager) step(reverse bool) (Result, bool) {
	m.mutex.Lock()
	query := m.query
	forward := m.forward
	if len(m.results) == 0 && query != "" {
		m.results = FindAll(m.editor.ActiveSheet(), query)
	}
	empty := len(m.results) == 0
	m.mutex.Unlock()

	if empty {
		return Result{}, false
	}
	if reverse {
		forward = !forward
	}
	return m.jump(forward)
}

func (m *Manager) jump(forward bool) (Result, bool) {
	cursor := m.editor.GetCursor()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	if len(m.results) == 0 {
		return Result{}, false
	}
	m.highlight = true

	if forward {
		for i, pos := range m.results {
			if after(pos, cursor) {
				m.current = i
				return Result{Pos: pos, Forward: true}, true
			}
		}
		m.current = 0
		return Result{Pos: m.results[0], Forward: true, Wrapped: true}, true
	}
	for i := len(m.results) - 1; i >= 0; i-- {
		if after(cursor, m.results[i]) {
			m.current = i
			return Result{Pos: m.results[i]}, true
		}
	}
	m.current = len(m.results) - 1
	return Result{Pos: m.results[m.current], Wrapped: true}, true
}

// after reports whether a comes after b in row-major order.
func after(a, b types.CellPosition) bool {
	return a.Row > b.Row || (a.Row == b.Row && a.Col > b.Col)
}

// FindAll returns every non-empty cell within the sheet's logical bounds whose
// value contains query, ignoring case, in row-major order.
func FindAll(sheet *workbook.Sheet, query string) []types.CellPosition {
	if sheet == nil {
		return nil
	}
	needle := strings.ToLower(query)
	var results []types.CellPosition
	for row := 1; row <= sheet.MaxRows && row < len(sheet.Data); row++ {
		for col := 1; col <= sheet.MaxCols && col < len(sheet.Data[row]); col++ {
			value := sheet.Data[row][col].Value
			if value == "" {
				continue
			}
			if strings.Contains(strings.ToLower(value), needle) {
				results = append(results, types.CellPosition{Row: row, Col: col})
			}
		}
	}
	return results
}

// Invalidate drops cached results. The query is kept.
func (m *Manager) Invalidate() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.results = nil
	m.current = -1
}

// DisableHighlight turns match highlighting off until the next search.
func (m *Manager) DisableHighlight() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.highlight = false
}

// HighlightEnabled reports whether matches should be drawn highlighted.
func (m *Manager) HighlightEnabled() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.highlight
}

// IsMatch reports whether pos is a cached match.
func (m *Manager) IsMatch(pos types.CellPosition) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	for _, r := range m.results {
		if r == pos {
			return true
		}
	}
	return false
}

// Results returns a copy of the cached matches.
func (m *Manager) Results() []types.CellPosition {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return append([]types.CellPosition(nil), m.results...)
}

// Current returns the index of the current match, or -1.
func (m *Manager) Current() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.current
}

// Query returns the last search query.
func (m *Manager) Query() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.query
}
