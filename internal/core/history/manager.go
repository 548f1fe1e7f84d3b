// Package history keeps the undo and redo stacks of recorded actions.
package history

import (
	"github.com/bethropolis/tabula/internal/core/actions"
	"github.com/bethropolis/tabula/internal/logger"
)

// Manager holds two stacks of shared action records. An action moves between
// the stacks by pointer; its payload is never copied.
//
// Manager is not safe for concurrent use. It is driven by the single UI loop.
type Manager struct {
	undo  []actions.Action
	redo  []actions.Action
	limit int // max undo depth; 0 means bounded only by memory

	// evicted is set once a record falls off the bottom of the undo stack;
	// from then on an empty undo stack no longer means the original state.
	evicted bool
}

// NewManager creates a history. A positive limit evicts the oldest record
// once the undo stack grows past it.
func NewManager(limit int) *Manager {
	if limit < 0 {
		limit = 0
	}
	return &Manager{limit: limit}
}

// Push records a new action and discards the redo branch.
func (m *Manager) Push(a actions.Action) {
	if a == nil {
		return
	}
	m.pushUndo(a)
	if len(m.redo) > 0 {
		logger.DebugTagf("history", "History: Dropping %d redo record(s)", len(m.redo))
	}
	clear(m.redo)
	m.redo = m.redo[:0]
	logger.DebugTagf("history", "History: Pushed %s. Undo: %d", actions.Describe(a), len(m.undo))
}

// PopUndo removes the most recent action from the undo stack.
func (m *Manager) PopUndo() (actions.Action, bool) {
	return pop(&m.undo)
}

// PopRedo removes the most recently undone action from the redo stack.
func (m *Manager) PopRedo() (actions.Action, bool) {
	return pop(&m.redo)
}

// PushRedo places an undone action on the redo stack.
func (m *Manager) PushRedo(a actions.Action) {
	m.redo = append(m.redo, a)
}

// PushUndo places a redone action back on the undo stack without touching
// the redo branch.
func (m *Manager) PushUndo(a actions.Action) {
	m.pushUndo(a)
}

func (m *Manager) pushUndo(a actions.Action) {
	m.undo = append(m.undo, a)
	if m.limit > 0 && len(m.undo) > m.limit {
		evicted := len(m.undo) - m.limit
		clear(m.undo[:evicted])
		m.undo = append(m.undo[:0], m.undo[evicted:]...)
		m.evicted = true
		logger.DebugTagf("history", "History: Evicted %d oldest record(s)", evicted)
	}
}

func pop(stack *[]actions.Action) (actions.Action, bool) {
	s := *stack
	if len(s) == 0 {
		return nil, false
	}
	a := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return a, true
}

// AllUndone reports whether every recorded action has been undone, i.e. the
// state matches the one the history started from.
func (m *Manager) AllUndone() bool {
	return len(m.undo) == 0 && !m.evicted
}

// CanUndo reports whether there is an action to undo.
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0
}

// CanRedo reports whether there is an action to redo.
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// UndoDepth returns the number of undoable actions.
func (m *Manager) UndoDepth() int {
	return len(m.undo)
}

// RedoDepth returns the number of redoable actions.
func (m *Manager) RedoDepth() int {
	return len(m.redo)
}

// Clear drops both stacks. Called after a successful save.
func (m *Manager) Clear() {
	clear(m.undo)
	clear(m.redo)
	m.undo = m.undo[:0]
	m.redo = m.redo[:0]
	m.evicted = false
	logger.DebugTagf("history", "History: Cleared.")
}
