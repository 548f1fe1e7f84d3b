// Package tui wraps the tcell screen and draws the grid.
package tui

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a terminal screen.
func New(activeTheme *theme.Theme) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, activeTheme)
}

// NewWithScreen initializes s and wraps it. Tests pass a
// tcell.SimulationScreen.
func NewWithScreen(s tcell.Screen, activeTheme *theme.Theme) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	t := &TUI{screen: s}
	t.SetTheme(activeTheme)
	return t, nil
}

// SetTheme sets the screen's background style.
func (t *TUI) SetTheme(activeTheme *theme.Theme) {
	if activeTheme != nil {
		t.screen.SetStyle(activeTheme.GetStyle(theme.StyleDefault))
	}
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent blocks until the next event. It returns nil once the screen is
// finalized.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues ev for PollEvent.
func (t *TUI) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync redraws the whole terminal, used after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// ShowCursor places the terminal cursor, or hides it when visible is false.
func (t *TUI) ShowCursor(x, y int, visible bool) {
	if visible {
		t.screen.ShowCursor(x, y)
	} else {
		t.screen.HideCursor()
	}
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
