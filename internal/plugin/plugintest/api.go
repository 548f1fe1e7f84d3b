// Package plugintest provides an in-memory plugin.EditorAPI for plugin tests.
package plugintest

import (
	"fmt"
	"sync"

	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/plugin"
	"github.com/bethropolis/tabula/internal/theme"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/gdamore/tcell/v2"
)

var _ plugin.EditorAPI = (*API)(nil)

// API records what a plugin does and serves a fixed grid.
type API struct {
	FilePath  string
	Modified  bool
	SheetName string
	Cells     map[types.CellPosition]string
	Rows      int
	Cols      int
	Cursor    types.CellPosition
	Config    map[string]map[string]interface{}

	// WriteCopyFunc handles WriteCopy; nil records the path and succeeds.
	WriteCopyFunc func(path string) ([]string, error)
	Copies        []string

	Commands map[string]plugin.CommandFunc
	Messages []string
	Events   *event.Manager
	Theme    *theme.Theme

	mu     sync.Mutex
	queued []func()
}

// New returns an empty API with its own event manager.
func New() *API {
	builtin := theme.TabulaDark
	return &API{
		SheetName: "Sheet1",
		Cells:     make(map[types.CellPosition]string),
		Cursor:    types.Origin,
		Config:    make(map[string]map[string]interface{}),
		Commands:  make(map[string]plugin.CommandFunc),
		Events:    event.NewManager(),
		Theme:     &builtin,
	}
}

// Set stores a cell value and grows the bounds to cover it.
func (a *API) Set(row, col int, value string) {
	a.Cells[types.CellPosition{Row: row, Col: col}] = value
	a.Rows = max(a.Rows, row)
	a.Cols = max(a.Cols, col)
}

// Run invokes a registered command.
func (a *API) Run(name string, args ...string) error {
	fn, ok := a.Commands[name]
	if !ok {
		return fmt.Errorf("command %q not registered", name)
	}
	return fn(args)
}

// LastMessage returns the newest status message, or "".
func (a *API) LastMessage() string {
	if len(a.Messages) == 0 {
		return ""
	}
	return a.Messages[len(a.Messages)-1]
}

// RunQueued runs and clears every function passed to RunOnMainLoop.
func (a *API) RunQueued() int {
	a.mu.Lock()
	fns := a.queued
	a.queued = nil
	a.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

func (a *API) GetFilePath() string        { return a.FilePath }
func (a *API) IsModified() bool           { return a.Modified }
func (a *API) GetActiveSheetName() string { return a.SheetName }
func (a *API) GetSheetBounds() (int, int) { return a.Rows, a.Cols }

func (a *API) GetCellValue(row, col int) string {
	return a.Cells[types.CellPosition{Row: row, Col: col}]
}

func (a *API) WriteCopy(path string) ([]string, error) {
	if a.WriteCopyFunc != nil {
		return a.WriteCopyFunc(path)
	}
	a.Copies = append(a.Copies, path)
	return []string{path}, nil
}

func (a *API) GetCursor() types.CellPosition     { return a.Cursor }
func (a *API) SetCursor(pos types.CellPosition) { a.Cursor = pos }

func (a *API) DispatchEvent(eventType event.Type, data interface{}) {
	a.Events.Dispatch(eventType, data)
}

func (a *API) SubscribeEvent(eventType event.Type, handler event.Handler) {
	a.Events.Subscribe(eventType, handler)
}

func (a *API) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if _, exists := a.Commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.Commands[name] = cmdFunc
	return nil
}

func (a *API) SetStatusMessage(format string, args ...interface{}) {
	a.Messages = append(a.Messages, fmt.Sprintf(format, args...))
}

func (a *API) GetThemeStyle(styleName string) tcell.Style { return a.Theme.GetStyle(styleName) }
func (a *API) GetTheme() *theme.Theme                     { return a.Theme }
func (a *API) ListThemes() []string                       { return []string{a.Theme.Name} }

func (a *API) SetTheme(name string) error {
	if name != a.Theme.Name {
		return fmt.Errorf("theme '%s' not found", name)
	}
	return nil
}

func (a *API) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	v, ok := a.Config[pluginName][key]
	return v, ok
}

func (a *API) RunOnMainLoop(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.queued = append(a.queued, fn)
}
