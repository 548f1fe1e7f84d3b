package plugin

import (
	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/theme"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc is the signature for `:` commands. A returned error is shown
// to the user.
type CommandFunc func(args []string) error

// EditorAPI is what plugins may touch. Every method except RunOnMainLoop
// must be called from the main loop: from an event handler, a command, or a
// function passed to RunOnMainLoop.
type EditorAPI interface {
	// --- Workbook Access ---
	GetFilePath() string
	IsModified() bool
	GetActiveSheetName() string
	GetSheetBounds() (rows, cols int)
	GetCellValue(row, col int) string
	WriteCopy(path string) ([]string, error) // save all sheets elsewhere, leaving the workbook untouched

	// --- Cursor ---
	GetCursor() types.CellPosition
	SetCursor(pos types.CellPosition)

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// --- Configuration ---
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)

	// RunOnMainLoop queues fn for the main loop. It is safe to call from
	// any goroutine and does not block once the app is shutting down.
	RunOnMainLoop(fn func())
}

// Plugin is implemented by every plugin.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once at startup, on the main loop. Plugins
	// subscribe to events and register commands here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
