package core

import (
	"github.com/bethropolis/tabula/internal/config"
	"github.com/bethropolis/tabula/internal/core/actions"
	"github.com/bethropolis/tabula/internal/core/clipboard"
	"github.com/bethropolis/tabula/internal/core/find"
	"github.com/bethropolis/tabula/internal/core/history"
	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/layout"
	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/bethropolis/tabula/internal/workbook"
)

// Options tunes an Editor. Zero values fall back to the config defaults.
type Options struct {
	UndoLimit        int
	MaxNotifications int
	ScrollOff        int
	SystemClipboard  bool
}

// OptionsFromConfig builds editor options from the loaded configuration.
func OptionsFromConfig(cfg config.EditorConfig) Options {
	return Options{
		UndoLimit:        cfg.UndoLimit,
		MaxNotifications: cfg.MaxNotifications,
		ScrollOff:        cfg.ScrollOff,
		SystemClipboard:  cfg.SystemClipboard,
	}
}

// Editor is the action engine. It owns the workbook's history and drives every
// mutation of the grid, keeping the cursor, the caller's layout tables, the
// search cache and the modified flag consistent after each one.
type Editor struct {
	workbook  *workbook.Workbook
	layout    *layout.Layout
	history   *history.Manager
	finder    *find.Manager
	clipboard *clipboard.Manager

	Cursor    types.CellPosition
	Viewport  types.Viewport
	ScrollOff int

	viewWidth  int
	viewHeight int // rows available for grid cells

	notifications    []string
	maxNotifications int

	eventManager *event.Manager
}

// NewEditor creates an engine over wb. The layout belongs to the caller and
// is updated in place.
func NewEditor(wb *workbook.Workbook, lay *layout.Layout, opts Options) *Editor {
	if opts.MaxNotifications <= 0 {
		opts.MaxNotifications = config.DefaultMaxNotifications
	}
	if opts.ScrollOff < 0 {
		opts.ScrollOff = 0
	}
	if lay == nil {
		lay = layout.New(config.DefaultColumnWidth, config.DefaultMinColumnWidth, config.DefaultMaxColumnWidth)
	}

	e := &Editor{
		workbook:         wb,
		layout:           lay,
		history:          history.NewManager(opts.UndoLimit),
		clipboard:        clipboard.NewManager(opts.SystemClipboard),
		Cursor:           types.Origin,
		Viewport:         types.Viewport{Row: 1, Col: 1},
		ScrollOff:        opts.ScrollOff,
		maxNotifications: opts.MaxNotifications,
	}
	e.finder = find.NewManager(e)
	lay.Ensure(wb.ActiveSheet().MaxCols)
	return e
}

// SetEventManager sets the event manager used for dispatching.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager, which may be nil.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// Workbook returns the edited workbook.
func (e *Editor) Workbook() *workbook.Workbook {
	return e.workbook
}

// Layout returns the width/position tables the engine maintains.
func (e *Editor) Layout() *layout.Layout {
	return e.layout
}

// ActiveSheet returns the active sheet.
func (e *Editor) ActiveSheet() *workbook.Sheet {
	return e.workbook.ActiveSheet()
}

// Finder returns the search manager.
func (e *Editor) Finder() *find.Manager {
	return e.finder
}

// Clipboard returns the cell clipboard.
func (e *Editor) Clipboard() *clipboard.Manager {
	return e.clipboard
}

// --- History interface ---

// Push records an action. Any redo branch is discarded.
func (e *Editor) Push(a actions.Action) {
	e.history.Push(a)
}

// AllUndone reports whether every recorded action has been undone.
func (e *Editor) AllUndone() bool {
	return e.history.AllUndone()
}

// CanUndo reports whether Undo would do anything.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would do anything.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}

// ClearHistory drops both stacks.
func (e *Editor) ClearHistory() {
	e.history.Clear()
}

// MarkSaved records a successful save: the workbook is clean and there is
// no earlier state left to return to.
func (e *Editor) MarkSaved() {
	e.workbook.SetModified(false)
	e.history.Clear()
	logger.Debugf("Editor: Workbook saved, history cleared")
}

// ReplaceWorkbook swaps in a freshly loaded workbook and resets all
// engine-owned state.
func (e *Editor) ReplaceWorkbook(wb *workbook.Workbook) {
	e.workbook = wb
	e.history.Clear()
	e.finder.Invalidate()
	e.Cursor = types.Origin
	e.Viewport = types.Viewport{Row: 1, Col: 1}
	e.layout.SetWidths(nil)
	e.layout.Ensure(wb.ActiveSheet().MaxCols)
}

// --- Notifications ---

// Notify records a status message, keeping only the most recent ones.
func (e *Editor) Notify(message string) {
	e.notifications = append(e.notifications, message)
	if over := len(e.notifications) - e.maxNotifications; over > 0 {
		e.notifications = append(e.notifications[:0], e.notifications[over:]...)
	}
	logger.Infof("Editor: %s", message)
	e.dispatch(event.TypeNotification, event.NotificationData{Message: message})
}

// Notifications returns the retained messages, oldest first.
func (e *Editor) Notifications() []string {
	return append([]string(nil), e.notifications...)
}

// LastNotification returns the newest message, or "".
func (e *Editor) LastNotification() string {
	if len(e.notifications) == 0 {
		return ""
	}
	return e.notifications[len(e.notifications)-1]
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

func (e *Editor) gridModified() {
	e.dispatch(event.TypeGridModified, event.GridModifiedData{
		SheetIndex: e.workbook.ActiveSheetIndex(),
		SheetName:  e.workbook.ActiveSheetName(),
	})
}

func (e *Editor) target() actions.Target {
	return actions.Target{
		SheetIndex: e.workbook.ActiveSheetIndex(),
		SheetName:  e.workbook.ActiveSheetName(),
	}
}
