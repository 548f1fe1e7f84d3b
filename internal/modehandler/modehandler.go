// Package modehandler routes key presses to the editor according to the
// current input mode and runs `:` commands.
package modehandler

import (
	"github.com/bethropolis/tabula/internal/core"
	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/input"
	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/plugin"
	"github.com/bethropolis/tabula/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeEdit
	ModeCommand
	ModeSearchForward
	ModeSearchBackward
)

func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeEdit:
		return "EDIT"
	case ModeCommand:
		return "COMMAND"
	case ModeSearchForward, ModeSearchBackward:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// isLineMode reports whether m collects a line of text.
func (m InputMode) isLineMode() bool {
	return m != ModeNormal
}

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}

	currentMode InputMode
	line        lineBuffer
	editTarget  string // cell reference shown while editing
	gPending    bool
	quitting    bool
	commands    map[string]plugin.CommandFunc
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // closed once on quit
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
	mh.statusBar.SetEditorMode(mh.currentMode.String())
	return mh
}

// HandleKeyEvent processes one key press and reports whether a redraw is
// needed.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	if mh.currentMode.isLineMode() {
		return mh.handleActionLine(mh.inputProcessor.ProcessLineEvent(ev))
	}
	return mh.handleActionNormal(mh.inputProcessor.ProcessEvent(ev))
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetInputLine returns the text being typed in a line mode, or "".
func (mh *ModeHandler) GetInputLine() string {
	if !mh.currentMode.isLineMode() {
		return ""
	}
	return mh.line.String()
}

// Quit signals the app to exit. Further calls do nothing.
func (mh *ModeHandler) Quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	logger.Infof("ModeHandler: Quit requested")
	close(mh.quitSignal)
}

// IsQuitting reports whether Quit has been called.
func (mh *ModeHandler) IsQuitting() bool {
	return mh.quitting
}

// enterLineMode switches to a text-entry mode with initial text.
func (mh *ModeHandler) enterLineMode(mode InputMode, initial string) {
	mh.currentMode = mode
	mh.line.Set(initial)
	mh.statusBar.SetEditorMode(mode.String())
	mh.syncInputLine()
	logger.DebugTagf("mode", "ModeHandler: Entering %s mode", mode)
}

// exitToNormal leaves any line mode without acting on the text.
func (mh *ModeHandler) exitToNormal() {
	mh.currentMode = ModeNormal
	mh.line.Set("")
	mh.editTarget = ""
	mh.statusBar.ClearInputLine()
	mh.statusBar.SetEditorMode(mh.currentMode.String())
}

// syncInputLine mirrors the line buffer into the status bar.
func (mh *ModeHandler) syncInputLine() {
	mh.statusBar.SetInputLine(mh.prompt(), mh.line.String(), mh.line.Cursor())
}

func (mh *ModeHandler) prompt() string {
	switch mh.currentMode {
	case ModeEdit:
		return mh.editTarget + ": "
	case ModeCommand:
		return ":"
	case ModeSearchForward:
		return "/"
	case ModeSearchBackward:
		return "?"
	default:
		return ""
	}
}
