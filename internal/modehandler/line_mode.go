package modehandler

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/input"
)

// handleActionLine edits the input line in the edit, command and search
// modes. Backspace on an empty command or search line leaves the mode.
func (mh *ModeHandler) handleActionLine(ae input.ActionEvent) bool {
	switch ae.Action {
	case input.ActionInsertRune:
		mh.line.Insert(ae.Rune)
	case input.ActionDeleteCharBackward:
		if mh.line.Len() == 0 && mh.currentMode != ModeEdit {
			mh.exitToNormal()
			return true
		}
		mh.line.Backspace()
	case input.ActionDeleteCharForward:
		mh.line.Delete()
	case input.ActionCursorLeft:
		mh.line.Left()
	case input.ActionCursorRight:
		mh.line.Right()
	case input.ActionCursorHome:
		mh.line.Home()
	case input.ActionCursorEnd:
		mh.line.End()
	case input.ActionSubmit:
		mh.submitLine()
		return true
	case input.ActionCancel:
		mh.exitToNormal()
		return true
	default:
		return false
	}
	mh.syncInputLine()
	return true
}

// submitLine returns to normal mode and acts on the typed text.
func (mh *ModeHandler) submitLine() {
	mode, text := mh.currentMode, mh.line.String()
	mh.exitToNormal()

	switch mode {
	case ModeEdit:
		if err := mh.editor.EditCell(text); err != nil {
			mh.editor.Notify(fmt.Sprintf("Error: %v", err))
		}
	case ModeCommand:
		mh.ExecuteCommand(text)
	case ModeSearchForward:
		mh.executeSearch(text, true)
	case ModeSearchBackward:
		mh.executeSearch(text, false)
	}
}
