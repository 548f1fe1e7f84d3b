package modehandler

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/core"
	"github.com/bethropolis/tabula/internal/input"
	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/utils"
)

// handleActionNormal runs a grid action. A lone 'g' only arms the prefix;
// any other key disarms it.
func (mh *ModeHandler) handleActionNormal(ae input.ActionEvent) bool {
	if ae.Action == input.ActionPrefixG {
		if mh.gPending {
			mh.gPending = false
			mh.editor.JumpToFirstRow()
			return true
		}
		mh.gPending = true
		return false
	}
	mh.gPending = false

	e := mh.editor
	switch ae.Action {
	// --- Movement ---
	case input.ActionMoveUp:
		e.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		e.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		e.MoveCursor(0, -1)
	case input.ActionMoveRight:
		e.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		e.MoveCursor(-e.VisibleRows(), 0)
	case input.ActionMovePageDown:
		e.MoveCursor(e.VisibleRows(), 0)
	case input.ActionJumpFirstRow:
		e.JumpToFirstRow()
	case input.ActionJumpLastRow:
		e.JumpToLastRow()
	case input.ActionJumpFirstColumn:
		e.JumpToFirstColumn()
	case input.ActionJumpFirstNonEmptyColumn:
		e.JumpToFirstNonEmptyColumn()
	case input.ActionJumpLastColumn:
		e.JumpToLastColumn()
	case input.ActionJumpNonEmptyUp:
		e.JumpToNonEmpty(core.DirUp)
	case input.ActionJumpNonEmptyDown:
		e.JumpToNonEmpty(core.DirDown)
	case input.ActionJumpNonEmptyLeft:
		e.JumpToNonEmpty(core.DirLeft)
	case input.ActionJumpNonEmptyRight:
		e.JumpToNonEmpty(core.DirRight)

	// --- Cells ---
	case input.ActionEditCell:
		mh.editTarget = utils.CellReference(e.GetCursor())
		mh.enterLineMode(ModeEdit, e.CurrentCellValue())
	case input.ActionCopyCell:
		e.CopyCell()
	case input.ActionCutCell:
		if err := e.CutCell(); err != nil {
			e.Notify(fmt.Sprintf("Cut failed: %v", err))
		}
	case input.ActionPasteCell:
		if err := e.PasteCell(); err != nil {
			e.Notify(fmt.Sprintf("Paste failed: %v", err))
		}
	case input.ActionUndo:
		e.Undo()
	case input.ActionRedo:
		e.Redo()

	// --- Sheets ---
	case input.ActionPrevSheet:
		e.PrevSheet()
	case input.ActionNextSheet:
		e.NextSheet()

	// --- Modes and search ---
	case input.ActionEnterCommandMode:
		mh.enterLineMode(ModeCommand, "")
	case input.ActionSearchForward:
		mh.enterLineMode(ModeSearchForward, "")
	case input.ActionSearchBackward:
		mh.enterLineMode(ModeSearchBackward, "")
	case input.ActionNextMatch:
		e.NextMatch()
	case input.ActionPrevMatch:
		e.PrevMatch()
	case input.ActionClearSearch:
		if !e.Finder().HighlightEnabled() {
			return false
		}
		e.DisableSearchHighlight()

	// --- Meta ---
	case input.ActionSave:
		mh.ExecuteCommand("w")
	case input.ActionForceQuit:
		mh.Quit()

	default:
		logger.DebugTagf("mode", "ModeHandler: Ignoring action %d in normal mode", ae.Action)
		return false
	}
	return true
}
