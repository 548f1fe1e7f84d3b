package input

// Action is an editor operation decoded from a key press.
type Action int

const (
	ActionUnknown Action = iota

	// --- Meta ---
	ActionSave
	ActionForceQuit

	// --- Cursor movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionJumpFirstRow // second 'g' of "gg"
	ActionJumpLastRow
	ActionJumpFirstColumn
	ActionJumpFirstNonEmptyColumn
	ActionJumpLastColumn
	ActionJumpNonEmptyUp
	ActionJumpNonEmptyDown
	ActionJumpNonEmptyLeft
	ActionJumpNonEmptyRight
	ActionPrefixG // first 'g' of "gg"

	// --- Cell operations ---
	ActionEditCell
	ActionCopyCell
	ActionCutCell
	ActionPasteCell
	ActionUndo
	ActionRedo

	// --- Sheets ---
	ActionPrevSheet
	ActionNextSheet

	// --- Modes ---
	ActionEnterCommandMode
	ActionSearchForward
	ActionSearchBackward
	ActionNextMatch
	ActionPrevMatch
	ActionClearSearch

	// --- Line input (edit, command and search modes) ---
	ActionInsertRune
	ActionDeleteCharBackward
	ActionDeleteCharForward
	ActionCursorLeft
	ActionCursorRight
	ActionCursorHome
	ActionCursorEnd
	ActionSubmit
	ActionCancel
)

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // ActionInsertRune
}
