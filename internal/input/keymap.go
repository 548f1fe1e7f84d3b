// Package input translates tcell key events into editor actions.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain runes to actions.
type RuneKeymap map[rune]Action

// ModKeymap maps keys pressed with modifiers.
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor decodes key events. Normal mode uses the grid bindings;
// the line-input modes use ProcessLineEvent.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with the default vim-style bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionJumpFirstColumn
	p.keymap[tcell.KeyEnd] = ActionJumpLastColumn
	p.keymap[tcell.KeyEnter] = ActionEditCell
	p.keymap[tcell.KeyCtrlR] = ActionRedo
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit
	p.keymap[tcell.KeyEscape] = ActionClearSearch

	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyUp] = ActionJumpNonEmptyUp
	ctrlMap[tcell.KeyDown] = ActionJumpNonEmptyDown
	ctrlMap[tcell.KeyLeft] = ActionJumpNonEmptyLeft
	ctrlMap[tcell.KeyRight] = ActionJumpNonEmptyRight
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	for r, a := range map[rune]Action{
		'h': ActionMoveLeft,
		'j': ActionMoveDown,
		'k': ActionMoveUp,
		'l': ActionMoveRight,
		'g': ActionPrefixG,
		'G': ActionJumpLastRow,
		'0': ActionJumpFirstColumn,
		'^': ActionJumpFirstNonEmptyColumn,
		'$': ActionJumpLastColumn,
		'i': ActionEditCell,
		'y': ActionCopyCell,
		'd': ActionCutCell,
		'p': ActionPasteCell,
		'u': ActionUndo,
		'[': ActionPrevSheet,
		']': ActionNextSheet,
		':': ActionEnterCommandMode,
		'/': ActionSearchForward,
		'?': ActionSearchBackward,
		'n': ActionNextMatch,
		'N': ActionPrevMatch,
	} {
		p.runeKeymap[r] = a
	}
}

// ProcessEvent decodes a key event using the grid bindings.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+letter keys carry ModCtrl themselves.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.runeKeymap[ev.Rune()]; ok {
			return ActionEvent{Action: action, Rune: ev.Rune()}
		}
	}
	return ActionEvent{Action: ActionUnknown}
}

// ProcessLineEvent decodes a key event for single-line text entry.
func (p *InputProcessor) ProcessLineEvent(ev *tcell.EventKey) ActionEvent {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionEvent{Action: ActionSubmit}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionEvent{Action: ActionCancel}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionEvent{Action: ActionDeleteCharBackward}
	case tcell.KeyDelete:
		return ActionEvent{Action: ActionDeleteCharForward}
	case tcell.KeyLeft:
		return ActionEvent{Action: ActionCursorLeft}
	case tcell.KeyRight:
		return ActionEvent{Action: ActionCursorRight}
	case tcell.KeyHome, tcell.KeyCtrlA:
		return ActionEvent{Action: ActionCursorHome}
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return ActionEvent{Action: ActionCursorEnd}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
		}
	}
	return ActionEvent{Action: ActionUnknown}
}
