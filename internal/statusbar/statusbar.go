// Package statusbar renders the bottom line: file and sheet, the selected
// cell, the input mode, the line being typed and the latest message.
package statusbar

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/tabula/internal/config"
	"github.com/bethropolis/tabula/internal/theme"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/bethropolis/tabula/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	StyleMode      tcell.Style
	StyleInput     tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleMode:      tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true),
		StyleInput:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		MessageTimeout: config.MessageTimeout,
	}
}

// ConfigFromTheme takes the status styles from t.
func ConfigFromTheme(t *theme.Theme) Config {
	cfg := DefaultConfig()
	if t == nil {
		return cfg
	}
	cfg.StyleDefault = t.GetStyle(theme.StyleStatusBar)
	cfg.StyleModified = t.GetStyle(theme.StyleStatusBarModified)
	cfg.StyleMessage = t.GetStyle(theme.StyleStatusBarMessage)
	cfg.StyleMode = t.GetStyle(theme.StyleStatusBarMode)
	cfg.StyleInput = t.GetStyle(theme.StyleStatusBarInput)
	return cfg
}

// segment is a run of text drawn in one style.
type segment struct {
	text  string
	style tcell.Style
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	isModified bool
	sheetName  string
	sheetIndex int
	sheetCount int
	cursorPos  types.CellPosition
	editorMode string

	inputActive bool
	inputPrefix string
	inputText   []rune
	inputCursor int

	tempMessage     string
	tempMessageTime time.Time

	now func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(cfg Config) *StatusBar {
	return &StatusBar{
		config:    cfg,
		cursorPos: types.Origin,
		now:       time.Now,
	}
}

// SetConfig replaces the styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(cfg Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = cfg
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetSheetInfo updates the active sheet shown. index is 0-based.
func (sb *StatusBar) SetSheetInfo(name string, index, count int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.sheetName = name
	sb.sheetIndex = index
	sb.sheetCount = count
}

// SetCursorInfo updates the selected cell shown.
func (sb *StatusBar) SetCursorInfo(pos types.CellPosition) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetEditorMode updates the displayed input mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// SetInputLine shows a line being typed. cursor is a rune index into text.
// While an input line is shown it replaces the rest of the bar.
func (sb *StatusBar) SetInputLine(prefix, text string, cursor int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.inputActive = true
	sb.inputPrefix = prefix
	sb.inputText = []rune(text)
	sb.inputCursor = min(max(cursor, 0), len(sb.inputText))
}

// ClearInputLine hides the input line.
func (sb *StatusBar) ClearInputLine() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.inputActive = false
	sb.inputPrefix = ""
	sb.inputText = nil
	sb.inputCursor = 0
}

// InputCursor returns the screen column of the input cursor, if an input
// line is shown and the cursor fits in width.
func (sb *StatusBar) InputCursor(width int) (int, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if !sb.inputActive {
		return 0, false
	}
	x := uniseg.StringWidth(sb.inputPrefix + string(sb.inputText[:sb.inputCursor]))
	if x >= width {
		return 0, false
	}
	return x, true
}

// Text returns the line as it would currently be drawn, without styles.
func (sb *StatusBar) Text() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	text := ""
	for _, seg := range sb.segments() {
		text += seg.text
	}
	return text
}

// segments builds the styled runs for the current state. The caller holds
// the write lock since an expired message is cleared here.
func (sb *StatusBar) segments() []segment {
	if sb.inputActive {
		return []segment{{sb.inputPrefix + string(sb.inputText), sb.config.StyleInput}}
	}

	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return []segment{{sb.tempMessage, sb.config.StyleMessage}}
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var segs []segment
	if sb.editorMode != "" {
		segs = append(segs, segment{fmt.Sprintf(" %s ", sb.editorMode), sb.config.StyleMode})
	}

	name := "[No Name]"
	if sb.filePath != "" {
		name = filepath.Base(sb.filePath)
	}
	segs = append(segs, segment{" " + name, sb.config.StyleDefault})
	if sb.isModified {
		segs = append(segs, segment{" [+]", sb.config.StyleModified})
	}

	sheet := ""
	if sb.sheetName != "" {
		sheet = fmt.Sprintf(" | %s (%d/%d)", sb.sheetName, sb.sheetIndex+1, sb.sheetCount)
	}
	segs = append(segs, segment{fmt.Sprintf("%s | %s", sheet, utils.CellReference(sb.cursorPos)), sb.config.StyleDefault})
	return segs
}

// Draw renders the status bar on the last screen line using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	segs := sb.segments()
	fill := sb.config.StyleDefault
	if sb.inputActive {
		fill = sb.config.StyleInput
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, fill)
	}

	x := 0
	for _, seg := range segs {
		gr := uniseg.NewGraphemes(seg.text)
		for gr.Next() {
			w := gr.Width()
			if x+w > width {
				return
			}
			runes := gr.Runes()
			screen.SetContent(x, y, runes[0], runes[1:], seg.style)
			x += w
		}
	}
}
