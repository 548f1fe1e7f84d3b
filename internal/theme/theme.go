// Package theme maps the grid's named UI elements to tcell styles.
package theme

import (
	"strings"

	"github.com/bethropolis/tabula/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the renderer and status bar.
const (
	StyleDefault           = "Default"
	StyleCell              = "Cell"
	StyleCellNumber        = "Cell.number"
	StyleCellFormula       = "Cell.formula"
	StyleCursor            = "Cursor"
	StyleHeader            = "Header"
	StyleHeaderActive      = "Header.active"
	StyleSearchMatch       = "SearchMatch"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarMode     = "StatusBarMode"
	StyleStatusBarInput    = "StatusBarInput"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name. A dotted name falls back to its base
// ("Header.active" -> "Header"), then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dot := strings.Index(name, "."); dot != -1 {
		if style, ok := t.Styles[name[:dot]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// TabulaDark is the built-in theme.
var TabulaDark = newTabulaDark()

func newTabulaDark() Theme {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	blue := tcell.NewHexColor(0x61afef)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	bar := tcell.StyleDefault.Background(bg).Foreground(fg)

	return Theme{
		Name:   "Tabula Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:      base,
			StyleCell:         base,
			StyleCellNumber:   base.Foreground(orange),
			StyleCellFormula:  base.Foreground(green).Italic(true),
			StyleCursor:       base.Reverse(true),
			StyleHeader:       base.Foreground(muted),
			StyleHeaderActive: base.Foreground(blue).Bold(true),
			StyleSearchMatch:  tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),

			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(yellow),
			StyleStatusBarMessage:  bar.Bold(true),
			StyleStatusBarMode:     bar.Foreground(blue).Bold(true),
			StyleStatusBarInput:    base,
		},
	}
}
