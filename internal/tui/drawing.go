package tui

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/config"
	"github.com/bethropolis/tabula/internal/core"
	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/theme"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/bethropolis/tabula/internal/utils"
	"github.com/bethropolis/tabula/internal/workbook"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DrawGrid draws the column headers, row numbers and the visible cells of
// the active sheet. The bottom StatusBarHeight lines are left alone.
func DrawGrid(t *TUI, editor *core.Editor, activeTheme *theme.Theme) {
	if activeTheme == nil {
		logger.Warnf("DrawGrid called with nil theme, using built-in theme.")
		activeTheme = &theme.TabulaDark
	}

	width, height := t.Size()
	gridBottom := height - config.StatusBarHeight
	if width <= 0 || gridBottom <= config.ColumnHeaderHeight {
		return
	}

	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	for y := 0; y < gridBottom; y++ {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}

	cursor := editor.GetCursor()
	view := editor.Viewport
	rowHeader := editor.RowHeaderWidth()
	if rowHeader >= width {
		return
	}

	headerStyle := activeTheme.GetStyle(theme.StyleHeader)
	activeHeaderStyle := activeTheme.GetStyle(theme.StyleHeaderActive)

	// Corner.
	fill(t.screen, 0, 0, rowHeader, headerStyle)

	// Column headers.
	for col, x := view.Col, rowHeader; x < width; col++ {
		w := min(editor.ColumnWidth(col), width-x)
		style := headerStyle
		if col == cursor.Col {
			style = activeHeaderStyle
		}
		drawText(t.screen, x, 0, w, center(utils.IndexToColName(col), w), style)
		x += w
	}

	// Rows.
	sheet := editor.ActiveSheet()
	finder := editor.Finder()
	highlight := finder.HighlightEnabled()
	for y := config.ColumnHeaderHeight; y < gridBottom; y++ {
		row := view.Row + y - config.ColumnHeaderHeight

		style := headerStyle
		if row == cursor.Row {
			style = activeHeaderStyle
		}
		drawText(t.screen, 0, y, rowHeader, fmt.Sprintf("%*d ", rowHeader-1, row), style)

		for col, x := view.Col, rowHeader; x < width; col++ {
			w := min(editor.ColumnWidth(col), width-x)
			pos := types.CellPosition{Row: row, Col: col}
			cell := sheet.Cell(row, col)

			style := cellStyle(activeTheme, cell)
			switch {
			case pos == cursor:
				style = activeTheme.GetStyle(theme.StyleCursor)
			case highlight && finder.IsMatch(pos):
				style = activeTheme.GetStyle(theme.StyleSearchMatch)
			}
			drawText(t.screen, x, y, w, formatCell(cell, w), style)
			x += w
		}
	}
}

func cellStyle(activeTheme *theme.Theme, cell workbook.Cell) tcell.Style {
	switch {
	case cell.IsFormula:
		return activeTheme.GetStyle(theme.StyleCellFormula)
	case cell.EffectiveType() == workbook.CellNumber:
		return activeTheme.GetStyle(theme.StyleCellNumber)
	default:
		return activeTheme.GetStyle(theme.StyleCell)
	}
}

// formatCell fits a cell's value into width columns, keeping one trailing
// column as a separator. Numbers are right-aligned and long values end in "…".
func formatCell(cell workbook.Cell, width int) string {
	if width <= 1 {
		return runewidth.FillRight("", width)
	}
	inner := width - 1
	text := runewidth.Truncate(cell.Value, inner, "…")
	if cell.EffectiveType() == workbook.CellNumber && !cell.IsFormula {
		return runewidth.FillLeft(text, inner) + " "
	}
	return runewidth.FillRight(text, width)
}

func center(s string, width int) string {
	pad := (width - runewidth.StringWidth(s)) / 2
	if pad <= 0 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(runewidth.FillLeft(s, pad+runewidth.StringWidth(s)), width)
}

func fill(s tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

// drawText draws text at (x, y) one grapheme cluster at a time, clipped to
// maxWidth columns. Unused columns are filled with style.
func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := gr.Width()
		if used+w > maxWidth {
			break
		}
		if w == 0 {
			continue
		}
		s.SetContent(x+used, y, runes[0], runes[1:], style)
		used += w
	}
	fill(s, x+used, y, maxWidth-used, style)
}
