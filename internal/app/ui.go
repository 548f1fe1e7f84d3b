package app

import (
	"time"

	"github.com/bethropolis/tabula/internal/config"
	"github.com/bethropolis/tabula/internal/tui"
)

// drawEditor redraws the grid and the status bar.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	width, height := a.tuiManager.Size()
	a.tuiManager.Clear()
	tui.DrawGrid(a.tuiManager, a.editor, a.GetTheme())
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)

	x, visible := a.statusBar.InputCursor(width)
	a.tuiManager.ShowCursor(x, height-config.StatusBarHeight, visible)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	wb := a.editor.Workbook()
	a.statusBar.SetFileInfo(wb.FilePath(), wb.IsModified())
	a.statusBar.SetSheetInfo(wb.ActiveSheetName(), wb.ActiveSheetIndex(), wb.SheetCount())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().String())
}

// resize tells the editor how much room the grid has.
func (a *App) resize() {
	width, height := a.tuiManager.Size()
	a.editor.SetViewSize(width, height-config.ColumnHeaderHeight-config.StatusBarHeight)
}

// showMessage sets a temporary status message and redraws once it expires.
func (a *App) showMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	time.AfterFunc(config.MessageTimeout+10*time.Millisecond, a.requestRedraw)
	a.requestRedraw()
}

// requestRedraw sends a redraw signal non-blockingly. Safe from any goroutine.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}
