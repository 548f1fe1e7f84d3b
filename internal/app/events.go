package app

import (
	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/logger"
)

// handleNotification shows editor notifications in the status bar.
func (a *App) handleNotification(e event.Event) bool {
	if data, ok := e.Data.(event.NotificationData); ok {
		a.showMessage("%s", data.Message)
	}
	return false
}

func (a *App) handleWorkbookSaved(e event.Event) bool {
	if data, ok := e.Data.(event.WorkbookSavedData); ok {
		logger.DebugTagf("app", "Workbook saved to %s", data.FilePath)
	}
	a.requestRedraw()
	return false
}
