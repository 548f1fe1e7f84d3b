package event

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Grid events
	TypeGridModified  // cell content or grid shape changed
	TypeCursorMoved   // selected cell changed
	TypeSheetSwitched // active sheet changed
	TypeNotification  // a status message was raised

	// File events
	TypeWorkbookLoaded
	TypeWorkbookSaved

	// Input
	TypeKeyPressed

	// Lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeGridModified:
		return "GridModified"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeSheetSwitched:
		return "SheetSwitched"
	case TypeNotification:
		return "Notification"
	case TypeWorkbookLoaded:
		return "WorkbookLoaded"
	case TypeWorkbookSaved:
		return "WorkbookSaved"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// GridModifiedData names the sheet whose grid changed.
type GridModifiedData struct {
	SheetIndex int
	SheetName  string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.CellPosition
}

// SheetSwitchedData carries the sheet that became active.
type SheetSwitchedData struct {
	Index int
	Name  string
}

// NotificationData carries one status message.
type NotificationData struct {
	Message string
}

// WorkbookLoadedData contains info about the loaded workbook.
type WorkbookLoadedData struct {
	FilePath string
}

// WorkbookSavedData contains info about the saved workbook.
type WorkbookSavedData struct {
	FilePath string
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData is sent just before shutdown.
type AppQuitData struct{}

// AppReadyData is sent once the UI is up.
type AppReadyData struct{}
