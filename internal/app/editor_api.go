package app

import (
	"github.com/bethropolis/tabula/internal/commands"
	"github.com/bethropolis/tabula/internal/core"
	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/fileio"
	"github.com/bethropolis/tabula/internal/plugin"
	"github.com/bethropolis/tabula/internal/theme"
	"github.com/bethropolis/tabula/internal/types"
	"github.com/gdamore/tcell/v2"
)

var (
	_ plugin.EditorAPI = (*appEditorAPI)(nil)
	_ commands.API     = (*appEditorAPI)(nil)
)

// appEditorAPI is the surface plugins and built-in commands see.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Workbook Access ---

func (api *appEditorAPI) GetFilePath() string {
	return api.app.editor.Workbook().FilePath()
}

func (api *appEditorAPI) IsModified() bool {
	return api.app.editor.Workbook().IsModified()
}

func (api *appEditorAPI) GetActiveSheetName() string {
	return api.app.editor.Workbook().ActiveSheetName()
}

func (api *appEditorAPI) GetSheetBounds() (rows, cols int) {
	sheet := api.app.editor.ActiveSheet()
	return sheet.MaxRows, sheet.MaxCols
}

func (api *appEditorAPI) GetCellValue(row, col int) string {
	return api.app.editor.ActiveSheet().Cell(row, col).Value
}

func (api *appEditorAPI) WriteCopy(path string) ([]string, error) {
	return fileio.SaveAs(api.app.editor.Workbook(), path)
}

func (api *appEditorAPI) SaveWorkbook() error {
	return api.app.SaveWorkbook()
}

func (api *appEditorAPI) Editor() *core.Editor {
	return api.app.editor
}

// --- Cursor ---

func (api *appEditorAPI) GetCursor() types.CellPosition {
	return api.app.editor.GetCursor()
}

func (api *appEditorAPI) SetCursor(pos types.CellPosition) {
	api.app.editor.SetCursor(pos)
	api.app.requestRedraw()
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Commands ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

func (api *appEditorAPI) Commands() []string {
	return api.app.modeHandler.Commands()
}

func (api *appEditorAPI) Quit() {
	api.app.modeHandler.Quit()
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.showMessage(format, args...)
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.GetTheme().GetStyle(styleName)
}

func (api *appEditorAPI) SetTheme(name string) error {
	return api.app.SetTheme(name)
}

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.GetTheme()
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}

func (api *appEditorAPI) RunOnMainLoop(fn func()) {
	api.app.RunOnMainLoop(fn)
}
