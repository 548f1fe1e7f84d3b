package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/plugin"
)

// RegisterAppCommands registers every built-in command.
func RegisterAppCommands(api API) {
	registerFileCommands(api)
	registerGridCommands(api)
	RegisterThemeCommands(api, api)

	register(api, func(args []string) error {
		api.SetStatusMessage("Commands: %s (or :<cell> to jump)", strings.Join(api.Commands(), ", "))
		return nil
	}, "help")
}

// register adds fn under each name, logging failures.
func register(api API, fn plugin.CommandFunc, names ...string) {
	for _, name := range names {
		if err := api.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

func registerFileCommands(api API) {
	register(api, func(args []string) error {
		save(api)
		return nil
	}, "w")

	register(api, func(args []string) error {
		if save(api) {
			api.Quit()
		}
		return nil
	}, "wq", "x")

	register(api, func(args []string) error {
		if api.Editor().Workbook().IsModified() {
			return errors.New("File has unsaved changes. Use :q! to force quit or :wq to save and quit.")
		}
		api.Quit()
		return nil
	}, "q")

	register(api, func(args []string) error {
		api.Quit()
		return nil
	}, "q!")
}

// save writes the workbook if it has changes and reports whether the
// workbook is now clean on disk.
func save(api API) bool {
	e := api.Editor()
	if !e.Workbook().IsModified() {
		e.Notify("No changes to save")
		return true
	}
	if err := api.SaveWorkbook(); err != nil {
		e.Notify(fmt.Sprintf("Save failed: %v", err))
		return false
	}
	e.Notify("File saved")
	return true
}

// RegisterThemeCommands registers :theme and :themes.
func RegisterThemeCommands(api API, themeAPI ThemeAPI) {
	register(api, func(args []string) error {
		if len(args) == 0 {
			themeAPI.SetStatusMessage("Current theme: %s", themeAPI.GetTheme().Name)
			return nil
		}

		themeName := strings.Join(args, " ")
		if err := themeAPI.SetTheme(themeName); err != nil {
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, strings.Join(themeAPI.ListThemes(), ", "))
		}
		themeAPI.SetStatusMessage("Theme set to: %s", themeName)
		return nil
	}, "theme")

	register(api, func(args []string) error {
		themeAPI.SetStatusMessage("Available themes: %s", strings.Join(themeAPI.ListThemes(), ", "))
		return nil
	}, "themes")
}
