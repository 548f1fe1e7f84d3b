// Package commands registers the built-in `:` commands.
package commands

import (
	"github.com/bethropolis/tabula/internal/core"
	"github.com/bethropolis/tabula/internal/plugin"
	"github.com/bethropolis/tabula/internal/theme"
)

// ThemeAPI is the theme access the :theme commands need.
type ThemeAPI interface {
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
	SetStatusMessage(format string, args ...interface{})
}

// API is what the built-in commands need from the app.
type API interface {
	ThemeAPI
	RegisterCommand(name string, cmdFunc plugin.CommandFunc) error
	Commands() []string
	Editor() *core.Editor
	// SaveWorkbook writes the workbook to its file and marks it saved.
	SaveWorkbook() error
	Quit()
}
