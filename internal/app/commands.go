package app

import (
	"github.com/bethropolis/tabula/internal/commands"
	"github.com/bethropolis/tabula/internal/logger"
)

// registerCommands registers the built-in `:` commands.
func registerCommands(a *App) {
	commands.RegisterAppCommands(a.editorAPI)
	logger.DebugTagf("app", "Registered %d commands", len(a.modeHandler.Commands()))
}
