package app

import (
	"fmt"

	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/plugin"
	"github.com/bethropolis/tabula/plugins/autosave"
	"github.com/bethropolis/tabula/plugins/cellstats"
)

// registerPlugins registers every built-in plugin with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	builtins := []plugin.Plugin{
		cellstats.New(),
		autosave.New(),
	}

	var firstErr error
	for _, p := range builtins {
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrapped := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrapped)
			if firstErr == nil {
				firstErr = wrapped
			}
		}
	}
	return firstErr
}
