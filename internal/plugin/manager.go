package plugin

import (
	"fmt"
	"sync"

	"github.com/bethropolis/tabula/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
// Plugins are initialized in registration order and shut down in reverse.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string
	api     EditorAPI
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance. Call it before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	m.order = append(m.order, name)
	logger.DebugTagf("plugin", "Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every registered plugin. A plugin
// that fails to initialize is logged and skipped.
func (m *Manager) InitializePlugins(api EditorAPI) {
	m.mu.Lock()
	m.api = api
	toInit := m.ordered()
	m.mu.Unlock()

	logger.Infof("Plugin Manager: Initializing %d plugins...", len(toInit))
	for _, p := range toInit {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", p.Name(), err)
			continue
		}
		logger.DebugTagf("plugin", "Plugin Manager: Initialized plugin '%s'", p.Name())
	}
}

// ShutdownPlugins calls Shutdown on every registered plugin, newest first.
func (m *Manager) ShutdownPlugins() {
	m.mu.RLock()
	toStop := m.ordered()
	m.mu.RUnlock()

	logger.Infof("Plugin Manager: Shutting down %d plugins...", len(toStop))
	for i := len(toStop) - 1; i >= 0; i-- {
		p := toStop[i]
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}

// Names returns the registered plugin names in registration order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

func (m *Manager) ordered() []Plugin {
	out := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.plugins[name])
	}
	return out
}
