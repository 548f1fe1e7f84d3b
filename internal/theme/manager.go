package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/tabula/internal/logger"
)

// Manager holds loaded themes and the active one.
type Manager struct {
	themes      map[string]*Theme // keyed by lowercase name
	activeTheme *Theme
	themesDir   string
	mutex       sync.RWMutex
}

// NewManager creates a manager holding the built-in theme plus every .toml
// file in themesDir. An empty themesDir loads only the built-in theme.
func NewManager(themesDir string) *Manager {
	builtin := TabulaDark
	mgr := &Manager{
		themes:      map[string]*Theme{strings.ToLower(builtin.Name): &builtin},
		activeTheme: &builtin,
		themesDir:   themesDir,
	}

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}
	logger.Infof("Initial active theme set to: %s", mgr.activeTheme.Name)
	return mgr
}

// LoadThemesFromDir loads every .toml file in the themes directory. A
// missing directory is not an error.
func (m *Manager) LoadThemesFromDir() error {
	if m.themesDir == "" {
		return errors.New("theme directory path is not set")
	}

	files, err := os.ReadDir(m.themesDir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infof("Theme directory '%s' does not exist. No custom themes loaded.", m.themesDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	loaded := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		if _, err := m.LoadFile(filepath.Join(m.themesDir, file.Name())); err != nil {
			logger.Warnf("Failed to load theme: %v", err)
			continue
		}
		loaded++
	}
	logger.Infof("Loaded %d custom themes.", loaded)
	return nil
}

// LoadFile adds the theme in path, replacing any theme of the same name.
func (m *Manager) LoadFile(path string) (*Theme, error) {
	t, err := LoadThemeFromFile(path)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok {
		logger.Warnf("Theme '%s' from '%s' overrides existing theme '%s'", t.Name, path, existing.Name)
	}
	m.themes[key] = t
	return t, nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme activates a theme by name, ignoring case.
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	t, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != t {
		m.activeTheme = t
		logger.Infof("Active theme set to: %s", t.Name)
	}
	return nil
}

// ListThemes returns the loaded theme names, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
