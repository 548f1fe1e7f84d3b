// Package clipboard holds the cell register used by copy, cut and paste.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/tabula/internal/logger"
)

// Manager handles clipboard operations. The internal register is always
// kept; in system mode the OS clipboard is written alongside it and read
// first on paste.
type Manager struct {
	text   string
	filled bool
	system bool

	writeAll func(string) error
	readAll  func() (string, error)
}

// NewManager creates a clipboard. useSystem mirrors copies to the OS clipboard.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		system:   useSystem && !clipboard.Unsupported,
		writeAll: clipboard.WriteAll,
		readAll:  clipboard.ReadAll,
	}
}

// Set stores a cell value in the register.
func (m *Manager) Set(text string) {
	m.text = text
	m.filled = true
	logger.Debugf("Clipboard: Stored %d bytes", len(text))

	if !m.system {
		return
	}
	if err := m.writeAll(text); err != nil {
		logger.Warnf("Clipboard: System clipboard write failed: %v", err)
	}
}

// Get returns the value to paste. In system mode a readable OS clipboard
// wins; otherwise the internal register is used.
func (m *Manager) Get() (string, bool) {
	if m.system {
		text, err := m.readAll()
		if err == nil && text != "" {
			return text, true
		}
		if err != nil {
			logger.Warnf("Clipboard: System clipboard read failed: %v", err)
		}
	}
	return m.text, m.filled
}

// HasContent reports whether a paste would produce a value.
func (m *Manager) HasContent() bool {
	_, ok := m.Get()
	return ok
}

// Clear empties the internal register.
func (m *Manager) Clear() {
	m.text = ""
	m.filled = false
}

// UsesSystem reports whether the OS clipboard is in use.
func (m *Manager) UsesSystem() bool {
	return m.system
}
