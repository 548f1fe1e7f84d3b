package event

import (
	"sync"

	"github.com/bethropolis/tabula/internal/logger"
)

// Handler receives a dispatched event. The return value reports whether the
// event was consumed; dispatch currently ignores it.
type Handler func(e Event) bool

// Manager handles event subscriptions and synchronous dispatch.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for eventType.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Event Manager: Handler subscribed to %v", eventType)
}

// Dispatch sends an event to every handler registered for its type, in
// subscription order, on the caller's goroutine.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	handlers := append([]Handler(nil), m.handlers[eventType]...)
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	logger.DebugTagf("event", "Event Manager: Dispatching %v to %d handler(s)", eventType, len(handlers))
	e := Event{Type: eventType, Data: data}
	for _, handler := range handlers {
		handler(e)
	}
}
