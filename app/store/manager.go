package store

import (
	"sync"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/storage"
)

// Manager hands out one Store per session. Stores are created lazily on
// first use and cached; each persists under "<base>-<session-id>", except
// the default session which keeps the bare base slot name the storefront
// has always used. The suffix form keeps every slot a sibling of the base
// one, so the local driver never needs a directory named like the base file.
type Manager struct {
	mu     sync.Mutex
	base   string
	blobs  storage.Blobs
	stores map[string]*Store
}

// NewManager creates a Manager persisting sessions under base.
func NewManager(base string, blobs storage.Blobs) *Manager {
	return &Manager{
		base:   base,
		blobs:  blobs,
		stores: make(map[string]*Store),
	}
}

// For returns the Store for sessionID, creating (and rehydrating) it on
// first use. An empty sessionID maps to the default session.
func (m *Manager) For(sessionID string) *Store {
	slot := m.base
	if sessionID != "" {
		slot = m.base + "-" + sessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[slot]; ok {
		return s
	}
	s := New(slot, m.blobs)
	m.stores[slot] = s
	return s
}

// Default returns the store for the default session.
func (m *Manager) Default() *Store { return m.For("") }
