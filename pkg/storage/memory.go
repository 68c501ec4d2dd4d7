package storage

import (
	"strings"
	"sync"
)

// Memory is an in-process blob store. The zero value is not usable; create
// one with NewMemory. Safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Put(name string, content []byte) error {
	cp := make([]byte, len(content))
	copy(cp, content)

	m.mu.Lock()
	m.blobs[name] = cp
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(name string) ([]byte, error) {
	m.mu.RLock()
	data, ok := m.blobs[name]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *Memory) Exists(name string) bool {
	m.mu.RLock()
	_, ok := m.blobs[name]
	m.mu.RUnlock()
	return ok
}

func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	delete(m.blobs, name)
	m.mu.Unlock()
	return nil
}

func (m *Memory) List(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.blobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}
