package storage

import (
	"slices"
	"sync"
)

// MemoryKV is a map-backed KV for tests and throwaway sessions. Values
// are copied on the way in and out, so callers cannot alias the stored
// bytes.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailPuts, when set, makes every Put return this error. Tests use
	// it to exercise the store's rollback path.
	FailPuts error
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get returns the stored value, or ok=false when the key is absent.
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(value), true, nil
}

// Put stores a copy of value under key.
func (m *MemoryKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPuts != nil {
		return m.FailPuts
	}
	m.data[key] = slices.Clone(value)
	return nil
}

// Close is a no-op.
func (m *MemoryKV) Close() error {
	return nil
}
