// Package kv provides file and in-memory implementations of types.KVStore.
package kv

import (
	"sync"

	"github.com/mesh-intelligence/dailies/pkg/types"
)

// Memory is a KVStore that keeps values in process memory. Values do not
// survive the process; it backs tests and the --ephemeral flag.
type Memory struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements types.KVStore.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, types.ErrInvalidKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, types.ErrStoreDetached
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put implements types.KVStore.
func (m *Memory) Put(key string, value []byte) error {
	if key == "" {
		return types.ErrInvalidKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return types.ErrStoreDetached
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements types.KVStore.
func (m *Memory) Delete(key string) error {
	if key == "" {
		return types.ErrInvalidKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return types.ErrStoreDetached
	}
	delete(m.data, key)
	return nil
}

// Close implements types.KVStore. Idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
