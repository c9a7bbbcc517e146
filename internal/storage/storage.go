// Package storage provides the key-value persistence collaborator. Values
// are stored as JSON documents under string keys. Reads tolerate missing
// keys and malformed stored values: both leave the caller's destination at
// its default, and a parse failure is logged rather than propagated.
package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// Store is the key-value persistence boundary.
type Store interface {
	// Get unmarshals the value under key into dest. It returns false when
	// the key is absent or the stored value cannot be decoded; dest is left
	// untouched in both cases. The error return is reserved for transport
	// failures (e.g. the database being unreachable), never parse failures.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value interface{}) error

	// Remove deletes the value under key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

// Memory is an in-process Store used for demo mode and tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

// Remove implements Store.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Ping implements Store. An in-memory store is always reachable.
func (m *Memory) Ping(_ context.Context) error {
	return nil
}

// SetRaw stores a raw payload without JSON encoding. Test helper for
// exercising malformed-value recovery.
func (m *Memory) SetRaw(key string, raw []byte) {
	m.mu.Lock()
	m.data[key] = append([]byte(nil), raw...)
	m.mu.Unlock()
}
