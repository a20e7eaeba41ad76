// Package kv defines the small key/value storage the session data lives in,
// plus an in-process implementation. Redis and Postgres implementations live
// in the session and db packages.
package kv

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("kv: key not found")

// Store is a string-to-string mapping. Values are opaque text (JSON in practice).
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Memory keeps entries in a map for the life of the process.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}

// Delete removes key; deleting an absent key is not an error.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error { return nil }
