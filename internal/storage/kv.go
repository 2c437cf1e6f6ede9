package storage

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by KV.Get for a key that was never written.
var ErrNotFound = errors.New("storage: key not found")

// KV is a string-to-string store for small persisted values such as the
// high score and preferences.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Memory is an in-process KV. The zero value is ready to use.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

// Keys returns the number of stored keys.
func (m *Memory) Keys() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

type namespaced struct {
	kv     KV
	prefix string
}

// Namespace returns a view of kv where every key is prefixed with prefix and
// a slash. An empty prefix returns kv unchanged.
func Namespace(kv KV, prefix string) KV {
	if prefix == "" {
		return kv
	}
	return namespaced{kv: kv, prefix: prefix + "/"}
}

func (n namespaced) Get(key string) (string, error) { return n.kv.Get(n.prefix + key) }
func (n namespaced) Set(key, value string) error    { return n.kv.Set(n.prefix+key, value) }
