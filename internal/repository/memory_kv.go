package repository

import (
	"context"
	"path"
	"sync"

	"github.com/mansoorceksport/gymlogger/internal/domain"
)

// MemoryKVStore is an in-process domain.KeyValueStore. It backs unit tests
// and the app itself when no Redis address is configured (data then lives
// only for the process lifetime).
type MemoryKVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKVStore creates an empty in-memory key-value store.
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{data: make(map[string][]byte)}
}

func (m *MemoryKVStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryKVStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Keys matches the same glob syntax Redis uses for KEYS.
func (m *MemoryKVStore) Keys(_ context.Context, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for key := range m.data {
		if ok, err := path.Match(pattern, key); err == nil && ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
