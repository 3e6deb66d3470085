// Package persist provides Persister implementations over different local
// storage media: process memory, a JSON file, SQLite and Redis. All of
// them speak the same key -> JSON blob contract; stores never know which
// one they are writing through.
package persist

import (
	"context"

	"github.com/megamart/commerce-core/internal/app/commerce/contracts"
)

// Memory is an in-process Persister. It backs tests and the "memory"
// storage backend, where durability is not wanted.
type Memory struct {
	values map[string][]byte
}

// NewMemory creates an empty in-memory persister.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns the stored value or contracts.ErrKeyMissing.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	value, ok := m.values[key]
	if !ok {
		return nil, contracts.ErrKeyMissing
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of value under key.
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

// Delete removes key.
func (m *Memory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	delete(m.values, key)
	return nil
}

// Seed pre-populates a key, bypassing Set. Intended for tests that need
// to stage persisted state, including malformed blobs.
func (m *Memory) Seed(key string, value []byte) {
	m.values[key] = value
}

// Has reports whether a key is present. Intended for test assertions on
// erase-versus-write-empty behaviour.
func (m *Memory) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}
