package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/megamart/commerce-core/internal/app/commerce/contracts"
)

// File is a Persister backed by a single JSON file holding a key -> blob
// mapping, the closest durable analog of browser local storage. Values
// are stored base64-encoded so non-JSON blobs (the session token) round
// trip untouched. Writes go through a temp file and rename so a crash
// mid-write cannot corrupt the previous state.
type File struct {
	path string
}

// NewFile creates a file persister at the given path. The file is created
// lazily on first Set.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	return &File{path: filepath.Clean(path)}, nil
}

// Get returns the value stored under key or contracts.ErrKeyMissing.
func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := f.read()
	if err != nil {
		return nil, err
	}
	value, ok := entries[key]
	if !ok {
		return nil, contracts.ErrKeyMissing
	}
	return value, nil
}

// Set stores value under key.
func (f *File) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := f.read()
	if err != nil {
		return err
	}
	entries[key] = value
	return f.write(entries)
}

// Delete removes key entirely.
func (f *File) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.write(entries)
}

func (f *File) read() (map[string][]byte, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string][]byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	entries := map[string][]byte{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Unreadable file is treated the same as an absent one; the
		// next write replaces it wholesale.
		return map[string][]byte{}, nil
	}
	return entries, nil
}

func (f *File) write(entries map[string][]byte) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
