package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megamart/commerce-core/internal/app/commerce/contracts"
)

// TestPersisterContract runs the same behavioural checks against every
// backend: they must be interchangeable behind the Persister port.
func TestPersisterContract(t *testing.T) {
	backends := map[string]func(t *testing.T) contracts.Persister{
		"memory": func(t *testing.T) contracts.Persister {
			return NewMemory()
		},
		"file": func(t *testing.T) contracts.Persister {
			p, err := NewFile(filepath.Join(t.TempDir(), "state.json"))
			require.NoError(t, err)
			return p
		},
		"sqlite": func(t *testing.T) contracts.Persister {
			p, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = p.Close() })
			return p
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("get missing key", func(t *testing.T) {
				p := open(t)
				_, err := p.Get(ctx, "absent")
				assert.ErrorIs(t, err, contracts.ErrKeyMissing)
			})

			t.Run("set then get", func(t *testing.T) {
				p := open(t)
				require.NoError(t, p.Set(ctx, "cart", []byte(`[{"id":"p1"}]`)))

				got, err := p.Get(ctx, "cart")
				require.NoError(t, err)
				assert.Equal(t, []byte(`[{"id":"p1"}]`), got)
			})

			t.Run("set overwrites", func(t *testing.T) {
				p := open(t)
				require.NoError(t, p.Set(ctx, "k", []byte("one")))
				require.NoError(t, p.Set(ctx, "k", []byte("two")))

				got, err := p.Get(ctx, "k")
				require.NoError(t, err)
				assert.Equal(t, []byte("two"), got)
			})

			t.Run("delete erases", func(t *testing.T) {
				p := open(t)
				require.NoError(t, p.Set(ctx, "k", []byte("v")))
				require.NoError(t, p.Delete(ctx, "k"))

				_, err := p.Get(ctx, "k")
				assert.ErrorIs(t, err, contracts.ErrKeyMissing)
			})

			t.Run("delete absent key is a no-op", func(t *testing.T) {
				p := open(t)
				assert.NoError(t, p.Delete(ctx, "never-set"))
			})

			t.Run("keys are independent", func(t *testing.T) {
				p := open(t)
				require.NoError(t, p.Set(ctx, "a", []byte("1")))
				require.NoError(t, p.Set(ctx, "b", []byte("2")))
				require.NoError(t, p.Delete(ctx, "a"))

				got, err := p.Get(ctx, "b")
				require.NoError(t, err)
				assert.Equal(t, []byte("2"), got)
			})
		})
	}
}

func TestFile_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "wishlist", []byte(`[]`)))

	second, err := NewFile(path)
	require.NoError(t, err)
	got, err := second.Get(ctx, "wishlist")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestFile_CorruptFileRecovered(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	p, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, p.Set(ctx, "k", []byte("v")))

	// Clobber the file; reads must behave as empty and the next write
	// must recover it.
	require.NoError(t, writeRaw(path, []byte("###")))
	_, err = p.Get(ctx, "k")
	assert.ErrorIs(t, err, contracts.ErrKeyMissing)

	require.NoError(t, p.Set(ctx, "k2", []byte("v2")))
	got, err := p.Get(ctx, "k2")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func writeRaw(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "cart", []byte(`[{"id":"p1","quantity":2}]`)))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()
	got, err := second.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"p1","quantity":2}]`), got)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	assert.Error(t, err)
}

func TestPersister_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewMemory()
	_, err := p.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, p.Set(ctx, "k", nil), context.Canceled)
	assert.ErrorIs(t, p.Delete(ctx, "k"), context.Canceled)
}
