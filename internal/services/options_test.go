package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megamart/commerce-core/internal/app/commerce/domain"
	"github.com/megamart/commerce-core/internal/config"
)

func testConfig(backend, path string) *config.Config {
	return &config.Config{
		Env:           "testing",
		SessionSecret: "test-secret",
		Storage:       config.Storage{Backend: backend, Path: path},
	}
}

func TestNewServiceOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("memory backend wires all stores", func(t *testing.T) {
		opts, err := NewServiceOptions(ctx, testConfig(config.BackendMemory, ""))
		require.NoError(t, err)
		defer opts.Close()

		assert.NotNil(t, opts.Catalog)
		assert.NotNil(t, opts.Cart)
		assert.NotNil(t, opts.Wishlist)
		assert.NotNil(t, opts.Session)
	})

	t.Run("logout hook erases cart but not wishlist", func(t *testing.T) {
		opts, err := NewServiceOptions(ctx, testConfig(config.BackendMemory, ""))
		require.NoError(t, err)
		defer opts.Close()

		_, err = opts.Session.Login(ctx, "demo@example.com", "Demo")
		require.NoError(t, err)
		opts.Cart.AddItem(ctx, domain.ProductSummary{ID: "p1", Name: "P1", Price: 100})
		opts.Wishlist.Add(ctx, domain.WishlistEntry{ID: "p2", Name: "P2", Price: 150})

		opts.Session.Logout(ctx)
		assert.Empty(t, opts.Cart.Lines())
		assert.Len(t, opts.Wishlist.Entries(), 1)
	})

	t.Run("sqlite backend opens a database file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "megamart.db")
		opts, err := NewServiceOptions(ctx, testConfig(config.BackendSQLite, path))
		require.NoError(t, err)
		require.NoError(t, opts.Close())
	})

	t.Run("unknown backend fails", func(t *testing.T) {
		_, err := NewServiceOptions(ctx, testConfig("floppy", ""))
		assert.Error(t, err)
	})
}
