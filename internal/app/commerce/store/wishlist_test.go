package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megamart/commerce-core/internal/app/commerce/domain"
	"github.com/megamart/commerce-core/internal/pkg/logx"
	"github.com/megamart/commerce-core/internal/pkg/persist"
)

func entry(id string, price int64) domain.WishlistEntry {
	return domain.WishlistEntry{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Image:    "https://example.com/" + id + ".jpg",
		InStock:  true,
		Category: domain.CategoryFashion,
		Rating:   4.2,
	}
}

func TestWishlist_Add(t *testing.T) {
	ctx := context.Background()
	wl := NewWishlist(ctx, persist.NewMemory(), logx.Nop())

	t.Run("repeated add is a no-op", func(t *testing.T) {
		wl.Add(ctx, entry("p1", 100))
		wl.Add(ctx, entry("p1", 100))

		require.Len(t, wl.Entries(), 1)
	})

	t.Run("first write wins on payload", func(t *testing.T) {
		changed := entry("p1", 100)
		changed.Name = "Renamed"
		wl.Add(ctx, changed)

		entries := wl.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "Product p1", entries[0].Name)
	})

	t.Run("distinct ids accumulate in order", func(t *testing.T) {
		wl.Add(ctx, entry("p2", 150))
		wl.Add(ctx, entry("p3", 999))

		entries := wl.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "p1", entries[0].ID)
		assert.Equal(t, "p2", entries[1].ID)
		assert.Equal(t, "p3", entries[2].ID)
	})
}

func TestWishlist_Remove(t *testing.T) {
	ctx := context.Background()
	wl := NewWishlist(ctx, persist.NewMemory(), logx.Nop())
	wl.Add(ctx, entry("p1", 100))
	wl.Add(ctx, entry("p2", 150))

	wl.Remove(ctx, "p1")
	require.Len(t, wl.Entries(), 1)
	assert.False(t, wl.Contains("p1"))
	assert.True(t, wl.Contains("p2"))

	t.Run("unknown id is a no-op", func(t *testing.T) {
		wl.Remove(ctx, "missing")
		assert.Len(t, wl.Entries(), 1)
	})
}

func TestWishlist_Clear(t *testing.T) {
	ctx := context.Background()
	mem := persist.NewMemory()
	wl := NewWishlist(ctx, mem, logx.Nop())
	wl.Add(ctx, entry("p1", 100))
	require.True(t, mem.Has(KeyWishlist))

	wl.Clear(ctx)
	assert.Empty(t, wl.Entries())
	assert.False(t, mem.Has(KeyWishlist), "clear erases the key")
}

func TestWishlist_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := persist.NewMemory()

	first := NewWishlist(ctx, mem, logx.Nop())
	first.Add(ctx, entry("p1", 100))
	first.Add(ctx, entry("p2", 150))

	second := NewWishlist(ctx, mem, logx.Nop())
	assert.Equal(t, first.Entries(), second.Entries())
}

func TestWishlist_RehydrateMalformedState(t *testing.T) {
	ctx := context.Background()

	t.Run("unparsable blob starts empty", func(t *testing.T) {
		mem := persist.NewMemory()
		mem.Seed(KeyWishlist, []byte("[]]"))

		wl := NewWishlist(ctx, mem, logx.Nop())
		assert.Empty(t, wl.Entries())
	})

	t.Run("duplicate ids deduplicated on load", func(t *testing.T) {
		mem := persist.NewMemory()
		mem.Seed(KeyWishlist, []byte(`[
			{"id":"p1","name":"First","price":100},
			{"id":"p1","name":"Second","price":200}
		]`))

		wl := NewWishlist(ctx, mem, logx.Nop())
		entries := wl.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "First", entries[0].Name)
	})
}

func TestWishlist_EntriesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	wl := NewWishlist(ctx, persist.NewMemory(), logx.Nop())
	wl.Add(ctx, entry("p1", 100))

	entries := wl.Entries()
	entries[0].Name = "mutated"

	assert.Equal(t, "Product p1", wl.Entries()[0].Name)
}
