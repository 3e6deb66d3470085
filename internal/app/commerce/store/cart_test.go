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

func summary(id string, price int64) domain.ProductSummary {
	return domain.ProductSummary{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Image:    "https://example.com/" + id + ".jpg",
		InStock:  true,
		Category: domain.CategoryElectronics,
	}
}

// assertInvariant checks the core cart guarantee: derived totals always
// equal their recomputation from the line set.
func assertInvariant(t *testing.T, cart *Cart) {
	t.Helper()
	lines := cart.Lines()
	assert.Equal(t, domain.CartTotal(lines), cart.Total())
	assert.Equal(t, domain.CartItemCount(lines), cart.ItemCount())
}

func TestCart_AddItem(t *testing.T) {
	ctx := context.Background()
	cart := NewCart(ctx, persist.NewMemory(), logx.Nop())

	t.Run("adding same product twice merges into one line", func(t *testing.T) {
		cart.AddItem(ctx, summary("p1", 100))
		cart.AddItem(ctx, summary("p1", 100))

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, int64(200), cart.Total())
		assert.Equal(t, 2, cart.ItemCount())
	})

	t.Run("price is frozen at add time", func(t *testing.T) {
		repriced := summary("p1", 99999)
		cart.AddItem(ctx, repriced)

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(100), lines[0].Price, "later price not re-synced")
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("distinct products get distinct lines", func(t *testing.T) {
		cart.AddItem(ctx, summary("p2", 150))
		assert.Len(t, cart.Lines(), 2)
	})

	t.Run("out-of-stock products are still accepted", func(t *testing.T) {
		// Stock enforcement is the caller's precondition, not the
		// store's.
		oos := summary("p3", 500)
		oos.InStock = false
		cart.AddItem(ctx, oos)
		assert.Len(t, cart.Lines(), 3)
	})

	assertInvariant(t, cart)
}

func TestCart_RemoveItem(t *testing.T) {
	ctx := context.Background()
	cart := NewCart(ctx, persist.NewMemory(), logx.Nop())
	cart.AddItem(ctx, summary("p1", 100))
	cart.AddItem(ctx, summary("p2", 150))

	cart.RemoveItem(ctx, "p1")
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, "p2", cart.Lines()[0].ID)
	assertInvariant(t, cart)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		cart.RemoveItem(ctx, "missing")
		assert.Len(t, cart.Lines(), 1)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the exact quantity", func(t *testing.T) {
		cart := NewCart(ctx, persist.NewMemory(), logx.Nop())
		cart.AddItem(ctx, summary("p1", 100))

		cart.SetQuantity(ctx, "p1", 5)
		require.Len(t, cart.Lines(), 1)
		assert.Equal(t, 5, cart.Lines()[0].Quantity)
		assert.Equal(t, int64(500), cart.Total())
		assertInvariant(t, cart)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		cart := NewCart(ctx, persist.NewMemory(), logx.Nop())
		cart.AddItem(ctx, summary("p1", 100))

		cart.SetQuantity(ctx, "p1", 0)
		assert.Empty(t, cart.Lines())
		assert.Equal(t, int64(0), cart.Total())
		assert.Equal(t, 0, cart.ItemCount())
	})

	t.Run("negative quantity removes the line", func(t *testing.T) {
		cart := NewCart(ctx, persist.NewMemory(), logx.Nop())
		cart.AddItem(ctx, summary("p1", 100))

		cart.SetQuantity(ctx, "p1", -3)
		assert.Empty(t, cart.Lines())
		assert.Equal(t, int64(0), cart.Total())
		assert.Equal(t, 0, cart.ItemCount())
	})

	t.Run("set-to-zero equals remove", func(t *testing.T) {
		mem1, mem2 := persist.NewMemory(), persist.NewMemory()
		c1 := NewCart(ctx, mem1, logx.Nop())
		c2 := NewCart(ctx, mem2, logx.Nop())
		for _, c := range []*Cart{c1, c2} {
			c.AddItem(ctx, summary("p1", 100))
			c.AddItem(ctx, summary("p2", 150))
		}

		c1.SetQuantity(ctx, "p1", 0)
		c2.RemoveItem(ctx, "p1")
		assert.Equal(t, c2.Lines(), c1.Lines())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		cart := NewCart(ctx, persist.NewMemory(), logx.Nop())
		cart.SetQuantity(ctx, "missing", 3)
		assert.Empty(t, cart.Lines())
	})
}

func TestCart_Clear(t *testing.T) {
	ctx := context.Background()
	mem := persist.NewMemory()
	cart := NewCart(ctx, mem, logx.Nop())
	cart.AddItem(ctx, summary("p1", 100))
	require.True(t, mem.Has(KeyCart))

	cart.Clear(ctx)
	assert.Empty(t, cart.Lines())
	assert.Equal(t, int64(0), cart.Total())
	assert.Equal(t, 0, cart.ItemCount())
	assert.False(t, mem.Has(KeyCart), "clear erases the key, not writes empty")
}

func TestCart_InvariantAcrossOperationSequence(t *testing.T) {
	ctx := context.Background()
	cart := NewCart(ctx, persist.NewMemory(), logx.Nop())

	steps := []func(){
		func() { cart.AddItem(ctx, summary("p1", 100)) },
		func() { cart.AddItem(ctx, summary("p2", 999)) },
		func() { cart.AddItem(ctx, summary("p1", 100)) },
		func() { cart.SetQuantity(ctx, "p2", 7) },
		func() { cart.RemoveItem(ctx, "p1") },
		func() { cart.AddItem(ctx, summary("p3", 45999)) },
		func() { cart.SetQuantity(ctx, "p3", -1) },
		func() { cart.SetQuantity(ctx, "p2", 1) },
		func() { cart.Clear(ctx) },
	}
	for _, step := range steps {
		step()
		assertInvariant(t, cart)
	}
}

func TestCart_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := persist.NewMemory()

	first := NewCart(ctx, mem, logx.Nop())
	first.AddItem(ctx, summary("p1", 100))
	first.AddItem(ctx, summary("p2", 150))
	first.SetQuantity(ctx, "p1", 3)

	// A second store over the same persister models a process restart.
	second := NewCart(ctx, mem, logx.Nop())
	assert.Equal(t, first.Lines(), second.Lines())
	assert.Equal(t, first.Total(), second.Total())
	assert.Equal(t, first.ItemCount(), second.ItemCount())
}

func TestCart_RehydrateMalformedState(t *testing.T) {
	ctx := context.Background()

	t.Run("unparsable blob starts empty", func(t *testing.T) {
		mem := persist.NewMemory()
		mem.Seed(KeyCart, []byte("{not json"))

		cart := NewCart(ctx, mem, logx.Nop())
		assert.Empty(t, cart.Lines())
		assert.Equal(t, int64(0), cart.Total())
	})

	t.Run("invalid lines are dropped", func(t *testing.T) {
		mem := persist.NewMemory()
		mem.Seed(KeyCart, []byte(`[
			{"id":"p1","name":"Good","price":100,"quantity":2},
			{"id":"","name":"No ID","price":50,"quantity":1},
			{"id":"p2","name":"Zero Qty","price":50,"quantity":0},
			{"id":"p1","name":"Duplicate","price":999,"quantity":1}
		]`))

		cart := NewCart(ctx, mem, logx.Nop())
		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "p1", lines[0].ID)
		assert.Equal(t, int64(100), lines[0].Price, "first write wins on duplicates")
		assertInvariant(t, cart)
	})

	t.Run("absent key starts empty", func(t *testing.T) {
		cart := NewCart(ctx, persist.NewMemory(), logx.Nop())
		assert.Empty(t, cart.Lines())
	})
}

func TestCart_Notify(t *testing.T) {
	ctx := context.Background()
	cart := NewCart(ctx, persist.NewMemory(), logx.Nop())

	var seen []int
	unsubscribe := cart.Subscribe(func() {
		seen = append(seen, cart.ItemCount())
	})

	cart.AddItem(ctx, summary("p1", 100))
	cart.AddItem(ctx, summary("p1", 100))
	cart.Clear(ctx)
	assert.Equal(t, []int{1, 2, 0}, seen, "subscribers observe committed state")

	unsubscribe()
	cart.AddItem(ctx, summary("p2", 150))
	assert.Len(t, seen, 3, "no notification after unsubscribe")
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	cart := NewCart(ctx, persist.NewMemory(), logx.Nop())
	cart.AddItem(ctx, summary("p1", 100))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
	assertInvariant(t, cart)
}
