package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/megamart/commerce-core/internal/app/commerce/contracts"
	"github.com/megamart/commerce-core/internal/app/commerce/domain"
)

// Cart holds the shopping cart lines and their derived totals. Every
// mutation recomputes total/itemCount from the line set and persists the
// full set before subscribers are notified, so the derived fields can
// never drift from the lines.
//
// Operations are total: they have no failure path. A persistence write
// that fails is logged and the in-memory state stays authoritative
// ("last write wins, possibly lost").
type Cart struct {
	log       zerolog.Logger
	persister contracts.Persister
	lines     []domain.CartLine
	total     int64
	itemCount int
	notifier
}

// NewCart creates a cart store rehydrated from durable storage.
// Malformed persisted state is recovered by starting empty.
func NewCart(ctx context.Context, persister contracts.Persister, log zerolog.Logger) *Cart {
	c := &Cart{log: log, persister: persister}
	c.lines = c.rehydrate(ctx)
	c.recompute()
	return c
}

// AddItem inserts a new line with quantity 1, or increments the quantity
// of the existing line for the same product. The price on the summary is
// what the line keeps; it is not re-read from the catalog. Stock is not
// checked here: callers gate on InStock before dispatching.
func (c *Cart) AddItem(ctx context.Context, item domain.ProductSummary) {
	if i, ok := c.find(item.ID); ok {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, domain.NewCartLine(item, 1))
	}
	c.commit(ctx)
}

// RemoveItem deletes the line with the given id; no-op when absent.
func (c *Cart) RemoveItem(ctx context.Context, id string) {
	i, ok := c.find(id)
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.commit(ctx)
}

// SetQuantity sets a line's quantity to exactly the given value. A value
// of zero or below removes the line instead: quantities at or below zero
// are never stored. No-op for an unknown id.
func (c *Cart) SetQuantity(ctx context.Context, id string, quantity int) {
	i, ok := c.find(id)
	if !ok {
		return
	}
	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	} else {
		c.lines[i].Quantity = quantity
	}
	c.commit(ctx)
}

// Clear removes all lines and erases the persisted representation
// entirely, rather than writing an empty set.
func (c *Cart) Clear(ctx context.Context) {
	c.lines = nil
	c.recompute()
	if err := c.persister.Delete(ctx, KeyCart); err != nil {
		c.log.Warn().Err(err).Msg("failed to erase persisted cart")
	}
	c.notify()
}

// Lines returns a copy of the current line set in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	return append([]domain.CartLine(nil), c.lines...)
}

// Total returns the sum of price*quantity over the lines.
func (c *Cart) Total() int64 { return c.total }

// ItemCount returns the summed quantity over the lines.
func (c *Cart) ItemCount() int { return c.itemCount }

func (c *Cart) find(id string) (int, bool) {
	for i, line := range c.lines {
		if line.ID == id {
			return i, true
		}
	}
	return 0, false
}

// commit recomputes derived fields, persists the line set and notifies
// subscribers. Runs as the final step of every mutating operation.
func (c *Cart) commit(ctx context.Context) {
	c.recompute()
	raw, err := json.Marshal(c.lines)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to encode cart lines")
	} else if err := c.persister.Set(ctx, KeyCart, raw); err != nil {
		c.log.Warn().Err(err).Msg("failed to persist cart")
	}
	c.notify()
}

func (c *Cart) recompute() {
	c.total = domain.CartTotal(c.lines)
	c.itemCount = domain.CartItemCount(c.lines)
}

func (c *Cart) rehydrate(ctx context.Context) []domain.CartLine {
	raw, err := c.persister.Get(ctx, KeyCart)
	if errors.Is(err, contracts.ErrKeyMissing) {
		return nil
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to read persisted cart, starting empty")
		return nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		c.log.Warn().Err(err).Msg("malformed persisted cart, starting empty")
		return nil
	}
	return normalizeLines(lines)
}

// normalizeLines drops persisted lines that violate the cart invariants:
// empty ids, quantities below one, or a second line for an id already
// seen. First write wins on duplicates.
func normalizeLines(lines []domain.CartLine) []domain.CartLine {
	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, line := range lines {
		if line.ID == "" || line.Quantity < 1 || seen[line.ID] {
			continue
		}
		seen[line.ID] = true
		out = append(out, line)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
