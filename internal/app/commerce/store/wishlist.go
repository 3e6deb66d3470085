package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/megamart/commerce-core/internal/app/commerce/contracts"
	"github.com/megamart/commerce-core/internal/app/commerce/domain"
)

// Wishlist holds a deduplicated, insertion-ordered set of saved products.
// Unlike the cart, it survives logout.
type Wishlist struct {
	log       zerolog.Logger
	persister contracts.Persister
	entries   []domain.WishlistEntry
	notifier
}

// NewWishlist creates a wishlist store rehydrated from durable storage.
// Malformed persisted state is recovered by starting empty.
func NewWishlist(ctx context.Context, persister contracts.Persister, log zerolog.Logger) *Wishlist {
	w := &Wishlist{log: log, persister: persister}
	w.entries = w.rehydrate(ctx)
	return w
}

// Add inserts the entry unless one with the same id already exists.
// First write wins: a repeated add does not overwrite the stored payload.
func (w *Wishlist) Add(ctx context.Context, entry domain.WishlistEntry) {
	if w.Contains(entry.ID) {
		return
	}
	w.entries = append(w.entries, entry)
	w.commit(ctx)
}

// Remove deletes the entry with the given id; no-op when absent.
func (w *Wishlist) Remove(ctx context.Context, id string) {
	for i, entry := range w.entries {
		if entry.ID == id {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			w.commit(ctx)
			return
		}
	}
}

// Clear empties the set and erases the persisted representation entirely.
func (w *Wishlist) Clear(ctx context.Context) {
	w.entries = nil
	if err := w.persister.Delete(ctx, KeyWishlist); err != nil {
		w.log.Warn().Err(err).Msg("failed to erase persisted wishlist")
	}
	w.notify()
}

// Entries returns a copy of the saved entries in insertion order.
func (w *Wishlist) Entries() []domain.WishlistEntry {
	return append([]domain.WishlistEntry(nil), w.entries...)
}

// Contains reports whether an entry with the given id is saved.
func (w *Wishlist) Contains(id string) bool {
	for _, entry := range w.entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

func (w *Wishlist) commit(ctx context.Context) {
	raw, err := json.Marshal(w.entries)
	if err != nil {
		w.log.Error().Err(err).Msg("failed to encode wishlist entries")
	} else if err := w.persister.Set(ctx, KeyWishlist, raw); err != nil {
		w.log.Warn().Err(err).Msg("failed to persist wishlist")
	}
	w.notify()
}

func (w *Wishlist) rehydrate(ctx context.Context) []domain.WishlistEntry {
	raw, err := w.persister.Get(ctx, KeyWishlist)
	if errors.Is(err, contracts.ErrKeyMissing) {
		return nil
	}
	if err != nil {
		w.log.Warn().Err(err).Msg("failed to read persisted wishlist, starting empty")
		return nil
	}
	var entries []domain.WishlistEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		w.log.Warn().Err(err).Msg("malformed persisted wishlist, starting empty")
		return nil
	}
	seen := make(map[string]bool, len(entries))
	out := entries[:0]
	for _, entry := range entries {
		if entry.ID == "" || seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		out = append(out, entry)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
