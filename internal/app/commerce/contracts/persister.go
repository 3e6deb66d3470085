// Package contracts defines the ports the commerce stores depend on.
// Implementations live under internal/pkg/persist; stores only ever see
// these interfaces, so invariant logic stays testable without a real
// storage medium.
package contracts

import (
	"context"
	"errors"
)

// ErrKeyMissing is returned by Get when the key has never been written or
// has been deleted. Absence is the normal "empty store" signal, not a
// failure.
var ErrKeyMissing = errors.New("persisted key missing")

// Persister is the durable local storage port used by the cart, wishlist
// and session stores. Values are opaque JSON blobs keyed by a fixed
// namespace identifier. Writes are best-effort and synchronous; a failed
// write leaves the in-memory state authoritative.
type Persister interface {
	// Get returns the value stored under key, or ErrKeyMissing.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key entirely. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
