// Package store implements the commerce state containers: catalog, cart,
// wishlist and session. Each store owns its collection exclusively,
// mutates it only through its declared operations, persists as the final
// step of every mutation and notifies subscribers afterwards. The whole
// package assumes the single-goroutine, event-driven ownership model of a
// storefront UI; operations are synchronous and non-reentrant.
package store

// Persisted state keys. Absence of a key means the corresponding store is
// empty (or, for the token, logged out).
const (
	KeyCart     = "megamart_cart"
	KeyWishlist = "megamart_wishlist"
	KeyToken    = "megamart_token"
	KeyUser     = "megamart_user"
)

// notifier implements subscribe/notify for a store. Subscribers are
// invoked synchronously after a mutation has completed and persisted;
// they re-read the store rather than receiving a payload, so internal
// collections never escape.
type notifier struct {
	subscribers map[int]func()
	nextID      int
}

// Subscribe registers fn to run after every completed mutation and
// returns a function that removes the subscription.
func (n *notifier) Subscribe(fn func()) (unsubscribe func()) {
	if n.subscribers == nil {
		n.subscribers = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn
	return func() {
		delete(n.subscribers, id)
	}
}

func (n *notifier) notify() {
	for _, fn := range n.subscribers {
		fn()
	}
}
