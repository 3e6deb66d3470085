// Package services wires the application dependencies together.
package services

import (
	"context"
	"fmt"
	"io"

	"github.com/megamart/commerce-core/internal/app/commerce/contracts"
	"github.com/megamart/commerce-core/internal/app/commerce/store"
	"github.com/megamart/commerce-core/internal/config"
	"github.com/megamart/commerce-core/internal/pkg/clock"
	"github.com/megamart/commerce-core/internal/pkg/logx"
	"github.com/megamart/commerce-core/internal/pkg/persist"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Persister contracts.Persister
	Catalog   *store.Catalog
	Cart      *store.Cart
	Wishlist  *store.Wishlist
	Session   *store.Session

	closer io.Closer
}

// NewServiceOptions creates and wires up all application dependencies:
// the persister selected by configuration, the four stores rehydrated
// from it, and the logout hook that scopes the cart to the session.
func NewServiceOptions(ctx context.Context, cfg *config.Config) (*ServiceOptions, error) {
	// 1. Open the configured persistence backend
	persister, closer, err := newPersister(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage backend: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()

	// 3. Create stores, rehydrating from durable storage
	catalog := store.NewCatalog(logx.New("catalog"))
	cart := store.NewCart(ctx, persister, logx.New("cart"))
	wishlist := store.NewWishlist(ctx, persister, logx.New("wishlist"))
	session := store.NewSession(ctx, persister, cfg.SessionSecret, clk, logx.New("session"))

	// 4. Cart is session-scoped: logout erases it. The wishlist
	// deliberately registers no hook.
	session.OnLogout(cart.Clear)

	return &ServiceOptions{
		Persister: persister,
		Catalog:   catalog,
		Cart:      cart,
		Wishlist:  wishlist,
		Session:   session,
		closer:    closer,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func newPersister(ctx context.Context, cfg *config.Config) (contracts.Persister, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return persist.NewMemory(), nil, nil
	case config.BackendFile:
		p, err := persist.NewFile(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return p, nil, nil
	case config.BackendSQLite:
		p, err := persist.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	case config.BackendRedis:
		p, err := persist.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
