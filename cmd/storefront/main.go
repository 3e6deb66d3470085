// The storefront binary seeds a mock catalog, exercises the commerce
// stores end to end and logs what a UI would render. The core packages
// under internal/ have no entry point of their own; this is a demo and
// smoke-test surface.
package main

import (
	"context"
	"log"
	"math/rand"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/megamart/commerce-core/internal/app/commerce/domain"
	"github.com/megamart/commerce-core/internal/app/commerce/query"
	"github.com/megamart/commerce-core/internal/config"
	"github.com/megamart/commerce-core/internal/pkg/logx"
	"github.com/megamart/commerce-core/internal/seed"
	"github.com/megamart/commerce-core/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run storefront: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration (.env is optional)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logx.Init(cfg.Environment())
	logger := logx.New("storefront")

	// 2. Wire up stores over the configured persistence backend
	opts, err := services.NewServiceOptions(ctx, cfg)
	if err != nil {
		return err
	}
	defer opts.Close()

	// 3. Seed the catalog; the generator is deterministic for a seed
	products := seed.Catalog(rand.New(rand.NewSource(cfg.Seed)), 50)
	rejected := opts.Catalog.Load(products)
	logger.Info().
		Int("products", opts.Catalog.Len()).
		Int("rejected", len(rejected)).
		Msg("catalog seeded")

	// 4. Run the queries the listing, search and deals views would run
	featured := query.Run(opts.Catalog.Products(), query.New().
		WithMinRating(4.5).
		InStockOnly().
		SortBy(query.SortRatingDesc))
	logProducts(logger, "featured", featured, 5)

	phones := query.Run(opts.Catalog.Products(), query.New().
		WithTerm("phone").
		SortBy(query.SortRelevance))
	logProducts(logger, "search: phone", phones, 5)

	deals := query.Run(opts.Catalog.Products(), query.New().
		DealsOnly().
		SortBy(query.SortDiscountDesc))
	logProducts(logger, "deals", deals, 5)

	// 5. Shop: log in, fill the cart and the wishlist
	user, err := opts.Session.Login(ctx, "demo@megamart.example", "Demo Shopper")
	if err != nil {
		return err
	}
	logger.Info().Str("user", user.Name).Msg("logged in")

	for i, p := range featured {
		if i == 3 {
			break
		}
		// Stock gate belongs to the caller, not to AddItem.
		if !p.InStock {
			logger.Warn().Str("product", p.Name).Msg("skipping out-of-stock product")
			continue
		}
		opts.Cart.AddItem(ctx, p.Summary())
	}
	if len(deals) > 0 {
		opts.Wishlist.Add(ctx, deals[0].WishlistEntry())
	}
	logger.Info().
		Int("lines", len(opts.Cart.Lines())).
		Int("items", opts.Cart.ItemCount()).
		Int64("total", opts.Cart.Total()).
		Int("wishlist", len(opts.Wishlist.Entries())).
		Msg("cart filled")

	// 6. Logout erases the cart but leaves the wishlist alone
	opts.Session.Logout(ctx)
	logger.Info().
		Int("lines", len(opts.Cart.Lines())).
		Int64("total", opts.Cart.Total()).
		Int("wishlist", len(opts.Wishlist.Entries())).
		Msg("logged out")

	return nil
}

func logProducts(logger zerolog.Logger, view string, products []domain.Product, limit int) {
	if len(products) < limit {
		limit = len(products)
	}
	for _, p := range products[:limit] {
		logger.Info().
			Str("view", view).
			Str("name", p.Name).
			Int64("price", p.Price).
			Float64("rating", p.Rating).
			Int("discount_pct", domain.DiscountPercent(p)).
			Msg("product")
	}
}
