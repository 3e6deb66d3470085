package store

import (
	"github.com/rs/zerolog"

	"github.com/megamart/commerce-core/internal/app/commerce/domain"
)

// Catalog holds the session's product list. It is loaded wholesale once
// by a seeding collaborator and read-mostly afterwards; there are no
// incremental update operations.
type Catalog struct {
	log      zerolog.Logger
	products []domain.Product
	index    map[string]int
	notifier
}

// NewCatalog creates an empty catalog store.
func NewCatalog(log zerolog.Logger) *Catalog {
	return &Catalog{
		log:   log,
		index: map[string]int{},
	}
}

// Load replaces the catalog wholesale. Products that fail validation
// (unknown category, negative price, no images, duplicate id, ...) are
// quarantined: kept out of the catalog, logged, and returned to the
// caller. Quarantining beats silent acceptance because an unknown
// category would miss every filter without ever surfacing.
func (c *Catalog) Load(products []domain.Product) (rejected []domain.Product) {
	loaded := make([]domain.Product, 0, len(products))
	index := make(map[string]int, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			c.log.Warn().Str("product_id", p.ID).Err(err).Msg("quarantined product")
			rejected = append(rejected, p.Clone())
			continue
		}
		if _, dup := index[p.ID]; dup {
			c.log.Warn().Str("product_id", p.ID).Msg("quarantined duplicate product id")
			rejected = append(rejected, p.Clone())
			continue
		}
		index[p.ID] = len(loaded)
		loaded = append(loaded, p.Clone())
	}
	c.products = loaded
	c.index = index
	c.log.Debug().Int("loaded", len(loaded)).Int("rejected", len(rejected)).Msg("catalog loaded")
	c.notify()
	return rejected
}

// ByID returns a copy of the product with the given id, or
// domain.ErrProductNotFound.
func (c *Catalog) ByID(id string) (domain.Product, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return c.products[i].Clone(), nil
}

// Products returns a copy of the full catalog in load order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

// Categories returns the ordered category list.
func (c *Catalog) Categories() []domain.Category {
	return domain.Categories()
}

// Len returns the number of loaded products.
func (c *Catalog) Len() int {
	return len(c.products)
}
