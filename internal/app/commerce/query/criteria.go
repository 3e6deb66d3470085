// Package query implements the faceted search/filter/sort pipeline over
// the catalog. Run is a pure function: it never mutates the catalog and
// is deterministic for identical inputs.
package query

import "math"

// SortKey selects the ordering of query results.
type SortKey string

const (
	// SortNameAsc orders lexicographically by name.
	SortNameAsc SortKey = "name_asc"
	// SortPriceAsc orders by ascending price, ties by name.
	SortPriceAsc SortKey = "price_asc"
	// SortPriceDesc orders by descending price, ties by name.
	SortPriceDesc SortKey = "price_desc"
	// SortRatingDesc orders by descending rating, ties by name.
	SortRatingDesc SortKey = "rating_desc"
	// SortDiscountDesc orders by descending discount fraction, ties by
	// name. Products without a discount sort as 0.
	SortDiscountDesc SortKey = "discount_desc"
	// SortRelevance puts products whose name contains the search term
	// before those matching only on description, category or brand;
	// name ascending within each bucket.
	SortRelevance SortKey = "relevance"
)

// AllCategories is the sentinel that disables the category filter.
const AllCategories = "all"

// NoPriceCap disables the upper price bound.
const NoPriceCap = int64(math.MaxInt64)

// DefaultPriceCap is the upper bound storefront price sliders start at.
// The engine itself defaults to no cap; this is for criteria-assembling
// collaborators.
const DefaultPriceCap = int64(200_000)

// Criteria is the ephemeral set of filter/sort/search parameters for one
// query. It is a value type built fluently; every With* call returns a
// modified copy, so a criteria value can be shared and narrowed per view
// without aliasing surprises.
type Criteria struct {
	term        string
	category    string
	minPrice    int64
	maxPrice    int64
	minRating   float64
	inStockOnly bool
	dealsOnly   bool
	sort        SortKey
}

// New returns criteria that match the whole catalog, sorted by name.
func New() Criteria {
	return Criteria{
		category: AllCategories,
		maxPrice: NoPriceCap,
		sort:     SortNameAsc,
	}
}

// WithTerm sets the free-text search term.
func (c Criteria) WithTerm(term string) Criteria {
	c.term = term
	return c
}

// WithCategory restricts results to one category. AllCategories (or "")
// keeps all.
func (c Criteria) WithCategory(category string) Criteria {
	if category == "" {
		category = AllCategories
	}
	c.category = category
	return c
}

// WithPriceRange restricts results to min <= price <= max, inclusive.
// A range with min > max yields an empty result set.
func (c Criteria) WithPriceRange(min, max int64) Criteria {
	c.minPrice = min
	c.maxPrice = max
	return c
}

// WithMinRating keeps products rated at or above threshold; 0 keeps all.
func (c Criteria) WithMinRating(threshold float64) Criteria {
	c.minRating = threshold
	return c
}

// InStockOnly keeps only products currently in stock.
func (c Criteria) InStockOnly() Criteria {
	c.inStockOnly = true
	return c
}

// DealsOnly keeps only discounted products; used by the deals view.
func (c Criteria) DealsOnly() Criteria {
	c.dealsOnly = true
	return c
}

// SortBy sets the result ordering.
func (c Criteria) SortBy(key SortKey) Criteria {
	c.sort = key
	return c
}
