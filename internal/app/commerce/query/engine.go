package query

import (
	"sort"
	"strings"

	"github.com/megamart/commerce-core/internal/app/commerce/domain"
)

// Run applies the criteria to the catalog projection and returns the
// matching products in sorted order. The stages narrow independently, so
// stage order never changes the result set; only the sort key changes the
// order. Degenerate criteria (min > max) yield an empty result, never an
// error.
func Run(catalog []domain.Product, c Criteria) []domain.Product {
	if c.minPrice > c.maxPrice {
		return nil
	}
	term := strings.ToLower(strings.TrimSpace(c.term))
	out := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if !matches(p, c, term) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, c.sort, term)
	return out
}

func matches(p domain.Product, c Criteria, term string) bool {
	if term != "" && !matchesText(p, term) {
		return false
	}
	if c.category != AllCategories && string(p.Category) != c.category {
		return false
	}
	if p.Price < c.minPrice || p.Price > c.maxPrice {
		return false
	}
	if p.Rating < c.minRating {
		return false
	}
	if c.inStockOnly && !p.InStock {
		return false
	}
	if c.dealsOnly && !domain.HasDiscount(p) {
		return false
	}
	return true
}

// matchesText reports whether the lowercased term is a substring of the
// product's name, description, category or brand.
func matchesText(p domain.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(string(p.Category)), term) ||
		strings.Contains(strings.ToLower(p.Brand), term)
}

// sortProducts orders the slice stably by the given key. Every key breaks
// ties by ascending name, which makes the order total and repeatable
// across calls.
func sortProducts(products []domain.Product, key SortKey, term string) {
	less := lessName
	switch key {
	case SortPriceAsc:
		less = func(a, b domain.Product) bool {
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			return lessName(a, b)
		}
	case SortPriceDesc:
		less = func(a, b domain.Product) bool {
			if a.Price != b.Price {
				return a.Price > b.Price
			}
			return lessName(a, b)
		}
	case SortRatingDesc:
		less = func(a, b domain.Product) bool {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return lessName(a, b)
		}
	case SortDiscountDesc:
		less = func(a, b domain.Product) bool {
			da, db := domain.DiscountFraction(a), domain.DiscountFraction(b)
			if da != db {
				return da > db
			}
			return lessName(a, b)
		}
	case SortRelevance:
		less = func(a, b domain.Product) bool {
			ra, rb := relevanceBucket(a, term), relevanceBucket(b, term)
			if ra != rb {
				return ra < rb
			}
			return lessName(a, b)
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

// lessName compares names case-insensitively, the way storefront listings
// collate. Names equal under folding fall back to a byte compare so the
// order stays total.
func lessName(a, b domain.Product) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.Name < b.Name
}

// relevanceBucket is 0 for a name match, 1 otherwise. With an empty term
// everything lands in the same bucket and relevance degrades to name
// order.
func relevanceBucket(p domain.Product, term string) int {
	if term != "" && strings.Contains(strings.ToLower(p.Name), term) {
		return 0
	}
	return 1
}
