package domain

// HasDiscount reports whether the product is a deal: an original price is
// present and strictly above the current price. An original price at or
// below the current price counts as no discount rather than an error.
func HasDiscount(p Product) bool {
	return p.OriginalPrice > 0 && p.OriginalPrice > p.Price
}

// DiscountFraction returns (originalPrice - price) / originalPrice as a
// value in [0, 1). Products without a discount return 0.
func DiscountFraction(p Product) float64 {
	if !HasDiscount(p) {
		return 0
	}
	return float64(p.OriginalPrice-p.Price) / float64(p.OriginalPrice)
}

// DiscountPercent returns the discount as a rounded-down whole percentage,
// the way storefront badges display it.
func DiscountPercent(p Product) int {
	return int(DiscountFraction(p) * 100)
}
