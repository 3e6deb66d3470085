package e2e

import (
	"fmt"

	"github.com/megamart/commerce-core/internal/app/commerce/domain"
)

// ProductBuilder helps create catalog products for tests with a fluent
// interface.
type ProductBuilder struct {
	id            string
	name          string
	description   string
	category      domain.Category
	brand         string
	price         int64
	originalPrice int64
	rating        float64
	inStock       bool
}

// NewProductBuilder creates a new builder with default values.
func NewProductBuilder(id string) *ProductBuilder {
	return &ProductBuilder{
		id:          id,
		name:        "Test Product " + id,
		description: "Default description",
		category:    domain.CategoryElectronics,
		brand:       "Acme",
		price:       10000,
		rating:      4.0,
		inStock:     true,
	}
}

// WithName sets the product name.
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.name = name
	return b
}

// WithDescription sets the product description.
func (b *ProductBuilder) WithDescription(description string) *ProductBuilder {
	b.description = description
	return b
}

// WithCategory sets the product category.
func (b *ProductBuilder) WithCategory(category domain.Category) *ProductBuilder {
	b.category = category
	return b
}

// WithBrand sets the product brand.
func (b *ProductBuilder) WithBrand(brand string) *ProductBuilder {
	b.brand = brand
	return b
}

// WithPrice sets the current price in minor units.
func (b *ProductBuilder) WithPrice(price int64) *ProductBuilder {
	b.price = price
	return b
}

// WithDiscount sets an original price above the current one.
func (b *ProductBuilder) WithDiscount(originalPrice int64) *ProductBuilder {
	b.originalPrice = originalPrice
	return b
}

// WithRating sets the product rating.
func (b *ProductBuilder) WithRating(rating float64) *ProductBuilder {
	b.rating = rating
	return b
}

// OutOfStock marks the product as unavailable.
func (b *ProductBuilder) OutOfStock() *ProductBuilder {
	b.inStock = false
	return b
}

// Build creates the domain.Product.
func (b *ProductBuilder) Build() domain.Product {
	return domain.Product{
		ID:            b.id,
		Name:          b.name,
		Description:   b.description,
		Price:         b.price,
		OriginalPrice: b.originalPrice,
		Images:        []string{fmt.Sprintf("https://example.com/%s.jpg", b.id)},
		Category:      b.category,
		Brand:         b.brand,
		Rating:        b.rating,
		Reviews:       100,
		InStock:       b.inStock,
	}
}
