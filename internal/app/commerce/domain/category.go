package domain

// Category is one of the fixed set of storefront departments.
// The set is closed: catalog loading quarantines products that carry
// anything else rather than letting them silently miss every filter.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFashion     Category = "Fashion"
	CategoryHomeGarden  Category = "Home & Garden"
	CategorySports      Category = "Sports"
	CategoryBooks       Category = "Books"
	CategoryToys        Category = "Toys"
)

// Categories returns the ordered list of known categories.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryFashion,
		CategoryHomeGarden,
		CategorySports,
		CategoryBooks,
		CategoryToys,
	}
}

// Valid reports whether the category belongs to the known set.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryFashion, CategoryHomeGarden,
		CategorySports, CategoryBooks, CategoryToys:
		return true
	}
	return false
}

// String returns the display name of the category.
func (c Category) String() string {
	return string(c)
}
