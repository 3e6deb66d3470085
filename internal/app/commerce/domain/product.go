// Package domain holds the commerce data model: catalog products, cart
// lines, wishlist entries and the user profile, together with the
// validation and pricing rules they obey. Types here are plain records;
// lifecycle and persistence belong to the stores.
package domain

// Product is an immutable catalog record. Prices are integer amounts in
// the smallest currency unit. A product is created once by the catalog
// seeder and never mutated afterwards; stores hand out copies so callers
// cannot reach the catalog's backing data.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          int64             `json:"price"`
	OriginalPrice  int64             `json:"originalPrice,omitempty"`
	Images         []string          `json:"images"`
	Category       Category          `json:"category"`
	Brand          string            `json:"brand"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"inStock"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Validate checks the catalog invariants for a single product. It is
// called at catalog load time; a non-nil error means the product is
// quarantined rather than loaded.
func (p Product) Validate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	if p.OriginalPrice < 0 {
		return ErrNegativeOriginalPrice
	}
	if len(p.Images) == 0 {
		return ErrNoImages
	}
	if !p.Category.Valid() {
		return ErrUnknownCategory
	}
	if p.Rating < 0 || p.Rating > 5 {
		return ErrInvalidRating
	}
	if p.Reviews < 0 {
		return ErrInvalidReviews
	}
	return nil
}

// Clone returns a deep copy of the product, including its slices and
// specification map.
func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	if p.Features != nil {
		out.Features = append([]string(nil), p.Features...)
	}
	if p.Specifications != nil {
		out.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			out.Specifications[k] = v
		}
	}
	return out
}

// Image returns the primary image URL, or "" for an (invalid) imageless
// product.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Summary projects the product to the snapshot carried by a cart line.
// Price and stock are frozen at projection time and not re-synced if the
// catalog changes.
func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image(),
		InStock:  p.InStock,
		Category: p.Category,
	}
}

// WishlistEntry projects the product to a saved-for-later record.
func (p Product) WishlistEntry() WishlistEntry {
	return WishlistEntry{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image(),
		InStock:  p.InStock,
		Category: p.Category,
		Rating:   p.Rating,
	}
}

// ProductSummary is the slice of a product a cart line snapshots.
type ProductSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Image    string   `json:"image"`
	InStock  bool     `json:"inStock"`
	Category Category `json:"category"`
}
