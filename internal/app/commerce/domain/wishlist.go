package domain

// WishlistEntry is one product's saved-for-later record. Like cart lines,
// it snapshots price, stock and rating at the time of saving.
type WishlistEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Image    string   `json:"image"`
	InStock  bool     `json:"inStock"`
	Category Category `json:"category"`
	Rating   float64  `json:"rating"`
}
