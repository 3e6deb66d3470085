package domain

// CartLine is one product's quantity entry within the cart. The price and
// stock fields are snapshots taken when the line was created; they are
// deliberately never reconciled against the catalog afterwards.
type CartLine struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Image    string   `json:"image"`
	Quantity int      `json:"quantity"`
	InStock  bool     `json:"inStock"`
	Category Category `json:"category"`
}

// NewCartLine creates a line from a product summary with the given
// quantity.
func NewCartLine(s ProductSummary, quantity int) CartLine {
	return CartLine{
		ID:       s.ID,
		Name:     s.Name,
		Price:    s.Price,
		Image:    s.Image,
		Quantity: quantity,
		InStock:  s.InStock,
		Category: s.Category,
	}
}

// CartTotal computes the cart total as the sum of price*quantity over the
// lines. Totals are always derived from the line set, never maintained
// incrementally, so they cannot drift.
func CartTotal(lines []CartLine) int64 {
	var sum int64
	for _, line := range lines {
		sum += line.Price * int64(line.Quantity)
	}
	return sum
}

// CartItemCount computes the summed quantity over the lines.
func CartItemCount(lines []CartLine) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
