package domain

import "fmt"

// MaxPrice is the largest list price a new product may carry
const MaxPrice = 1_000_000_000

// DiscountedPrice returns price reduced by discount percent, rounded half up
// to a whole currency unit. Integer arithmetic keeps the result identical
// wherever it is computed. Discounts outside 0..100 are clamped.
func DiscountedPrice(price, discount int) int {
	switch {
	case discount < 0:
		discount = 0
	case discount > 100:
		discount = 100
	}

	// split price into hundreds and remainder so price*(100-discount) is
	// never formed and cannot overflow
	keep := 100 - discount
	if price < 0 {
		// floor division for negative amounts
		p := -price
		return -(p/100*keep + (p%100*keep+49)/100)
	}
	return price/100*keep + (price%100*keep+50)/100
}

// PlaceholderImage is the stock image used for products without one
func PlaceholderImage(id int) string {
	return fmt.Sprintf("https://picsum.photos/seed/z%d/600/600", id)
}
