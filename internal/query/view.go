// Package query derives the ordered catalog view shown to a visitor from the
// product list and the current query parameters.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kahvecikaan/zebra-store/internal/domain"
)

// DeriveView filters products by category and search text, then orders them
// by the query's sort key. The input slice is left untouched and ties keep
// their input order.
func DeriveView(products []domain.Product, q domain.QueryState) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := q.Category
	if category == "" {
		category = domain.CategoryAll
	}

	view := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, category) && matchesSearch(p, search) {
			view = append(view, p)
		}
	}

	if less := comparator(q.Sort); less != nil {
		slices.SortStableFunc(view, less)
	}
	return view
}

func matchesCategory(p domain.Product, c domain.Category) bool {
	return c == domain.CategoryAll || p.Category == c
}

// matchesSearch expects needle to be lower-cased already
func matchesSearch(p domain.Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// comparator returns nil for orders that keep the filtered sequence
func comparator(key domain.SortKey) func(a, b domain.Product) int {
	switch key {
	case domain.SortPriceLow:
		return func(a, b domain.Product) int {
			return cmp.Compare(a.DiscountedPrice(), b.DiscountedPrice())
		}
	case domain.SortPriceHigh:
		return func(a, b domain.Product) int {
			return cmp.Compare(b.DiscountedPrice(), a.DiscountedPrice())
		}
	case domain.SortRating:
		return func(a, b domain.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		}
	case domain.SortDiscount:
		return func(a, b domain.Product) int {
			return cmp.Compare(b.Discount, a.Discount)
		}
	default:
		return nil
	}
}
