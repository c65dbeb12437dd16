package domain

import (
	"fmt"
	"strings"
)

// SortKey selects the single active ordering of a catalog view
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortRating    SortKey = "rating"
	SortDiscount  SortKey = "discount"
	SortPriceLow  SortKey = "priceLow"
	SortPriceHigh SortKey = "priceHigh"
)

var sortAliases = map[string]SortKey{
	"featured":        SortFeatured,
	"rating":          SortRating,
	"discount":        SortDiscount,
	"pricelow":        SortPriceLow,
	"priceascending":  SortPriceLow,
	"pricehigh":       SortPriceHigh,
	"pricedescending": SortPriceHigh,
}

// ParseSortKey resolves s case-insensitively. An empty string selects the
// featured order.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortFeatured, nil
	}
	key, ok := sortAliases[strings.ToLower(s)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return key, nil
}

// QueryState holds the view parameters applied to the catalog
//
// swagger:model
type QueryState struct {
	Search   string   `json:"search"`
	Category Category `json:"category"`
	Sort     SortKey  `json:"sort"`
}

// DefaultQueryState matches everything in featured order
func DefaultQueryState() QueryState {
	return QueryState{Category: CategoryAll, Sort: SortFeatured}
}

// NewQueryState builds a query from raw user input
func NewQueryState(search, category, sort string) (QueryState, error) {
	key, err := ParseSortKey(sort)
	if err != nil {
		return QueryState{}, err
	}
	return QueryState{
		Search:   search,
		Category: ParseCategory(category),
		Sort:     key,
	}, nil
}
