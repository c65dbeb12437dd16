package domain_test

import (
	"math"
	"testing"

	"github.com/kahvecikaan/zebra-store/internal/domain"
	"github.com/kahvecikaan/zebra-store/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestDiscountedPrice(t *testing.T) {
	testCases := []struct {
		name     string
		price    int
		discount int
		want     int
	}{
		{"No discount", 799, 0, 799},
		{"Rounds down", 799, 20, 639},
		{"Rounds half up", 50, 25, 38},
		{"Thirty percent", 1999, 30, 1399},
		{"Thirty five percent", 1799, 35, 1169},
		{"Maximum form discount", 1000, 90, 100},
		{"Negative discount clamps to zero", 500, -10, 500},
		{"Discount above hundred clamps", 500, 150, 0},
		{"Maximum price", domain.MaxPrice, 0, domain.MaxPrice},
		{"Maximum price discounted", domain.MaxPrice, 20, 800_000_000},
		{"Maximum price odd discount", domain.MaxPrice + 99, 33, 670_000_066},
		{"Above maximum price", 100_000_000_000_000_000, 25, 75_000_000_000_000_000},
		{"Huge price", 1 << 62, 0, 1 << 62},
		{"Largest int", math.MaxInt, 0, math.MaxInt},
		{"Largest int discounted", math.MaxInt, 50, math.MaxInt/2 + 1},
		{"Negative price", -799, 20, -639},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.DiscountedPrice(tc.price, tc.discount))
		})
	}
}

func TestDiscountedPriceNeverExceedsPrice(t *testing.T) {
	products := append(repository.SeedProducts(), repository.GenerateProducts(21, 50)...)
	for _, p := range products {
		dp := domain.DiscountedPrice(p.Price, p.Discount)
		assert.LessOrEqual(t, dp, p.Price, "product %d", p.ID)
		assert.Equal(t, p.Discount == 0, dp == p.Price, "product %d", p.ID)
	}
}

func TestProductDiscountedPriceMatchesHelper(t *testing.T) {
	p := domain.Product{ID: 1, Price: 2499, Discount: 25}
	assert.Equal(t, domain.DiscountedPrice(2499, 25), p.DiscountedPrice())
	assert.Equal(t, 1874, p.DiscountedPrice())
}
