package domain

import (
	"encoding/json"
	"strings"
)

// Category groups products in the storefront filters.
type Category string

const (
	CategoryAll         Category = "All"
	CategoryMen         Category = "Men"
	CategoryWomen       Category = "Women"
	CategoryKids        Category = "Kids"
	CategoryAccessories Category = "Accessories"
)

// categories is the registered set, in display order.
var categories = []Category{CategoryMen, CategoryWomen, CategoryKids, CategoryAccessories}

// Categories returns the registered product categories
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsKnownCategory reports whether c is a registered product category. The All
// sentinel is not a product category.
func IsKnownCategory(c Category) bool {
	for _, known := range categories {
		if known == c {
			return true
		}
	}
	return false
}

// ParseCategory maps user input onto a category. Empty input and any casing
// of "all" select the All sentinel; registered names match case-insensitively.
// Anything else is returned verbatim so that it simply filters to nothing.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll
	}
	for _, known := range categories {
		if strings.EqualFold(s, string(known)) {
			return known
		}
	}
	return Category(s)
}

// Product represents a catalog item
//
// swagger:model
type Product struct {
	// The ID of the product
	//
	// required: true
	// min: 1
	// example: 1
	ID int `json:"id"`

	// The name of the product
	//
	// required: true
	// example: Classic White Tee
	Name string `json:"name"`

	// The category of the product
	//
	// required: true
	// example: Men
	Category Category `json:"category"`

	// The list price in INR
	//
	// required: true
	// min: 1
	// max: 1000000000
	// example: 799
	Price int `json:"price"`

	// The discount in percent
	//
	// min: 0
	// max: 90
	// example: 20
	Discount int `json:"discount"`

	// The average rating
	//
	// min: 0
	// max: 5
	// example: 4.3
	Rating float64 `json:"rating"`

	// The description of the product
	//
	// required: true
	// example: 100% cotton, breathable everyday essential.
	Description string `json:"description"`

	// The image URI of the product
	//
	// example: https://picsum.photos/seed/z1/600/600
	Image string `json:"image"`
}

// DiscountedPrice is the price after applying the product's discount
func (p Product) DiscountedPrice() int {
	return DiscountedPrice(p.Price, p.Discount)
}

// ProductInput carries the user supplied fields of a new product. Optional
// fields are pointers so that an absent value can be told apart from zero.
//
// swagger:model
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Category    Category `json:"category" validate:"omitempty,category"`
	Price       int      `json:"price" validate:"required,gt=0,lte=1000000000"`
	Discount    *int     `json:"discount,omitempty" validate:"omitempty,gte=0,lte=90"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Description string   `json:"description" validate:"required"`
	Image       string   `json:"image,omitempty" validate:"omitempty,url"`
}

const (
	// DefaultCategory is used when a new product omits its category
	DefaultCategory = CategoryMen
	// DefaultRating is used when a new product omits its rating
	DefaultRating = 4.0
)

// Trim strips surrounding whitespace from the free-text fields so that a
// blank name or description fails the required check.
func (in *ProductInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)
	in.Category = Category(strings.TrimSpace(string(in.Category)))
}

// Build turns validated input into a product with the given id, applying
// defaults for the optional fields.
func (in ProductInput) Build(id int) Product {
	p := Product{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Rating:      DefaultRating,
		Description: in.Description,
		Image:       in.Image,
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if in.Discount != nil {
		p.Discount = *in.Discount
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if p.Image == "" {
		p.Image = PlaceholderImage(id)
	}
	return p
}

// MarshalJSON adds the discounted price to the serialized product
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		DiscountedPrice int `json:"discounted_price"`
	}{product(p), p.DiscountedPrice()})
}
