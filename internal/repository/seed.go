package repository

import (
	"fmt"
	"math"
	"strings"

	"github.com/kahvecikaan/zebra-store/internal/domain"
)

// generatedDiscounts is indexed by id mod 7
var generatedDiscounts = [7]int{10, 15, 20, 25, 30, 35, 40}

// GenerateProducts synthesizes count products with ids start..start+count-1.
// The output depends only on the ids.
func GenerateProducts(start, count int) []domain.Product {
	cats := domain.Categories()
	products := make([]domain.Product, 0, count)
	for id := start; id < start+count; id++ {
		cat := cats[id%len(cats)]
		products = append(products, domain.Product{
			ID:          id,
			Name:        fmt.Sprintf("%s Style %d", cat, id),
			Category:    cat,
			Price:       699 + (id%7)*300,
			Discount:    generatedDiscounts[id%7],
			Rating:      math.Round((3.8+float64(id%5)*0.3)*10) / 10,
			Description: fmt.Sprintf("Trendy %s piece number %d.", strings.ToLower(string(cat)), id),
			Image:       domain.PlaceholderImage(id),
		})
	}
	return products
}

// SeedProducts returns the launch catalog
func SeedProducts() []domain.Product {
	seed := []domain.Product{
		{ID: 1, Name: "Classic White Tee", Category: domain.CategoryMen, Price: 799, Discount: 20, Rating: 4.3, Description: "100% cotton, breathable everyday essential."},
		{ID: 2, Name: "Slim Fit Jeans", Category: domain.CategoryMen, Price: 1999, Discount: 30, Rating: 4.6, Description: "Stretch denim with tapered legs."},
		{ID: 3, Name: "Summer Floral Dress", Category: domain.CategoryWomen, Price: 2499, Discount: 25, Rating: 4.7, Description: "Lightweight chiffon, midi length."},
		{ID: 4, Name: "Athleisure Joggers", Category: domain.CategoryMen, Price: 1499, Discount: 15, Rating: 4.2, Description: "Moisture wicking fabric, zip pockets."},
		{ID: 5, Name: "Oversized Hoodie", Category: domain.CategoryWomen, Price: 1799, Discount: 35, Rating: 4.5, Description: "Fleece lined, cozy and warm."},
		{ID: 6, Name: "Kids Unicorn Tee", Category: domain.CategoryKids, Price: 699, Discount: 10, Rating: 4.4, Description: "Magical print, super soft."},
		{ID: 7, Name: "Linen Shirt", Category: domain.CategoryMen, Price: 2199, Discount: 20, Rating: 4.1, Description: "Breathable linen for summer."},
		{ID: 8, Name: "High-Waist Trousers", Category: domain.CategoryWomen, Price: 2299, Discount: 40, Rating: 4.0, Description: "Tailored fit, office ready."},
		{ID: 9, Name: "Denim Jacket", Category: domain.CategoryMen, Price: 2599, Discount: 15, Rating: 4.3, Description: "All-season staple layer."},
		{ID: 10, Name: "Saree with Blouse", Category: domain.CategoryWomen, Price: 3499, Discount: 28, Rating: 4.6, Description: "Georgette with delicate border."},
		{ID: 11, Name: "Kids Track Set", Category: domain.CategoryKids, Price: 1299, Discount: 18, Rating: 4.2, Description: "2-piece set for play days."},
		{ID: 12, Name: "Printed Kurta", Category: domain.CategoryWomen, Price: 1599, Discount: 22, Rating: 4.1, Description: "Cotton kurta, everyday wear."},
		{ID: 13, Name: "Leather Belt", Category: domain.CategoryAccessories, Price: 999, Discount: 10, Rating: 4.5, Description: "Full-grain leather, metal buckle."},
		{ID: 14, Name: "Canvas Sneakers", Category: domain.CategoryMen, Price: 1799, Discount: 26, Rating: 4.4, Description: "Cushioned footbed, lace-up."},
		{ID: 15, Name: "Ankle Boots", Category: domain.CategoryWomen, Price: 2899, Discount: 30, Rating: 4.3, Description: "Block heel, faux leather."},
		{ID: 16, Name: "Baseball Cap", Category: domain.CategoryAccessories, Price: 599, Discount: 5, Rating: 4.0, Description: "Adjustable strap, curved brim."},
		{ID: 17, Name: "Graphic Tee", Category: domain.CategoryMen, Price: 899, Discount: 18, Rating: 4.1, Description: "Bold print, relaxed fit."},
		{ID: 18, Name: "Pleated Skirt", Category: domain.CategoryWomen, Price: 1999, Discount: 32, Rating: 4.7, Description: "Knee length, swishy pleats."},
		{ID: 19, Name: "Kids Raincoat", Category: domain.CategoryKids, Price: 1399, Discount: 20, Rating: 4.2, Description: "Waterproof with hood."},
		{ID: 20, Name: "Sling Bag", Category: domain.CategoryAccessories, Price: 1499, Discount: 12, Rating: 4.4, Description: "Compact crossbody with zip."},
	}
	for i := range seed {
		seed[i].Image = domain.PlaceholderImage(seed[i].ID)
	}
	return seed
}
