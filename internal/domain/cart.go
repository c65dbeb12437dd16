package domain

import "fmt"

// MaxQuantity is the most units of one product a cart line can hold
const MaxQuantity = 999

// CartLine is the quantity of one product held in a cart. ProductID is a
// reference into the catalog, not ownership.
type CartLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Cart keeps at most one line per product, in the order products were
// first added.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(productID int) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add increments the line for productID, creating it with quantity 1 when
// absent. A line already at MaxQuantity is left as is.
func (c *Cart) Add(productID int) {
	if i := c.indexOf(productID); i >= 0 {
		if c.lines[i].Quantity < MaxQuantity {
			c.lines[i].Quantity++
		}
		return
	}
	c.lines = append(c.lines, CartLine{ProductID: productID, Quantity: 1})
}

// Remove deletes the line for productID. It reports whether a line existed.
func (c *Cart) Remove(productID int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// SetQuantity sets the quantity of an existing line, clamped to
// 1..MaxQuantity. It reports whether the line existed.
func (c *Cart) SetQuantity(productID, quantity int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	switch {
	case quantity < 1:
		quantity = 1
	case quantity > MaxQuantity:
		quantity = MaxQuantity
	}
	c.lines[i].Quantity = quantity
	return true
}

// CheckQuantity rejects quantities a cart line cannot hold. Values below 1
// are accepted since SetQuantity raises them to 1.
func CheckQuantity(quantity int) error {
	if quantity > MaxQuantity {
		return ValidationError{
			Field:   "quantity",
			Message: fmt.Sprintf("must be at most %d", MaxQuantity),
		}
	}
	return nil
}

// Lines returns a copy of the cart lines
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len is the number of distinct lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clone returns an independent copy of the cart
func (c *Cart) Clone() *Cart {
	return &Cart{lines: c.Lines()}
}

// LineItem is a cart line resolved against the catalog
//
// swagger:model
type LineItem struct {
	Product   Product `json:"product"`
	UnitPrice int     `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal int     `json:"line_total"`
}

// CartView is the priced content of a cart
//
// swagger:model
type CartView struct {
	Lines     []LineItem `json:"lines"`
	Subtotal  int        `json:"subtotal"`
	ItemCount int        `json:"item_count"`
}

// PriceCart joins lines against products by id. Lines whose product cannot
// be resolved are dropped from the view.
func PriceCart(lines []CartLine, products []Product) CartView {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := CartView{Lines: make([]LineItem, 0, len(lines))}
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			continue
		}
		unit := p.DiscountedPrice()
		item := LineItem{
			Product:   p,
			UnitPrice: unit,
			Quantity:  l.Quantity,
			LineTotal: unit * l.Quantity,
		}
		view.Lines = append(view.Lines, item)
		view.Subtotal += item.LineTotal
		view.ItemCount += item.Quantity
	}
	return view
}
