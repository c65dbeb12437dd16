package domain

import "time"

// Session is the state owned by one storefront visitor: the view
// parameters and the cart.
type Session struct {
	ID        string
	Query     QueryState
	Cart      *Cart
	CreatedAt time.Time
	// LastActive is refreshed on every read or write of the session
	LastActive time.Time
}

// Clone returns a deep copy so callers never share the cart
func (s *Session) Clone() *Session {
	c := *s
	if s.Cart != nil {
		c.Cart = s.Cart.Clone()
	}
	return &c
}
