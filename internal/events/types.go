package events

type ProductAdded struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
}

type ProductsLoaded struct {
	FirstID int `json:"first_id"`
	LastID  int `json:"last_id"`
	Count   int `json:"count"`
}

type CartUpdated struct {
	SessionID string `json:"session_id"`
	ItemCount int    `json:"item_count"`
	Subtotal  int    `json:"subtotal"`
}
