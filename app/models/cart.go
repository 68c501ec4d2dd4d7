package models

// CartLine is one row in the shopping cart: a product snapshot plus the
// requested quantity. Lines live in the session snapshot, not the database.
//
// Within a cart there is at most one line per product id; adding the same
// product again increments the existing line's quantity.
type CartLine struct {
	ID        uint64   `json:"id"`
	UserID    uint     `json:"user_id"` // 0 for anonymous shoppers
	ProductID uint     `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// Subtotal is price × quantity for this line. A missing product snapshot
// counts as price 0 rather than an error.
func (l CartLine) Subtotal() float64 {
	if l.Product == nil {
		return 0
	}
	return l.Product.Price * float64(l.Quantity)
}
