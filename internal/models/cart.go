package models

// CartItem is a product plus a quantity of at least 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the per-session collection of items belonging to the current
// actor. It keeps insertion order and holds at most one entry per product
// id. The session store serializes access; Cart itself is not safe for
// concurrent use.
type Cart struct {
	items []CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends the product with quantity 1, or increments the quantity of
// an existing entry with the same product id.
func (c *Cart) Add(p Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// Remove deletes the entry for the product id entirely (not a decrement).
// Removing an absent id is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price times quantity over all entries.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.items)
}

// Empty reports whether the cart has no entries.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}
