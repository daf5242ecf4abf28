package models

// CartItem is one line in the cart. The Product field is a value copy taken
// when the line was added; later catalog edits do not reach existing carts.
// A line's identity is the (Product.ID, Size) pair, so the same product with
// and without a size makes two separate lines.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
}

// Cart is the serialized shape persisted per session. Total and ItemCount
// are derived from Items after every mutation and are never set directly.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func (c *Cart) recalculate() {
	var total int64
	count := 0
	for _, item := range c.Items {
		total += item.Product.Price * int64(item.Quantity)
		count += item.Quantity
	}
	c.Total = total
	c.ItemCount = count
}

// AddItem merges quantity into an existing line with the same identity or
// appends a new one. Quantity is taken as given; callers validate it.
func (c *Cart) AddItem(product Product, quantity int, size string) {
	for i, item := range c.Items {
		if item.Product.ID == product.ID && item.Size == size {
			c.Items[i].Quantity += quantity
			c.recalculate()
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity, Size: size})
	c.recalculate()
}

// RemoveItem drops every line matching (productID, size) exactly. Missing
// lines are a no-op.
func (c *Cart) RemoveItem(productID, size string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.Product.ID == productID && item.Size == size {
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
	c.recalculate()
}

// UpdateQuantity sets the quantity of the matching line. Zero or negative
// removes the line; a missing line is a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int, size string) {
	if quantity <= 0 {
		c.RemoveItem(productID, size)
		return
	}
	for i, item := range c.Items {
		if item.Product.ID == productID && item.Size == size {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.recalculate()
}

// Clear resets the cart to empty.
func (c *Cart) Clear() {
	c.Items = nil
	c.Total = 0
	c.ItemCount = 0
}
