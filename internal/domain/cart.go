package domain

import "time"

// CartItem is one line of the cart. Name and UnitPrice are copied from the
// catalog when the line is created, so later catalog edits never reprice an
// open cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Cart holds the lines of the in-progress sale. Lines keep insertion order
// for display and are keyed by product ID; a quantity never drops below 1,
// removal at quantity 1 deletes the line.
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalAmount is always recomputed, never stored.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Add increments the quantity of an existing line or appends a new line with
// quantity 1.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			c.UpdatedAt = time.Now()
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	})
	c.UpdatedAt = time.Now()
}

// Remove decrements the quantity of a line, deleting it when the quantity
// reaches zero. It reports whether the line existed.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if c.Items[i].Quantity > 1 {
			c.Items[i].Quantity--
		} else {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		c.UpdatedAt = time.Now()
		return true
	}
	return false
}

func (c *Cart) Clear() {
	c.Items = nil
	c.UpdatedAt = time.Now()
}

// Snapshot captures the full cart state at checkout time. The snapshot is
// immutable; cart edits after capture are rejected until the payment attempt
// is resolved.
func (c *Cart) Snapshot(currency string) CartSnapshot {
	items := make([]CartSnapshotItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartSnapshotItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		})
	}
	return CartSnapshot{
		Items:       items,
		TotalAmount: c.TotalAmount(),
		Currency:    currency,
		CapturedAt:  time.Now(),
	}
}
