package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the mutable, in-progress order for one terminal session. Items keep
// insertion order; each add produces a distinct line even when the
// composition matches an existing one.
type Cart struct {
	ID        uuid.UUID
	Items     []LineItem
	Customer  Customer
	CreatedAt time.Time
}

// AddItem appends a line item to the sequence.
func (c *Cart) AddItem(item LineItem) {
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the line with the given id, reporting whether it was
// present. A missing id is not an error.
func (c *Cart) RemoveItem(id uuid.UUID) bool {
	for i, item := range c.Items {
		if item.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity sets a line's quantity, clamping values below 1 to 1, and
// recomputes its total price. Removing a line is a separate explicit action,
// so a zero never empties a line here. Reports whether the id was present.
func (c *Cart) UpdateQuantity(id uuid.UUID, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			c.Items[i].reprice()
			return true
		}
	}
	return false
}

// Subtotal sums all line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.TotalPrice)
	}
	return sum
}

// TotalQuantity sums units across lines. Bulk discounts key off units, not
// the number of lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Clear resets the item sequence and the customer draft for the next order.
func (c *Cart) Clear() {
	c.Items = nil
	c.Customer = Customer{}
}

// Snapshot deep-copies the current line items for hand-off to a bill.
func (c *Cart) Snapshot() []LineItem {
	out := make([]LineItem, 0, len(c.Items))
	for _, item := range c.Items {
		out = append(out, item.clone())
	}
	return out
}
