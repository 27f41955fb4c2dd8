package domain

import (
	"errors"
	"time"
)

var ErrCartEmpty = errors.New("cart is empty")

// CartItem is one product line in a cart. Quantity is always positive;
// setting a quantity of zero removes the line.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the pending purchase lines for a single customer.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SetItem sets the quantity for a product, adding the line when absent and
// removing it when quantity drops to zero or below.
func (c *Cart) SetItem(productID string, quantity int) {
	for i, item := range c.Items {
		if item.ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		return
	}
	if quantity > 0 {
		c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
	}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
