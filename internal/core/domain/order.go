package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// validOrderTransitions defines the allowed state machine transitions.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderPaid, OrderCancelled},
	OrderPaid:    {OrderShipped, OrderCancelled},
	OrderShipped: {OrderDelivered},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidTransition = errors.New("invalid order status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
}

// OrderLine is a product snapshot frozen at checkout time so later price or
// catalog changes never rewrite past orders.
type OrderLine struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	SellerID  string  `json:"seller_id" bson:"seller_id"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// OrderStatusEntry records a single status transition on an order.
type OrderStatusEntry struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order is the checkout aggregate root.
type Order struct {
	ID              string             `json:"id" bson:"_id,omitempty"`
	OrderNumber     string             `json:"order_number" bson:"order_number"`
	CustomerID      string             `json:"customer_id" bson:"customer_id"`
	Lines           []OrderLine        `json:"lines" bson:"lines"`
	Subtotal        float64            `json:"subtotal" bson:"subtotal"`
	Discount        float64            `json:"discount" bson:"discount"`
	Total           float64            `json:"total" bson:"total"`
	PromoCode       string             `json:"promo_code,omitempty" bson:"promo_code,omitempty"`
	Status          OrderStatus        `json:"status" bson:"status"`
	Shipping        ShippingAddress    `json:"shipping" bson:"shipping"`
	StatusHistory   []OrderStatusEntry `json:"status_history" bson:"status_history"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// ContainsSeller reports whether any line in the order belongs to the seller.
func (o *Order) ContainsSeller(sellerID string) bool {
	for _, line := range o.Lines {
		if line.SellerID == sellerID {
			return true
		}
	}
	return false
}
