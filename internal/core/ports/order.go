package ports

import (
	"context"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// ListOrdersFilter narrows order queries. CustomerID and SellerID scope the
// result to the caller's own orders depending on role.
type ListOrdersFilter struct {
	CustomerID string
	SellerID   string
	Status     string
	Page       int
	Limit      int
}

// OrderRepository defines order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// FindByNumber retrieves an order. When customerID is non-empty the
	// lookup is additionally filtered to that customer.
	FindByNumber(ctx context.Context, orderNumber, customerID string) (*domain.Order, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
	UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus, notes string) error
}

// CheckoutInput carries everything needed to turn a cart into an order.
type CheckoutInput struct {
	CustomerID string
	PromoCode  string
	Shipping   ShippingInput
}

// ShippingInput is the delivery destination supplied at checkout.
type ShippingInput struct {
	Address string
	City    string
	ZipCode string
}

// GetOrderInput carries the parameters for a single-order lookup with RBAC.
type GetOrderInput struct {
	OrderNumber string
	Role        domain.Role
	ActorID     string
}

// ListOrdersInput carries the parameters for the order listing with RBAC.
type ListOrdersInput struct {
	Role    domain.Role
	ActorID string
	Status  string
	Page    int
	Limit   int
}

// ListOrdersResult is a paginated order listing.
type ListOrdersResult struct {
	Items      []*domain.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// OrderService defines checkout and order tracking use cases.
type OrderService interface {
	Checkout(ctx context.Context, input CheckoutInput) (*domain.Order, error)
	Get(ctx context.Context, input GetOrderInput) (*domain.Order, error)
	List(ctx context.Context, input ListOrdersInput) (*ListOrdersResult, error)
	UpdateStatus(ctx context.Context, orderNumber string, status string, notes string) (*domain.Order, error)
}
