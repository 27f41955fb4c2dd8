package ports

import (
	"context"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// CartStore persists one cart per customer.
type CartStore interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Clear(ctx context.Context, userID string) error
}

// WishlistStore persists the set of wished product IDs per customer.
type WishlistStore interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]string, error)
}

// CartLineView is a cart line priced against the current catalog.
type CartLineView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// CartView is the priced cart returned to clients. Prices are resolved at
// read time; lines whose product has disappeared are dropped silently.
type CartView struct {
	Items    []CartLineView `json:"items"`
	Subtotal float64        `json:"subtotal"`
}

// CartService defines cart and wishlist use cases.
type CartService interface {
	Get(ctx context.Context, userID string) (*CartView, error)
	SetItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error)
	Clear(ctx context.Context, userID string) error

	AddWish(ctx context.Context, userID, productID string) error
	RemoveWish(ctx context.Context, userID, productID string) error
	Wishlist(ctx context.Context, userID string) ([]*domain.Product, error)
}
