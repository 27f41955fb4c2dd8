package ports

import (
	"context"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// ListProductsFilter narrows catalog queries. Zero values mean "no filter".
type ListProductsFilter struct {
	Category string
	SellerID string
	Search   string
	MinPrice float64
	MaxPrice float64
	Page     int
	Limit    int
}

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Categories(ctx context.Context) ([]string, error)
	// DecrementStock atomically reduces stock, failing with
	// domain.ErrInsufficientStock when fewer than quantity units remain.
	DecrementStock(ctx context.Context, id string, quantity int) error
	// IncrementStock returns units to stock, unwinding a decrement from a
	// checkout that did not complete.
	IncrementStock(ctx context.Context, id string, quantity int) error
}

// CreateProductInput carries a product create/update request.
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	ImageURL    string
	SellerID    string
}

// ListProductsResult is a paginated catalog page.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines catalog use cases. Write operations enforce
// ownership: sellers may only touch their own products, admins anything.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input CreateProductInput, actor *domain.Identity) (*domain.Product, error)
	Delete(ctx context.Context, id string, actor *domain.Identity) error
	List(ctx context.Context, filter ListProductsFilter) (*ListProductsResult, error)
	Categories(ctx context.Context) ([]string, error)
}
