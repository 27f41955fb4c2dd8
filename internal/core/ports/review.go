package ports

import (
	"context"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// ReviewRepository defines review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error)
}

// CreateReviewInput carries a new product review.
type CreateReviewInput struct {
	ProductID    string
	CustomerID   string
	CustomerName string
	Rating       int
	Comment      string
}

// ReviewService defines review use cases.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error)
}
