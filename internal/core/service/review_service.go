package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
}

func NewReviewService(reviews ports.ReviewRepository, products ports.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.products.FindByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ProductID:    input.ProductID,
		CustomerID:   input.CustomerID,
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.reviews.ListByProduct(ctx, productID)
}
