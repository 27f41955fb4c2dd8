package ports

import (
	"context"
	"time"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// PromotionRepository defines promotion persistence.
type PromotionRepository interface {
	Create(ctx context.Context, promo *domain.Promotion) error
	FindByCode(ctx context.Context, code string) (*domain.Promotion, error)
	ListActive(ctx context.Context, at time.Time) ([]*domain.Promotion, error)
	List(ctx context.Context) ([]*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}

// CreatePromotionInput carries a new promotion definition.
type CreatePromotionInput struct {
	Code            string
	Description     string
	DiscountPercent float64
	StartsAt        time.Time
	EndsAt          time.Time
}

// PromotionService defines promotion use cases.
type PromotionService interface {
	Create(ctx context.Context, input CreatePromotionInput) (*domain.Promotion, error)
	ListActive(ctx context.Context) ([]*domain.Promotion, error)
	List(ctx context.Context) ([]*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}
