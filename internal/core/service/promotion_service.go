package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

var ErrInvalidPromotion = errors.New("invalid promotion definition")

type PromotionService struct {
	repo ports.PromotionRepository
}

func NewPromotionService(repo ports.PromotionRepository) *PromotionService {
	return &PromotionService{repo: repo}
}

func (s *PromotionService) Create(ctx context.Context, input ports.CreatePromotionInput) (*domain.Promotion, error) {
	if input.Code == "" || input.DiscountPercent <= 0 || input.DiscountPercent > 100 {
		return nil, ErrInvalidPromotion
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, ErrInvalidPromotion
	}

	promo := &domain.Promotion{
		Code:            input.Code,
		Description:     input.Description,
		DiscountPercent: input.DiscountPercent,
		StartsAt:        input.StartsAt.UTC(),
		EndsAt:          input.EndsAt.UTC(),
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *PromotionService) ListActive(ctx context.Context) ([]*domain.Promotion, error) {
	return s.repo.ListActive(ctx, time.Now().UTC())
}

func (s *PromotionService) List(ctx context.Context) ([]*domain.Promotion, error) {
	return s.repo.List(ctx)
}

func (s *PromotionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
