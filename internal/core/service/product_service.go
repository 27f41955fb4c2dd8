package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

// Create adds a product to the catalog under the given seller.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		SellerID:    input.SellerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.log.Error().Err(err).Str("seller_id", input.SellerID).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Str("product_id", product.ID).Str("seller_id", product.SellerID).Msg("product created")
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces the product's catalog fields. Sellers may only update their
// own products; admins may update any.
func (s *ProductService) Update(ctx context.Context, id string, input ports.CreateProductInput, actor *domain.Identity) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(existing, actor); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Category = input.Category
	existing.Price = input.Price
	existing.Stock = input.Stock
	existing.ImageURL = input.ImageURL
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a product, subject to the same ownership rule as Update.
func (s *ProductService) Delete(ctx context.Context, id string, actor *domain.Identity) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwnership(existing, actor); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, filter ports.ListProductsFilter) (*ports.ListProductsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func checkOwnership(product *domain.Product, actor *domain.Identity) error {
	if actor == nil {
		return domain.ErrForbidden
	}
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleSeller:
		if product.SellerID == actor.ID {
			return nil
		}
	}
	return domain.ErrForbidden
}
