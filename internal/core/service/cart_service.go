package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

// CartService manages carts and wishlists. Carts store only product IDs and
// quantities; prices are resolved against the catalog at read time so a cart
// never shows a stale price.
type CartService struct {
	carts    ports.CartStore
	wishes   ports.WishlistStore
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCartService(carts ports.CartStore, wishes ports.WishlistStore, products ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{carts: carts, wishes: wishes, products: products, log: log}
}

func (s *CartService) Get(ctx context.Context, userID string) (*ports.CartView, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.price(ctx, cart)
}

// SetItem sets a line quantity (zero removes the line) and returns the
// re-priced cart.
func (s *CartService) SetItem(ctx context.Context, userID, productID string, quantity int) (*ports.CartView, error) {
	if quantity > 0 {
		// Reject unknown products up front; pricing would drop them silently.
		if _, err := s.products.FindByID(ctx, productID); err != nil {
			return nil, err
		}
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.SetItem(productID, quantity)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.price(ctx, cart)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}

func (s *CartService) AddWish(ctx context.Context, userID, productID string) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.wishes.Add(ctx, userID, productID)
}

func (s *CartService) RemoveWish(ctx context.Context, userID, productID string) error {
	return s.wishes.Remove(ctx, userID, productID)
}

// Wishlist resolves the wished product IDs against the catalog. Products that
// have since been removed are skipped.
func (s *CartService) Wishlist(ctx context.Context, userID string) ([]*domain.Product, error) {
	ids, err := s.wishes.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.products.FindByID(ctx, id)
		if err != nil {
			if err == domain.ErrProductNotFound {
				continue
			}
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// price resolves cart lines against the current catalog. Lines whose product
// no longer exists are dropped rather than failing the whole cart.
func (s *CartService) price(ctx context.Context, cart *domain.Cart) (*ports.CartView, error) {
	view := &ports.CartView{Items: make([]ports.CartLineView, 0, len(cart.Items))}
	for _, item := range cart.Items {
		p, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if err == domain.ErrProductNotFound {
				s.log.Debug().Str("product_id", item.ProductID).Msg("dropping vanished product from cart view")
				continue
			}
			return nil, err
		}
		line := ports.CartLineView{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  item.Quantity,
			LineTotal: p.Price * float64(item.Quantity),
			ImageURL:  p.ImageURL,
		}
		view.Items = append(view.Items, line)
		view.Subtotal += line.LineTotal
	}
	return view, nil
}
