package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/core/domain"
)

const cartKeyPrefix = "cart:"

// CartStore persists one serialized cart per customer.
// Key format: cart:<user_id>
type CartStore struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewCartStore(client *redis.Client, log zerolog.Logger) *CartStore {
	return &CartStore{client: client, log: log}
}

// Get returns the customer's cart. A missing or corrupt value yields an
// empty cart; corrupt values are purged like corrupt sessions.
func (s *CartStore) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	empty := &domain.Cart{UserID: userID}

	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return empty, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("corrupt cart payload, purging")
		_ = s.client.Del(ctx, s.key(userID)).Err()
		return empty, nil
	}
	return &cart, nil
}

func (s *CartStore) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.client.Set(ctx, s.key(cart.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *CartStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *CartStore) key(userID string) string {
	return cartKeyPrefix + userID
}
