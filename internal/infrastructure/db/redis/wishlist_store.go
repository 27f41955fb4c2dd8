package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const wishlistKeyPrefix = "wishlist:"

// WishlistStore keeps each customer's wished product IDs in a Redis set.
// Key format: wishlist:<user_id>
type WishlistStore struct {
	client *redis.Client
}

func NewWishlistStore(client *redis.Client) *WishlistStore {
	return &WishlistStore{client: client}
}

func (s *WishlistStore) Add(ctx context.Context, userID, productID string) error {
	if err := s.client.SAdd(ctx, s.key(userID), productID).Err(); err != nil {
		return fmt.Errorf("wishlist add: %w", err)
	}
	return nil
}

func (s *WishlistStore) Remove(ctx context.Context, userID, productID string) error {
	if err := s.client.SRem(ctx, s.key(userID), productID).Err(); err != nil {
		return fmt.Errorf("wishlist remove: %w", err)
	}
	return nil
}

func (s *WishlistStore) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("wishlist list: %w", err)
	}
	return ids, nil
}

func (s *WishlistStore) key(userID string) string {
	return wishlistKeyPrefix + userID
}
