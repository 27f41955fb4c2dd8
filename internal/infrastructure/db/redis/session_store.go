package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/core/domain"
)

const sessionKeyPrefix = "session:"
const defaultSessionTTL = 24 * time.Hour

// SessionStore persists serialized identities in Redis, one key per session.
// Key format: session:<session_id>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A default TTL is applied when none is provided.
func NewSessionStore(client *redis.Client, ttl time.Duration, log zerolog.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl, log: log}
}

// Save serializes the identity under the session key, overwriting any
// previous value and refreshing the TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID string, identity *domain.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns the previously saved identity, or nil when no session exists.
// A value that fails to deserialize is purged so a corrupt session can never
// wedge the caller: the next Load sees a clean miss.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*domain.Identity, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		s.log.Warn().Err(err).Msg("corrupt session payload, purging")
		if delErr := s.client.Del(ctx, s.key(sessionID)).Err(); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to purge corrupt session")
		}
		return nil, nil
	}
	return &identity, nil
}

// Clear removes the persisted identity unconditionally. Clearing a session
// that does not exist is not an error.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
