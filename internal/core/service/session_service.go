package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/api/metrics"
	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

// SessionService owns the identity of every live session. The in-memory copy
// is authoritative after the first load; the store is read once per session
// (on the first Current after a restart) and written on every mutation.
//
// Persistence is best effort: a failed store write is logged and counted but
// never rolled back, so a login with a degraded store still yields a working
// in-memory session for the life of the process.
type SessionService struct {
	store ports.SessionStore
	log   zerolog.Logger

	mu    sync.RWMutex
	cache map[string]*domain.Identity
}

func NewSessionService(store ports.SessionStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		store: store,
		log:   log,
		cache: make(map[string]*domain.Identity),
	}
}

// Login registers a new authenticated session and returns its ID.
func (s *SessionService) Login(ctx context.Context, identity *domain.Identity) (string, error) {
	if identity == nil || !identity.Role.Valid() {
		return "", domain.ErrInvalidIdentity
	}

	sessionID := uuid.NewString()

	s.mu.Lock()
	s.cache[sessionID] = identity.Clone()
	s.mu.Unlock()
	metrics.ActiveSessions.Inc()

	if err := s.store.Save(ctx, sessionID, identity); err != nil {
		metrics.SessionPersistFailures.Inc()
		s.log.Warn().Err(err).Str("user_id", identity.ID).Msg("session persist failed, continuing in memory")
	}

	s.log.Info().Str("user_id", identity.ID).Str("role", string(identity.Role)).Msg("session started")
	return sessionID, nil
}

// Current returns a copy of the session's identity, or nil for anonymous,
// unknown, or unrecoverable sessions.
func (s *SessionService) Current(ctx context.Context, sessionID string) *domain.Identity {
	if sessionID == "" {
		return nil
	}

	s.mu.RLock()
	cached, ok := s.cache[sessionID]
	s.mu.RUnlock()
	if ok {
		return cached.Clone()
	}

	identity, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.log.Warn().Err(err).Msg("session load failed, treating as anonymous")
		return nil
	}
	if identity == nil {
		return nil
	}

	s.mu.Lock()
	s.cache[sessionID] = identity
	s.mu.Unlock()
	metrics.ActiveSessions.Inc()

	return identity.Clone()
}

// Logout ends the session in memory and clears the persisted copy. Safe to
// call repeatedly; the end state is the same.
func (s *SessionService) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}

	s.mu.Lock()
	_, existed := s.cache[sessionID]
	delete(s.cache, sessionID)
	s.mu.Unlock()
	if existed {
		metrics.ActiveSessions.Dec()
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Msg("session clear failed")
	}
}

// UpdateProfile replaces the session's identity wholesale and re-persists it.
// The session stays authenticated throughout; the role cannot change here.
func (s *SessionService) UpdateProfile(ctx context.Context, sessionID string, identity *domain.Identity) {
	if sessionID == "" || identity == nil {
		return
	}

	s.mu.Lock()
	s.cache[sessionID] = identity.Clone()
	s.mu.Unlock()

	if err := s.store.Save(ctx, sessionID, identity); err != nil {
		metrics.SessionPersistFailures.Inc()
		s.log.Warn().Err(err).Str("user_id", identity.ID).Msg("session persist failed after profile update")
	}
}
