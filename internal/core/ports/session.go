package ports

import (
	"context"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// SessionStore persists the serialized identity of each session. A Load that
// finds a corrupt value must purge it and report "no identity" rather than
// surface the corruption.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, identity *domain.Identity) error
	Load(ctx context.Context, sessionID string) (*domain.Identity, error)
	Clear(ctx context.Context, sessionID string) error
}

// SessionService owns the in-memory identity for every live session and is
// the only component allowed to mutate it. Consumers receive read-only
// copies via Current. Store failures never escape this boundary; every
// failure mode degrades to "anonymous".
type SessionService interface {
	// Login registers a new authenticated session and returns its ID.
	// Persistence is best effort: the in-memory identity is set first and is
	// never rolled back if the store write fails.
	Login(ctx context.Context, identity *domain.Identity) (string, error)
	// Current returns the identity for the session, or nil when the session
	// is unknown, expired, or the caller is anonymous.
	Current(ctx context.Context, sessionID string) *domain.Identity
	// Logout ends the session. Calling it on an already-ended session is a no-op.
	Logout(ctx context.Context, sessionID string)
	// UpdateProfile replaces the session's identity wholesale (no field merging)
	// and re-persists it best effort.
	UpdateProfile(ctx context.Context, sessionID string, identity *domain.Identity)
}
