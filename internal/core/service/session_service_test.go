package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopease/storefront-api/internal/core/domain"
)

type stubSessionStore struct {
	saved   map[string]*domain.Identity
	saveErr error
	loadErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{saved: make(map[string]*domain.Identity)}
}

func (s *stubSessionStore) Save(_ context.Context, sessionID string, identity *domain.Identity) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := *identity
	s.saved[sessionID] = &clone
	return nil
}

func (s *stubSessionStore) Load(_ context.Context, sessionID string) (*domain.Identity, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	identity, ok := s.saved[sessionID]
	if !ok {
		return nil, nil
	}
	clone := *identity
	return &clone, nil
}

func (s *stubSessionStore) Clear(_ context.Context, sessionID string) error {
	delete(s.saved, sessionID)
	return nil
}

func testIdentity(role domain.Role) *domain.Identity {
	return &domain.Identity{
		ID:    "user_1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  role,
	}
}

func TestSessionService_LoginAndCurrent(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, zerolog.Nop())

	sessionID, err := svc.Login(context.Background(), testIdentity(domain.RoleCustomer))
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if sessionID == "" {
		t.Fatalf("expected session ID, got empty")
	}
	if _, ok := store.saved[sessionID]; !ok {
		t.Fatalf("session not persisted")
	}

	identity := svc.Current(context.Background(), sessionID)
	if identity == nil {
		t.Fatalf("expected identity, got nil")
	}
	if identity.Role != domain.RoleCustomer {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
}

func TestSessionService_Login_InvalidIdentity(t *testing.T) {
	svc := NewSessionService(newStubSessionStore(), zerolog.Nop())

	if _, err := svc.Login(context.Background(), nil); !errors.Is(err, domain.ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity for nil, got %v", err)
	}
	if _, err := svc.Login(context.Background(), testIdentity(domain.RoleAnonymous)); !errors.Is(err, domain.ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity for anonymous role, got %v", err)
	}
}

func TestSessionService_Login_PersistFailureStillWorks(t *testing.T) {
	store := newStubSessionStore()
	store.saveErr = errors.New("store down")
	svc := NewSessionService(store, zerolog.Nop())

	sessionID, err := svc.Login(context.Background(), testIdentity(domain.RoleSeller))
	if err != nil {
		t.Fatalf("Login should tolerate persist failure, got %v", err)
	}

	identity := svc.Current(context.Background(), sessionID)
	if identity == nil || identity.Role != domain.RoleSeller {
		t.Fatalf("in-memory session should survive a failed persist, got %+v", identity)
	}
}

func TestSessionService_Current_LoadsFromStoreOnce(t *testing.T) {
	store := newStubSessionStore()
	store.saved["s1"] = testIdentity(domain.RoleAdmin)
	svc := NewSessionService(store, zerolog.Nop())

	identity := svc.Current(context.Background(), "s1")
	if identity == nil || identity.Role != domain.RoleAdmin {
		t.Fatalf("expected admin identity from store, got %+v", identity)
	}

	// Cached now: a failing store must not affect subsequent reads.
	store.loadErr = errors.New("store down")
	identity = svc.Current(context.Background(), "s1")
	if identity == nil || identity.Role != domain.RoleAdmin {
		t.Fatalf("expected cached identity, got %+v", identity)
	}
}

func TestSessionService_Current_UnknownOrAnonymous(t *testing.T) {
	svc := NewSessionService(newStubSessionStore(), zerolog.Nop())

	if identity := svc.Current(context.Background(), ""); identity != nil {
		t.Fatalf("empty session ID should be anonymous, got %+v", identity)
	}
	if identity := svc.Current(context.Background(), "unknown"); identity != nil {
		t.Fatalf("unknown session should be anonymous, got %+v", identity)
	}
}

func TestSessionService_Current_ReturnsCopy(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, zerolog.Nop())

	sessionID, err := svc.Login(context.Background(), testIdentity(domain.RoleCustomer))
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	first := svc.Current(context.Background(), sessionID)
	first.Name = "mutated"

	second := svc.Current(context.Background(), sessionID)
	if second.Name != "Alice" {
		t.Fatalf("mutating a returned identity leaked into the session: %q", second.Name)
	}
}

func TestSessionService_Logout_Idempotent(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, zerolog.Nop())

	sessionID, err := svc.Login(context.Background(), testIdentity(domain.RoleCustomer))
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.Logout(context.Background(), sessionID)
	if identity := svc.Current(context.Background(), sessionID); identity != nil {
		t.Fatalf("session should be gone after logout, got %+v", identity)
	}
	if _, ok := store.saved[sessionID]; ok {
		t.Fatalf("persisted session should be cleared")
	}

	// Second logout is a no-op, not an error.
	svc.Logout(context.Background(), sessionID)
	svc.Logout(context.Background(), "")
}

func TestSessionService_UpdateProfile(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, zerolog.Nop())

	sessionID, err := svc.Login(context.Background(), testIdentity(domain.RoleCustomer))
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	updated := testIdentity(domain.RoleCustomer)
	updated.Name = "Alice Cooper"
	svc.UpdateProfile(context.Background(), sessionID, updated)

	identity := svc.Current(context.Background(), sessionID)
	if identity.Name != "Alice Cooper" {
		t.Fatalf("profile update not reflected, got %q", identity.Name)
	}
	if identity.Role != domain.RoleCustomer {
		t.Fatalf("role must not change on profile update, got %s", identity.Role)
	}
	if store.saved[sessionID].Name != "Alice Cooper" {
		t.Fatalf("profile update not persisted")
	}
}
