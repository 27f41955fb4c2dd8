package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "user_" + string(rune('0'+r.nextID))
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, input ports.UpdateProfileInput) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if input.Name != "" {
		u.Name = input.Name
	}
	if input.Email != "" {
		u.Email = input.Email
	}
	if input.ProfilePicture != "" {
		u.ProfilePicture = input.ProfilePicture
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) List(_ context.Context, page, limit int) ([]*domain.User, int64, error) {
	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, cloneUser(u))
	}
	return users, int64(len(r.users)), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestAuthService(repo ports.UserRepository) (*AuthService, *SessionService) {
	sessions := NewSessionService(newStubSessionStore(), zerolog.Nop())
	return NewAuthService(repo, sessions, "secret", time.Hour, zerolog.Nop()), sessions
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pass12345",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("default role should be customer, got %s", user.Role)
	}
	if user.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "x@example.com", Password: "p"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for missing name, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Bob", Email: "b@example.com", Password: "p", Role: "admin"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("admin self-registration must be rejected, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Bob", Email: "b@example.com", Password: "p", Role: "wizard"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown role must be rejected, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	input := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pass12345"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, sessions := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@example.com", Password: "s3cret99", Role: "seller",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" || result.SessionID == "" {
		t.Fatalf("expected token and session ID, got %+v", result)
	}
	if result.Identity.Role != domain.RoleSeller {
		t.Fatalf("unexpected role: %s", result.Identity.Role)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sid"] != result.SessionID {
		t.Fatalf("expected sid claim %q, got %v", result.SessionID, claims["sid"])
	}
	if claims["role"] != "seller" {
		t.Fatalf("expected role claim seller, got %v", claims["role"])
	}

	if identity := sessions.Current(context.Background(), result.SessionID); identity == nil {
		t.Fatalf("login should start a live session")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "Dave", Email: "dave@example.com", Password: "goodpass"})
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout_EndsSession(t *testing.T) {
	repo := newStubUserRepo()
	svc, sessions := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "Eve", Email: "eve@example.com", Password: "pass12345"})
	result, err := svc.Login(context.Background(), "eve@example.com", "pass12345")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.Logout(context.Background(), result.SessionID)
	if identity := sessions.Current(context.Background(), result.SessionID); identity != nil {
		t.Fatalf("session should be gone after logout")
	}
}

func TestAuthService_ChangeRole(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	user, _ := svc.Register(context.Background(), ports.RegisterInput{Name: "Frank", Email: "frank@example.com", Password: "pass12345"})

	if err := svc.ChangeRole(context.Background(), user.ID, "seller"); err != nil {
		t.Fatalf("ChangeRole failed: %v", err)
	}
	updated, _ := repo.FindByID(context.Background(), user.ID)
	if updated.Role != domain.RoleSeller {
		t.Fatalf("role not updated, got %s", updated.Role)
	}

	if err := svc.ChangeRole(context.Background(), user.ID, "wizard"); !errors.Is(err, domain.ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity for unknown role, got %v", err)
	}
}
