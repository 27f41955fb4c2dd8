package service

import (
	"context"
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopease/storefront-api/internal/api/metrics"
	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/ports"
)

// AuthService implements registration, login, and account administration.
// Credential verification happens here; session state is delegated to the
// SessionService, which this service drives through login/logout.
type AuthService struct {
	repo      ports.UserRepository
	sessions  ports.SessionService
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionService, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a new account. Public registration accepts customers and
// sellers; admin accounts are provisioned out of band.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role, ok := domain.ParseRole(input.Role)
	if input.Role == "" {
		role = domain.RoleCustomer
	} else if !ok || role == domain.RoleAdmin {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("account registered")
	return created, nil
}

// Login verifies credentials, starts a session, and returns the signed
// session token alongside the identity.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	identity := user.Identity()
	sessionID, err := s.sessions.Login(ctx, identity)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user, sessionID)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues(string(user.Role)).Inc()

	return &ports.LoginResult{Token: token, SessionID: sessionID, Identity: identity}, nil
}

// Logout ends the session; repeating it is harmless.
func (s *AuthService) Logout(ctx context.Context, sessionID string) {
	s.sessions.Logout(ctx, sessionID)
}

// UpdateProfile persists the new profile fields and swaps the updated
// identity into the live session.
func (s *AuthService) UpdateProfile(ctx context.Context, sessionID, userID string, input ports.UpdateProfileInput) (*domain.Identity, error) {
	updated, err := s.repo.UpdateProfile(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	identity := updated.Identity()
	s.sessions.UpdateProfile(ctx, sessionID, identity)
	return identity, nil
}

// ListUsers returns a paginated account listing for administrators.
func (s *AuthService) ListUsers(ctx context.Context, page, limit int) (*ports.ListUsersResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Items:      users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// DeleteUser removes an account. Live sessions are untouched and expire with
// their store TTL.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ChangeRole updates an account's role. The change takes effect at the next
// login; sessions carry the role frozen at login time.
func (s *AuthService) ChangeRole(ctx context.Context, id string, role string) error {
	parsed, ok := domain.ParseRole(role)
	if !ok {
		return domain.ErrInvalidIdentity
	}
	return s.repo.UpdateRole(ctx, id, parsed)
}

func (s *AuthService) generateToken(user *domain.User, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid":   sessionID,
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
