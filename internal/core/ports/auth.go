package ports

import (
	"context"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// UserRepository defines persistence for registered accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	Delete(ctx context.Context, id string) error
}

// RegisterInput carries a new account request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	Name           string
	Email          string
	ProfilePicture string
}

// LoginResult is returned on successful authentication. Token is the signed
// session token the client presents on subsequent requests.
type LoginResult struct {
	Token     string
	SessionID string
	Identity  *domain.Identity
}

// ListUsersResult is the paginated account listing for administrators.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AuthService defines registration, login, and account administration.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string)
	UpdateProfile(ctx context.Context, sessionID, userID string, input UpdateProfileInput) (*domain.Identity, error)

	ListUsers(ctx context.Context, page, limit int) (*ListUsersResult, error)
	DeleteUser(ctx context.Context, id string) error
	ChangeRole(ctx context.Context, id string, role string) error
}
