package mongo

import (
	"testing"
	"time"

	"github.com/shopease/storefront-api/internal/core/domain"
)

func TestUserDocumentMapping(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	user := &domain.User{
		Name:           "Ana",
		Email:          "ana@example.com",
		PasswordHash:   "$2a$10$hash",
		Role:           domain.RoleSeller,
		ProfilePicture: "https://cdn.example.com/ana.png",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	doc := toMongoUser(user)
	if doc.ProfilePicture != user.ProfilePicture {
		t.Fatalf("profile picture must survive the write mapping, got %q", doc.ProfilePicture)
	}
	if doc.Role != "seller" || doc.Email != user.Email || doc.PasswordHash != user.PasswordHash {
		t.Fatalf("unexpected document: %+v", doc)
	}

	got := doc.toDomain()
	if got.ProfilePicture != user.ProfilePicture {
		t.Fatalf("profile picture must survive the read mapping, got %q", got.ProfilePicture)
	}
	if got.Role != domain.RoleSeller || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserDocumentMapping_ZeroTimestamps(t *testing.T) {
	mu := mongoUser{Name: "Ana", Email: "ana@example.com", Role: "customer"}

	got := mu.toDomain()
	if !got.CreatedAt.IsZero() || !got.UpdatedAt.IsZero() {
		t.Fatalf("zero stored timestamps must map to zero times, got %v / %v", got.CreatedAt, got.UpdatedAt)
	}
}
