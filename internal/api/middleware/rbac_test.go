package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/domain"
)

func rbacRequest(t *testing.T, identity *domain.Identity, allowed ...domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set("identity", identity)
	}

	mw := RBAC(allowed...)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("rbac returned error: %v", err)
	}
	return rec
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	identity := &domain.Identity{ID: "u1", Role: domain.RoleSeller}
	rec := rbacRequest(t, identity, domain.RoleSeller, domain.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_RejectsAnonymous(t *testing.T) {
	rec := rbacRequest(t, nil, domain.RoleAdmin)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRBAC_RejectsWrongRole(t *testing.T) {
	identity := &domain.Identity{ID: "u1", Role: domain.RoleCustomer}
	rec := rbacRequest(t, identity, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
