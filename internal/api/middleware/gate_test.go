package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/api/routes"
	"github.com/shopease/storefront-api/internal/core/domain"
)

func gateRequest(t *testing.T, path string, identity *domain.Identity) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set("identity", identity)
	}

	mw := Gate(routes.Storefront())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	return rec
}

func TestGate_PublicPathsRenderForEveryone(t *testing.T) {
	for _, path := range []string{"/", "/login", "/register", "/products"} {
		if rec := gateRequest(t, path, nil); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 for anonymous, got %d", path, rec.Code)
		}
		admin := &domain.Identity{ID: "u1", Role: domain.RoleAdmin}
		if rec := gateRequest(t, path, admin); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 for admin, got %d", path, rec.Code)
		}
	}
}

func TestGate_AnonymousOnProtectedPathRedirectsToLogin(t *testing.T) {
	for _, path := range []string{"/admin", "/seller/products", "/customer/cart"} {
		rec := gateRequest(t, path, nil)
		if rec.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %q", path, loc)
		}
	}
}

func TestGate_WrongRoleRedirectsToLanding(t *testing.T) {
	seller := &domain.Identity{ID: "u1", Role: domain.RoleSeller}
	for _, path := range []string{"/admin", "/admin/users", "/customer"} {
		rec := gateRequest(t, path, seller)
		if rec.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Fatalf("%s: expected redirect to /, got %q", path, loc)
		}
	}
}

func TestGate_MatchingRoleRenders(t *testing.T) {
	cases := map[string]domain.Role{
		"/admin":           domain.RoleAdmin,
		"/admin/users":     domain.RoleAdmin,
		"/seller/products": domain.RoleSeller,
		"/customer/cart":   domain.RoleCustomer,
	}
	for path, role := range cases {
		identity := &domain.Identity{ID: "u1", Role: role}
		if rec := gateRequest(t, path, identity); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 for %s, got %d", path, role, rec.Code)
		}
	}
}
