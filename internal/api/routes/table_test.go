package routes

import (
	"testing"

	"github.com/shopease/storefront-api/internal/core/domain"
)

func TestTable_Match_LongestPrefixWins(t *testing.T) {
	table := NewTable("/", "/login",
		Rule{Prefix: "/", Access: Public},
		Rule{Prefix: "/admin", Access: RoleScoped, Role: domain.RoleAdmin},
		Rule{Prefix: "/admin/public", Access: Public},
	)

	if rule := table.Match("/admin/users"); rule.Role != domain.RoleAdmin {
		t.Fatalf("expected admin rule for /admin/users, got %+v", rule)
	}
	if rule := table.Match("/admin/public/faq"); rule.Access != Public {
		t.Fatalf("more specific public rule should win, got %+v", rule)
	}
	if rule := table.Match("/about"); rule.Access != Public {
		t.Fatalf("expected root public rule, got %+v", rule)
	}
}

func TestTable_Match_SegmentBoundaries(t *testing.T) {
	table := NewTable("/", "/login",
		Rule{Prefix: "/", Access: Public},
		Rule{Prefix: "/admin", Access: RoleScoped, Role: domain.RoleAdmin},
	)

	if rule := table.Match("/admin"); rule.Role != domain.RoleAdmin {
		t.Fatalf("exact prefix should match, got %+v", rule)
	}
	if rule := table.Match("/admin/"); rule.Role != domain.RoleAdmin {
		t.Fatalf("trailing slash should match, got %+v", rule)
	}
	if rule := table.Match("/administrator"); rule.Role != domain.RoleAnonymous || rule.Access != Public {
		t.Fatalf("/administrator must not match /admin, got %+v", rule)
	}
}

func TestTable_Match_UncoveredPathIsPublic(t *testing.T) {
	table := NewTable("/", "/login",
		Rule{Prefix: "/admin", Access: RoleScoped, Role: domain.RoleAdmin},
	)

	if rule := table.Match("/whatever"); rule.Access != Public {
		t.Fatalf("uncovered path should default to public, got %+v", rule)
	}
}

func TestStorefront_RoleAreas(t *testing.T) {
	table := Storefront()

	cases := []struct {
		path string
		role domain.Role
	}{
		{"/admin", domain.RoleAdmin},
		{"/admin/users", domain.RoleAdmin},
		{"/seller", domain.RoleSeller},
		{"/seller/products", domain.RoleSeller},
		{"/customer", domain.RoleCustomer},
		{"/customer/cart", domain.RoleCustomer},
	}
	for _, tc := range cases {
		rule := table.Match(tc.path)
		if rule.Access != RoleScoped || rule.Role != tc.role {
			t.Fatalf("%s: expected role %s, got %+v", tc.path, tc.role, rule)
		}
	}

	for _, path := range []string{"/", "/login", "/register", "/products", "/products/123"} {
		if rule := table.Match(path); rule.Access != Public {
			t.Fatalf("%s: expected public, got %+v", path, rule)
		}
	}

	if table.LandingPath != "/" || table.LoginPath != "/login" {
		t.Fatalf("unexpected landing/login paths: %q %q", table.LandingPath, table.LoginPath)
	}
}
