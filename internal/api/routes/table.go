// Package routes holds the static routing table that pairs path prefixes
// with access requirements. The table drives the shell gate middleware; it
// is data, not behaviour, so the full navigation policy is visible in one
// place.
package routes

import (
	"strings"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// Access classifies who may enter a path prefix.
type Access int

const (
	// Public paths render for everyone, authenticated or not.
	Public Access = iota
	// Authenticated paths require any logged-in identity.
	Authenticated
	// RoleScoped paths require the identity's role to match Rule.Role.
	RoleScoped
)

// Rule binds one path prefix to an access requirement.
type Rule struct {
	Prefix string
	Access Access
	Role   domain.Role
}

// Table is the navigation policy: an ordered set of rules plus the two
// redirect targets the gate uses.
type Table struct {
	LandingPath string
	LoginPath   string
	rules       []Rule
}

// NewTable builds a Table from rules. Matching is longest-prefix-wins, so
// rule order does not matter.
func NewTable(landingPath, loginPath string, rules ...Rule) *Table {
	return &Table{LandingPath: landingPath, LoginPath: loginPath, rules: rules}
}

// Match returns the most specific rule covering path. Paths covered by no
// rule are public; the router's catch-all owns redirecting unknown pages.
func (t *Table) Match(path string) Rule {
	best := Rule{Access: Public}
	bestLen := -1
	for _, rule := range t.rules {
		if !prefixMatches(path, rule.Prefix) {
			continue
		}
		if len(rule.Prefix) > bestLen {
			best = rule
			bestLen = len(rule.Prefix)
		}
	}
	return best
}

// prefixMatches reports whether prefix covers path on segment boundaries,
// so "/admin" covers "/admin" and "/admin/dashboard" but not "/administrator".
func prefixMatches(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

// Storefront returns the ShopEase navigation policy: the public pages, and
// one role-scoped section per navigation shell.
func Storefront() *Table {
	return NewTable("/", "/login",
		Rule{Prefix: "/", Access: Public},
		Rule{Prefix: "/login", Access: Public},
		Rule{Prefix: "/register", Access: Public},
		Rule{Prefix: "/products", Access: Public},
		Rule{Prefix: "/admin", Access: RoleScoped, Role: domain.RoleAdmin},
		Rule{Prefix: "/seller", Access: RoleScoped, Role: domain.RoleSeller},
		Rule{Prefix: "/customer", Access: RoleScoped, Role: domain.RoleCustomer},
	)
}
