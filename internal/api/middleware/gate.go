package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/api/routes"
	"github.com/shopease/storefront-api/internal/core/domain"
)

// Gate enforces the navigation policy on shell routes. Unlike RBAC, a failed
// check is not an error: anonymous callers on protected prefixes are sent to
// the login page and wrong-role callers to the landing page, mirroring how
// the storefront shell steers users. Gating here is navigation convenience;
// real authorization happens in the JSON API's RBAC middleware.
func Gate(table *routes.Table) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule := table.Match(c.Request().URL.Path)
			if rule.Access == routes.Public {
				return next(c)
			}

			identity, _ := c.Get(ctxIdentity).(*domain.Identity)
			if identity == nil {
				return c.Redirect(http.StatusFound, table.LoginPath)
			}

			if rule.Access == routes.RoleScoped && identity.Role != rule.Role {
				return c.Redirect(http.StatusFound, table.LandingPath)
			}
			return next(c)
		}
	}
}
