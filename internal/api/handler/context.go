package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the session middleware and
// fast-fails before any service call when it is absent. Handlers behind the
// strict Auth middleware can rely on it being present; the check guards
// against wiring mistakes.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get("identity").(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return identity, nil
}

// ctxSessionID returns the session ID set by the session middleware, or "".
func ctxSessionID(c echo.Context) string {
	sid, _ := c.Get("session_id").(string)
	return sid
}
