package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/shopease/storefront-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the signed session token for shell
// navigation; API clients may send the same token as a bearer header.
const SessionCookie = "shopease_session"

// Context keys set by the session middleware.
const (
	ctxIdentity  = "identity"
	ctxSessionID = "session_id"
)

// Session resolves the caller's identity from the session token and injects
// it into the request context. It never rejects a request: a missing,
// malformed, or expired token simply leaves the caller anonymous, and the
// gate or RBAC middleware downstream decides what that means.
func Session(jwtSecret string, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return next(c)
			}

			sessionID, ok := parseSessionID(token, jwtSecret)
			if !ok {
				return next(c)
			}

			identity := sessions.Current(c.Request().Context(), sessionID)
			if identity != nil {
				c.Set(ctxIdentity, identity)
				c.Set(ctxSessionID, sessionID)
			}
			return next(c)
		}
	}
}

// Auth is the strict variant guarding the JSON API: a request without a live
// authenticated session is rejected with 401.
func Auth(jwtSecret string, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			sessionID, ok := parseSessionID(token, jwtSecret)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			identity := sessions.Current(c.Request().Context(), sessionID)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set(ctxIdentity, identity)
			c.Set(ctxSessionID, sessionID)
			return next(c)
		}
	}
}

// extractToken reads the session token from the Authorization header,
// falling back to the session cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// parseSessionID validates the JWT and returns the session ID claim.
func parseSessionID(token, jwtSecret string) (string, bool) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	sessionID, _ := claims["sid"].(string)
	return sessionID, sessionID != ""
}
