package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/tokens"
)

const (
	ctxUserID    = "user_id"
	ctxJTI       = "jti"
	ctxTokenType = "token_type"

	accessCookieName = "accessToken"
)

// Blocklist answers whether a token id has been revoked.
type Blocklist interface {
	TokenBlocked(ctx context.Context, jti string) (bool, error)
}

// RequireAuth accepts a bearer token from the Authorization header or the
// accessToken cookie, validates it, and rejects revoked jti values.
func RequireAuth(secret []byte, blocklist Blocklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			claims, err := tokens.ClaimsFromToken(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if blocklist != nil && claims.ID != "" {
				blocked, err := blocklist.TokenBlocked(c.Request().Context(), claims.ID)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
				if blocked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			userID, err := claims.UserID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ctxUserID, userID)
			c.Set(ctxJTI, claims.ID)
			c.Set(ctxTokenType, tokens.TokenTypeAccess)
			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(accessCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// UserID returns the authenticated caller's id set by RequireAuth.
func UserID(c echo.Context) (uint, error) {
	id, ok := c.Get(ctxUserID).(uint)
	if !ok {
		return 0, errors.New("unauthorized")
	}
	return id, nil
}

func JTI(c echo.Context) string {
	jti, _ := c.Get(ctxJTI).(string)
	return jti
}

func TokenType(c echo.Context) string {
	typ, _ := c.Get(ctxTokenType).(string)
	return typ
}
