package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/taskify/core/internal/adapters/http"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

// requireAuth accepts the session cookie or an Authorization bearer token.
// The cookie wins when both are present.
func requireAuth(auth ports.AuthService, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c, auth.CookieName())
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			claims, err := auth.ValidateToken(token)
			if err != nil {
				log.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
					"error": err.Error(),
					"path":  c.Request().URL.Path,
				})
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			c.Set(httpHandlers.UserIDKey, claims.UserID)
			c.Set(httpHandlers.ClaimsKey, claims)

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token := strings.TrimPrefix(header, "Bearer "); token != header {
		return strings.TrimSpace(token)
	}
	return ""
}
