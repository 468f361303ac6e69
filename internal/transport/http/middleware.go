package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/service"
	"github.com/redect/members-api/internal/util"
)

const (
	contextUserKey  = "auth.user"
	contextTokenKey = "auth.token"
)

// RequireAuth resolves the bearer token to an authenticated identity before
// the handler runs. Handlers never parse credentials themselves; they read
// the identity with CurrentUser.
func RequireAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("missing authorization header"))
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid authorization header"))
			}
			token := strings.TrimSpace(parts[1])
			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				if err == service.ErrInvalidSession {
					return c.JSON(http.StatusUnauthorized, util.Error("invalid or expired session"))
				}
				return c.JSON(http.StatusInternalServerError, util.Error("unable to verify session"))
			}
			c.Set(contextUserKey, user)
			c.Set(contextTokenKey, token)
			return next(c)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
			}
			if !user.IsAdmin() {
				return c.JSON(http.StatusForbidden, util.Error("admin privileges required"))
			}
			return next(c)
		}
	}
}

// CurrentUser returns the identity RequireAuth stored for this request, or
// nil when the route is not behind RequireAuth.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(contextUserKey).(*domain.User)
	return user
}

func currentToken(c echo.Context) string {
	token, _ := c.Get(contextTokenKey).(string)
	return token
}
