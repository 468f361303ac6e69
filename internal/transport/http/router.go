package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// corsMaxAge is how long, in seconds, browsers may cache preflight responses.
const corsMaxAge = 300

func NewRouter(allowOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	registerLogging(e)

	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(corsConfig(allowOrigins)))

	e.GET("/health", healthCheck)
	return e
}

func corsConfig(allowOrigins []string) middleware.CORSConfig {
	wildcard := false
	for _, origin := range allowOrigins {
		if origin == "*" {
			wildcard = true
			break
		}
	}
	return middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
		},
		// Credentials cannot be combined with a wildcard origin.
		AllowCredentials: !wildcard,
		MaxAge:           corsMaxAge,
	}
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"service": "members-api",
	})
}
