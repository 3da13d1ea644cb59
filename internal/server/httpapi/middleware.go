package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/Anish2905/JobApplicantTracker/internal/logging"
	"github.com/Anish2905/JobApplicantTracker/internal/server/auth"
	"github.com/labstack/echo/v4"
)

const userIDKey = "user_id"

// RequireAuth validates the Bearer token and injects the resolved owning-user
// id into the request context. Every protected handler reads it via userID().
func RequireAuth(secretKey []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}

			id, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, "Bearer "), secretKey)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}

			c.Set(userIDKey, id)
			return next(c)
		}
	}
}

func userID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

// requestLogger logs one line per request with latency and status.
func requestLogger(logger logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			logger.Info(c.Request().Context(), "request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
			)
			return nil
		}
	}
}
