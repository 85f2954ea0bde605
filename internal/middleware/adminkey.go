package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AdminKey guards the operator endpoints (calendar connect, booking
// listing). Requests must carry "Authorization: Bearer <key>" where the
// key matches the bcrypt hash from configuration. With no hash
// configured the admin surface is switched off entirely.
func AdminKey(hash string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if hash == "" {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "admin interface disabled"})
			}
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer key"})
			}
			key := strings.TrimPrefix(auth, "Bearer ")
			if bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid admin key"})
			}
			return next(c)
		}
	}
}
