package middleware

import (
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/auth"
	"github.com/campusgig/campusgig/internal/types"
)

// Protect returns a middleware that requires a valid bearer token and makes
// the authenticated caller's id available as the "user_id" local
func Protect(jwtSecret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "not authorized, no token",
			})
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "not authorized, token failed",
			})
		}

		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}
