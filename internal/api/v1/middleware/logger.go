// Package middleware provides the Fiber middleware used by the API
package middleware

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	log "github.com/campusgig/campusgig/internal/logger"
)

// Logger returns a middleware that tags each request with an id and logs it
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)

		// Continue chain
		err := c.Next()

		// After request
		stop := time.Now()
		latency := stop.Sub(start)

		log.InfoWithFields("Request", map[string]interface{}{
			"request_id": requestID,
			"timestamp":  stop.Format("2006/01/02 - 15:04:05"),
			"status":     c.Response().StatusCode(),
			"latency":    latency.String(),
			"ip":         c.IP(),
			"method":     c.Method(),
			"path":       c.Path(),
			"handler":    c.Route().Name,
		})

		return err
	}
}
