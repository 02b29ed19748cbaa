package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/db/models"
)

// getPaginationOptions returns a ListOptions struct built from the request's
// page query parameter
func getPaginationOptions(c *fiber.Ctx) *models.ListOptions {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return &models.ListOptions{
		Limit:  models.DefaultLimit,
		Offset: (page - 1) * models.DefaultLimit,
	}
}

// callerID returns the authenticated caller's user id set by the auth middleware
func callerID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}
