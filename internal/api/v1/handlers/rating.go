package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/api/v1/services"
	"github.com/campusgig/campusgig/internal/types"
)

// RatingHandler handles HTTP requests for rating operations
type RatingHandler struct {
	service *services.Rating
}

// NewRatingHandler creates a new RatingHandler instance
func NewRatingHandler(service *services.Rating) *RatingHandler {
	return &RatingHandler{service: service}
}

// RateUser records the poster's rating of the accepter for a completed job
func (h *RatingHandler) RateUser(c *fiber.Ctx) error {
	var req types.RateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, ErrMsgInvalidReqBody)
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err.Error())
	}

	rating, err := h.service.Rate(c.Context(), req.JobID, callerID(c), req.RatedUserID, req.Rating, req.Comment)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}

// GetUserRatings returns the ratings a user has received
func (h *RatingHandler) GetUserRatings(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return respondValidation(c, ErrMsgInvalidUserID)
	}

	ratings, err := h.service.ListForUser(c.Context(), uint(userID), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListRatingsResponse{Ratings: ratings})
}
