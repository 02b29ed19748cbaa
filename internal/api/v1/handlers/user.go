package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/api/v1/services"
	"github.com/campusgig/campusgig/internal/types"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	service *services.User
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(service *services.User) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new account and returns the user with a token
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, ErrMsgInvalidReqBody)
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err.Error())
	}

	user, token, err := h.service.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.NewAuthResponse(user, token))
}

// Login authenticates a user and returns the user with a token
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, ErrMsgInvalidReqBody)
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err.Error())
	}

	user, token, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.NewAuthResponse(user, token))
}

// GetUsers returns all users, best rated first
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context(), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListUsersResponse{Users: users})
}

// GetProfile returns the authenticated caller's user record
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.service.GetByID(c.Context(), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetUserByID returns a user by id
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondValidation(c, ErrMsgInvalidUserID)
	}

	user, err := h.service.GetByID(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateBio updates the caller's bio
func (h *UserHandler) UpdateBio(c *fiber.Ctx) error {
	var req types.UpdateBioRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, ErrMsgInvalidReqBody)
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err.Error())
	}

	user, err := h.service.UpdateBio(c.Context(), callerID(c), req.Bio)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
