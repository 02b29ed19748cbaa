// Package handlers provides HTTP request handling
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/apperr"
	"github.com/campusgig/campusgig/internal/api/v1/services"
	"github.com/campusgig/campusgig/internal/types"
)

// Common error messages
const (
	ErrMsgInvalidReqBody = "invalid request body"
	ErrMsgInvalidID      = "invalid id"
	ErrMsgInvalidJobID   = "invalid job id"
	ErrMsgInvalidUserID  = "invalid user id"
	ErrMsgUnauthorized   = "not authorized, no token"
	ErrMsgServerError    = "server error"
)

// statusForKind maps the application error taxonomy to HTTP statuses
func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindConflict:
		return fiber.StatusConflict
	case apperr.KindInvalidOperation, apperr.KindValidation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the error response for a failed operation. Kinded
// errors carry their own message and status; anything else is a 500.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: err.Error(),
		})
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(statusForKind(appErr.Kind)).JSON(types.ErrorResponse{
			Message: appErr.Message,
			Kind:    appErr.Kind.String(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
		Message: ErrMsgServerError,
	})
}

// respondValidation writes a 400 with the validation message
func respondValidation(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
		Message: msg,
		Kind:    apperr.KindValidation.String(),
	})
}
