package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/api/v1/services"
	"github.com/campusgig/campusgig/internal/types"
)

// NotificationHandler handles HTTP requests for notification operations
type NotificationHandler struct {
	service *services.Notification
}

// NewNotificationHandler creates a new NotificationHandler instance
func NewNotificationHandler(service *services.Notification) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GetNotifications returns the caller's notifications, newest first
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	notifications, err := h.service.List(c.Context(), callerID(c), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListNotificationsResponse{Notifications: notifications})
}

// GetUnreadCount returns the caller's unread notification count
func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	count, err := h.service.UnreadCount(c.Context(), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.CountResponse{Count: count})
}

// MarkRead marks one of the caller's notifications read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondValidation(c, ErrMsgInvalidID)
	}

	if err := h.service.MarkRead(c.Context(), uint(id), callerID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead marks all of the caller's notifications read
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.service.MarkAllRead(c.Context(), callerID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
