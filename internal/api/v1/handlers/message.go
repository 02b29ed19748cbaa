package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/api/v1/services"
	"github.com/campusgig/campusgig/internal/types"
)

// MessageHandler handles HTTP requests for messaging operations
type MessageHandler struct {
	service *services.Message
}

// NewMessageHandler creates a new MessageHandler instance
func NewMessageHandler(service *services.Message) *MessageHandler {
	return &MessageHandler{service: service}
}

// SendMessage delivers a message to another user
func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	var req types.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, ErrMsgInvalidReqBody)
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err.Error())
	}

	msg, err := h.service.Send(c.Context(), callerID(c), req.ReceiverID, req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GetConversation returns the messages between the caller and another user
func (h *MessageHandler) GetConversation(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return respondValidation(c, ErrMsgInvalidUserID)
	}

	messages, err := h.service.Conversation(c.Context(), callerID(c), uint(userID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListMessagesResponse{Messages: messages})
}

// GetConversations returns the caller's conversation summaries
func (h *MessageHandler) GetConversations(c *fiber.Ctx) error {
	conversations, err := h.service.Conversations(c.Context(), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListConversationsResponse{Conversations: conversations})
}

// GetUnreadCount returns the caller's unread message count
func (h *MessageHandler) GetUnreadCount(c *fiber.Ctx) error {
	count, err := h.service.UnreadCount(c.Context(), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.CountResponse{Count: count})
}
