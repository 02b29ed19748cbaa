package services

import (
	"context"

	"github.com/campusgig/campusgig/internal/apperr"
	"github.com/campusgig/campusgig/internal/db/models"
	"github.com/campusgig/campusgig/internal/db/repos"
)

// Message provides business logic for direct messaging
type Message struct {
	repo  *repos.MessageRepository
	users *repos.UserRepository
}

// NewMessageService creates a new message service instance
func NewMessageService(repo *repos.MessageRepository, users *repos.UserRepository) *Message {
	return &Message{repo: repo, users: users}
}

// Send delivers a message from one user to another. The receiver must exist
// and must not be the sender.
func (s *Message) Send(ctx context.Context, senderID, receiverID uint, body string) (*models.Message, error) {
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		return nil, apperr.NotFound("receiver not found")
	}
	if senderID == receiverID {
		return nil, apperr.InvalidOperation("you cannot send a message to yourself")
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    body,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Conversation returns the messages between the caller and another user,
// oldest first, marking the other side's messages read
func (s *Message) Conversation(ctx context.Context, callerID, otherUserID uint) ([]models.Message, error) {
	return s.repo.Conversation(ctx, callerID, otherUserID)
}

// Conversations returns the caller's conversation summaries
func (s *Message) Conversations(ctx context.Context, callerID uint) ([]models.Conversation, error) {
	return s.repo.Conversations(ctx, callerID)
}

// UnreadCount returns the caller's unread message count
func (s *Message) UnreadCount(ctx context.Context, callerID uint) (int64, error) {
	return s.repo.UnreadCount(ctx, callerID)
}
