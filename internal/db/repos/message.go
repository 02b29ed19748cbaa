package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusgig/campusgig/internal/db/models"
)

// MessageRepository provides access to message-related database operations
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository instance
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message and populates its sender and receiver
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Preload("Sender").Preload("Receiver").
		First(msg, msg.ID).Error
}

// Conversation returns the messages between two users, oldest first, and
// marks the other side's unread messages as read
func (r *MessageRepository) Conversation(ctx context.Context, userID, otherUserID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Preload("Sender").Preload("Receiver").
		Order(models.CreatedAtField + " ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherUserID, userID, false).
		Update("is_read", true).Error
	if err != nil {
		return nil, fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return messages, nil
}

// Conversations returns a per-peer summary of the user's conversations:
// the most recent message and the unread count, most recent first.
func (r *MessageRepository) Conversations(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order(models.CreatedAtField + " DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}

	// Fold messages by peer; messages arrive newest first so the first one
	// seen per peer is the last message of that conversation.
	order := make([]uint, 0)
	byPeer := make(map[uint]*models.Conversation)
	for _, msg := range messages {
		peerID := msg.SenderID
		if peerID == userID {
			peerID = msg.ReceiverID
		}
		conv, ok := byPeer[peerID]
		if !ok {
			conv = &models.Conversation{LastMessage: msg}
			byPeer[peerID] = conv
			order = append(order, peerID)
		}
		if msg.ReceiverID == userID && !msg.IsRead {
			conv.UnreadCount++
		}
	}

	conversations := make([]models.Conversation, 0, len(order))
	for _, peerID := range order {
		var peer models.User
		if err := r.db.WithContext(ctx).First(&peer, peerID).Error; err != nil {
			return nil, fmt.Errorf("failed to get conversation peer: %w", err)
		}
		conv := byPeer[peerID]
		conv.User = peer.Public()
		conversations = append(conversations, *conv)
	}
	return conversations, nil
}

// UnreadCount returns the number of unread messages addressed to a user
func (r *MessageRepository) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
