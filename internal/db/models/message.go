package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a direct message between two users
type Message struct {
	gorm.Model
	SenderID   uint      `json:"sender_id" gorm:"not null;index:idx_messages_conversation,priority:1"`
	Sender     *User     `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	ReceiverID uint      `json:"receiver_id" gorm:"not null;index:idx_messages_conversation,priority:2"`
	Receiver   *User     `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
	Message    string    `json:"message" gorm:"not null;size:2000"`
	IsRead     bool      `json:"is_read" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_messages_conversation,priority:3"`
}

// Conversation is the per-peer summary returned by the conversations listing
type Conversation struct {
	User        PublicUser `json:"user"`
	LastMessage Message    `json:"last_message"`
	UnreadCount int        `json:"unread_count"`
}
