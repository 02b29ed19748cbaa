package models

import (
	"time"

	"gorm.io/gorm"
)

// NotificationType categorizes a notification for client rendering
type NotificationType string

// Notification type constants
const (
	// NotificationTypeJobAccepted covers application and acceptance events
	NotificationTypeJobAccepted NotificationType = "job_accepted"
	// NotificationTypeGeneral covers everything else
	NotificationTypeGeneral NotificationType = "general"
)

// Notification is a best-effort message delivered to a user's inbox.
// Failures to persist one never roll back the lifecycle mutation that
// produced it.
type Notification struct {
	gorm.Model
	UserID    uint             `json:"user_id" gorm:"not null;index"`
	Message   string           `json:"message" gorm:"not null"`
	Type      NotificationType `json:"type" gorm:"not null;default:'general'"`
	JobID     *uint            `json:"job_id"`
	IsRead    bool             `json:"is_read" gorm:"not null;default:false;index"`
	CreatedAt time.Time        `json:"created_at" gorm:"index"`
}
