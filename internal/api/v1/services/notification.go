// Package services provides the business logic behind the API handlers
package services

import (
	"context"

	"github.com/campusgig/campusgig/internal/apperr"
	"github.com/campusgig/campusgig/internal/db/models"
	"github.com/campusgig/campusgig/internal/db/repos"
	"github.com/campusgig/campusgig/internal/logger"
)

// Notification provides business logic for notification operations
type Notification struct {
	repo *repos.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(repo *repos.NotificationRepository) *Notification {
	return &Notification{repo: repo}
}

// Notify records a notification for a user. It is best-effort: failures are
// logged and swallowed so they never roll back the lifecycle mutation that
// produced them.
func (s *Notification) Notify(ctx context.Context, userID uint, message string, typ models.NotificationType, jobID *uint) {
	n := &models.Notification{
		UserID:  userID,
		Message: message,
		Type:    typ,
		JobID:   jobID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		logger.ErrorWithFields("failed to create notification", map[string]interface{}{
			"user_id": userID,
			"type":    string(typ),
			"error":   err.Error(),
		})
	}
}

// List returns a user's notifications, newest first
func (s *Notification) List(ctx context.Context, userID uint, opts *models.ListOptions) ([]models.Notification, error) {
	return s.repo.ListByUser(ctx, userID, opts)
}

// UnreadCount returns the number of unread notifications for a user
func (s *Notification) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.repo.UnreadCount(ctx, userID)
}

// MarkRead marks one of the caller's notifications as read
func (s *Notification) MarkRead(ctx context.Context, id, userID uint) error {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return apperr.NotFound("notification not found")
	}
	return nil
}

// MarkAllRead marks all of the caller's notifications as read
func (s *Notification) MarkAllRead(ctx context.Context, userID uint) error {
	return s.repo.MarkAllRead(ctx, userID)
}
