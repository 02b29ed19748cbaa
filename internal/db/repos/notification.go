package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusgig/campusgig/internal/db/models"
)

// NotificationRepository provides access to notification-related database operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListByUser returns a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, opts *models.ListOptions) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.CreatedAtField + " DESC").
		Find(&notifications).Error
	return notifications, err
}

// UnreadCount returns the number of unread notifications for a user
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead marks a single notification read. The owner check is part of the
// update condition so a caller can never flip someone else's notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification not found: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

// MarkAllRead marks all of a user's notifications read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
