package repository

import (
	"context"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateMany bulk inserts notifications
func (r *NotificationRepository) CreateMany(ctx context.Context, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	for i := range notifications {
		if notifications[i].ID == uuid.Nil {
			notifications[i].ID = uuid.New()
		}
		notifications[i].UserEmail = models.NormalizeEmail(notifications[i].UserEmail)
	}
	return r.db.WithContext(ctx).Create(&notifications).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByEmail returns the newest notifications of a user first
func (r *NotificationRepository) ListByEmail(ctx context.Context, email string, limit int) ([]models.Notification, error) {
	var list []models.Notification
	query := r.db.WithContext(ctx).
		Where("user_email = ?", models.NormalizeEmail(email)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&list).Error
	return list, err
}

// CountUnread counts unread notifications of a user, restricted to types when given
func (r *NotificationRepository) CountUnread(ctx context.Context, email string, types []models.NotificationType) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_email = ? AND is_read = ?", models.NormalizeEmail(email), false)
	if len(types) > 0 {
		query = query.Where("type IN ?", types)
	}
	err := query.Count(&count).Error
	return count, err
}

// MarkRead marks one notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

// MarkAllRead marks every unread notification of a user as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_email = ? AND is_read = ?", models.NormalizeEmail(email), false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
