package service

import (
	"context"
	"errors"
	"fmt"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"
	"lido-club-backend/internal/realtime"
	"lido-club-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// badgeTypes are the notification types counted in the navigation badge
var badgeTypes = []models.NotificationType{
	models.NotificationMatchInvite,
	models.NotificationMatchSelected,
	models.NotificationTeamMessage,
}

const notificationListLimit = 200

// NotificationService handles business logic for notifications
type NotificationService struct {
	repo   repository.NotificationRepositoryInterface
	broker realtime.Broker
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface, broker realtime.Broker) *NotificationService {
	return &NotificationService{repo: repo, broker: broker}
}

// List returns the user's notifications, newest first
func (s *NotificationService) List(ctx context.Context, email string) ([]models.Notification, error) {
	list, err := s.repo.ListByEmail(ctx, email, notificationListLimit)
	if err != nil {
		return nil, apperrors.NewRemoteError("list notifications", err, nil)
	}
	return list, nil
}

// UnreadCount returns the number of unread badge-relevant notifications
func (s *NotificationService) UnreadCount(ctx context.Context, email string) (int64, error) {
	count, err := s.repo.CountUnread(ctx, email, badgeTypes)
	if err != nil {
		return 0, apperrors.NewRemoteError("count unread notifications", err, nil)
	}
	return count, nil
}

// MarkRead marks one of the user's notifications as read and returns it, match reference included
func (s *NotificationService) MarkRead(ctx context.Context, email string, id uuid.UUID) (*models.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.NewRemoteError("get notification", err, nil)
	}
	if n.UserEmail != models.NormalizeEmail(email) {
		return nil, apperrors.ErrNotificationNotFound
	}
	if n.IsRead {
		return n, nil
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, apperrors.NewRemoteError("mark notification read", err, nil)
	}
	n.IsRead = true
	return n, nil
}

// MarkAllRead marks every unread notification read. Nothing is written when none are unread.
func (s *NotificationService) MarkAllRead(ctx context.Context, email string) (int64, error) {
	unread, err := s.repo.CountUnread(ctx, email, nil)
	if err != nil {
		return 0, apperrors.NewRemoteError("count unread notifications", err, nil)
	}
	if unread == 0 {
		return 0, nil
	}
	updated, err := s.repo.MarkAllRead(ctx, email)
	if err != nil {
		return 0, apperrors.NewRemoteError("mark all notifications read", err, nil)
	}
	return updated, nil
}

// Notify stores one notification per recipient and pushes each on the recipient's realtime channel.
// Publish failures are logged; the stored notification is still delivered on the next list.
func (s *NotificationService) Notify(ctx context.Context, recipients []string, kind models.NotificationType, title, body string, matchID *uuid.UUID) error {
	emails := NormalizeSelection(recipients)
	if len(emails) == 0 {
		return nil
	}

	list := make([]models.Notification, 0, len(emails))
	for _, email := range emails {
		list = append(list, models.Notification{
			ID:        uuid.New(),
			UserEmail: email,
			Type:      kind,
			Title:     title,
			Body:      body,
			MatchID:   matchID,
		})
	}
	if err := s.repo.CreateMany(ctx, list); err != nil {
		return fmt.Errorf("failed to store notifications: %w", err)
	}

	log := logger.WithContext(ctx).WithField("type", string(kind))
	for i := range list {
		channel := realtime.NotificationChannel(list[i].UserEmail)
		if err := s.broker.Publish(ctx, channel, realtime.EventNotification, list[i]); err != nil {
			log.WithField("channel", channel).WithError(err).Warn("failed to publish notification")
		}
	}
	return nil
}
