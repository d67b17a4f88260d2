package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is addressed to one user by email
type Notification struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserEmail string           `json:"user_email" gorm:"not null;size:255;index:idx_notifications_user_read"`
	Type      NotificationType `json:"type" gorm:"type:varchar(40);not null"`
	Title     string           `json:"title" gorm:"not null;size:200"`
	Body      string           `json:"body" gorm:"type:text"`
	MatchID   *uuid.UUID       `json:"match_id,omitempty" gorm:"type:uuid"`
	IsRead    bool             `json:"is_read" gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt time.Time        `json:"created_at" gorm:"index"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
