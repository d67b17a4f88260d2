package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is an append-only team chat entry
type ChatMessage struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index:idx_team_messages_team_created"`
	SenderEmail string    `json:"sender_email" gorm:"not null;size:255"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_team_messages_team_created"`

	Team Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "team_messages"
}
