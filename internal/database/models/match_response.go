package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchResponse is a player's ready/not-ready answer, unique per (match, user)
type MatchResponse struct {
	MatchID   uuid.UUID      `json:"match_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"user_id" gorm:"type:uuid;primaryKey"`
	Status    ResponseStatus `json:"status" gorm:"type:varchar(20);not null"`
	UpdatedAt time.Time      `json:"updated_at"`

	Match Match `json:"-" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MatchResponse
func (MatchResponse) TableName() string {
	return "match_responses"
}
