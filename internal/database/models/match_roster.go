package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchRoster is one player taken for a preselected match
type MatchRoster struct {
	MatchID   uuid.UUID `json:"match_id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"primaryKey;size:255"`
	CreatedAt time.Time `json:"created_at"`

	Match Match `json:"-" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MatchRoster
func (MatchRoster) TableName() string {
	return "match_roster"
}
