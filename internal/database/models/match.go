package models

import (
	"time"

	"github.com/google/uuid"
)

// Match is a scheduled fixture of one team
type Match struct {
	BaseModel
	TeamID     uuid.UUID   `json:"team_id" gorm:"type:uuid;not null;index"`
	StartAt    time.Time   `json:"start_at" gorm:"not null;index"`
	IsHome     bool        `json:"is_home" gorm:"not null"`
	League     *string     `json:"league" gorm:"size:100"`
	Opponent   string      `json:"opponent" gorm:"not null;size:200"`
	MatchType  *string     `json:"match_type" gorm:"size:100"`
	Notes      *string     `json:"notes" gorm:"type:text"`
	Status     MatchStatus `json:"status" gorm:"type:varchar(20);not null;default:'planned'"`
	SignupMode SignupMode  `json:"signup_mode" gorm:"type:varchar(20);not null;default:'availability'"`

	// Relationships
	Team Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}
