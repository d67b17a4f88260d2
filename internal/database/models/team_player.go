package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamPlayer links an email to a team as a player. The pair is unique.
type TeamPlayer struct {
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"primaryKey;size:255;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for TeamPlayer
func (TeamPlayer) TableName() string {
	return "team_players"
}
