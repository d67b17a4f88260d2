package models

import "github.com/google/uuid"

// Profile mirrors a signed-in account. ID is the auth user id carried in session tokens.
type Profile struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Email   string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Name    *string   `json:"name" gorm:"size:200"`
	Role    RoleLabel `json:"role" gorm:"type:varchar(20);not null;default:'spiller'"`
	IsAdmin bool      `json:"is_admin" gorm:"not null;default:false"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
