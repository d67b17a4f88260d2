package models

import "time"

// AllowedUser is the whitelist entry of an email allowed to sign in.
// Role is a cached display label; IsAdmin is the authoritative admin flag.
type AllowedUser struct {
	Email     string    `json:"email" gorm:"primaryKey;size:255"`
	Name      *string   `json:"name" gorm:"size:200"`
	Role      RoleLabel `json:"role" gorm:"type:varchar(20);not null;default:'spiller'"`
	IsAdmin   bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for AllowedUser
func (AllowedUser) TableName() string {
	return "allowed_users"
}

// DisplayName returns the trimmed name, falling back to the email
func (u *AllowedUser) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email
}
