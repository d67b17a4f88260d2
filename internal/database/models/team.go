package models

// Team represents a club team. A team has at most one captain, tracked by email.
type Team struct {
	BaseModel
	Name         string  `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,min=1,max=100"`
	CaptainEmail *string `json:"captain_email" gorm:"size:255;index"`

	// Relationships
	Players []TeamPlayer `json:"players,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
