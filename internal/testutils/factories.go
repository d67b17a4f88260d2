package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
)

var seq uint64

func next() uint64 {
	return atomic.AddUint64(&seq, 1)
}

func strPtr(s string) *string {
	return &s
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// Create creates a test Team with a unique name and no captain
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      fmt.Sprintf("Hold %d", next()),
	}
}

// WithName sets a custom name
func (f *TeamFactory) WithName(name string) *models.Team {
	t := f.Create()
	t.Name = name
	return t
}

// WithCaptain sets the captain email
func (f *TeamFactory) WithCaptain(email string) *models.Team {
	t := f.Create()
	t.CaptainEmail = strPtr(models.NormalizeEmail(email))
	return t
}

// AllowedUserFactory provides methods to create test AllowedUser data
type AllowedUserFactory struct{}

// Create creates a plain player with a unique email
func (f *AllowedUserFactory) Create() *models.AllowedUser {
	n := next()
	return &models.AllowedUser{
		Email: fmt.Sprintf("spiller%d@lido.dk", n),
		Name:  strPtr(fmt.Sprintf("Spiller %d", n)),
		Role:  models.RolePlayer,
	}
}

// WithEmail sets a custom email
func (f *AllowedUserFactory) WithEmail(email string) *models.AllowedUser {
	u := f.Create()
	u.Email = models.NormalizeEmail(email)
	return u
}

// Admin creates an admin user
func (f *AllowedUserFactory) Admin() *models.AllowedUser {
	u := f.Create()
	u.Role = models.RoleAdmin
	u.IsAdmin = true
	return u
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// WithEmail creates a profile for a signed-in user
func (f *ProfileFactory) WithEmail(email string) *models.Profile {
	return &models.Profile{
		ID:    uuid.New(),
		Email: models.NormalizeEmail(email),
		Role:  models.RolePlayer,
	}
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// Create creates a planned home match a week from now in availability mode
func (f *MatchFactory) Create(teamID uuid.UUID) *models.Match {
	return &models.Match{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TeamID:     teamID,
		StartAt:    time.Now().Add(7 * 24 * time.Hour).Truncate(time.Minute),
		IsHome:     true,
		Opponent:   fmt.Sprintf("Modstander %d", next()),
		Status:     models.MatchStatusPlanned,
		SignupMode: models.SignupModeAvailability,
	}
}

// WithMode creates a match in the given signup mode
func (f *MatchFactory) WithMode(teamID uuid.UUID, mode models.SignupMode) *models.Match {
	m := f.Create(teamID)
	m.SignupMode = mode
	return m
}

// WithStart creates a match starting at t
func (f *MatchFactory) WithStart(teamID uuid.UUID, t time.Time) *models.Match {
	m := f.Create(teamID)
	m.StartAt = t
	return m
}

// ChatMessageFactory provides methods to create test ChatMessage data
type ChatMessageFactory struct{}

// Create creates a message from sender in team
func (f *ChatMessageFactory) Create(teamID uuid.UUID, sender string) *models.ChatMessage {
	return &models.ChatMessage{
		ID:          uuid.New(),
		TeamID:      teamID,
		SenderEmail: models.NormalizeEmail(sender),
		Message:     fmt.Sprintf("Besked %d", next()),
		CreatedAt:   time.Now(),
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Team        *TeamFactory
	AllowedUser *AllowedUserFactory
	Profile     *ProfileFactory
	Match       *MatchFactory
	ChatMessage *ChatMessageFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:        &TeamFactory{},
		AllowedUser: &AllowedUserFactory{},
		Profile:     &ProfileFactory{},
		Match:       &MatchFactory{},
		ChatMessage: &ChatMessageFactory{},
	}
}
