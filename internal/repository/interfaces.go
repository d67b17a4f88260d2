package repository

import (
	"context"
	"time"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Team, error)
	GetByCaptain(ctx context.Context, email string) ([]models.Team, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	SetCaptain(ctx context.Context, id uuid.UUID, email *string) error
	ClearCaptainByEmail(ctx context.Context, email string) error
	CountByCaptain(ctx context.Context, email string) (int64, error)
}

// TeamPlayerRepositoryInterface defines the interface for team membership operations
type TeamPlayerRepositoryInterface interface {
	Add(ctx context.Context, teamID uuid.UUID, email string) error
	AddMany(ctx context.Context, rows []models.TeamPlayer) error
	Remove(ctx context.Context, teamID uuid.UUID, email string) error
	RemoveByEmail(ctx context.Context, email string) error
	Exists(ctx context.Context, teamID uuid.UUID, email string) (bool, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.TeamPlayer, error)
	ListByEmail(ctx context.Context, email string) ([]models.TeamPlayer, error)
	ListAll(ctx context.Context) ([]models.TeamPlayer, error)
}

// AllowedUserRepositoryInterface defines the interface for whitelist operations
type AllowedUserRepositoryInterface interface {
	Upsert(ctx context.Context, user *models.AllowedUser) error
	GetByEmail(ctx context.Context, email string) (*models.AllowedUser, error)
	GetByEmails(ctx context.Context, emails []string) ([]models.AllowedUser, error)
	GetAll(ctx context.Context) ([]models.AllowedUser, error)
	Exists(ctx context.Context, email string) (bool, error)
	UpdateName(ctx context.Context, email string, name *string) error
	UpdateRole(ctx context.Context, email string, role models.RoleLabel) error
	GrantAdmin(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
}

// ProfileRepositoryInterface defines the interface for profile operations
type ProfileRepositoryInterface interface {
	Upsert(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
}

// MatchRepositoryInterface defines the interface for match operations
type MatchRepositoryInterface interface {
	CreateWithRoster(ctx context.Context, match *models.Match, emails []string) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTeams(ctx context.Context, teamIDs []uuid.UUID, from *time.Time) ([]models.Match, error)
	ListAll(ctx context.Context) ([]models.Match, error)
}

// MatchRosterRepositoryInterface defines the interface for preselected roster operations
type MatchRosterRepositoryInterface interface {
	ListByMatch(ctx context.Context, matchID uuid.UUID) ([]models.MatchRoster, error)
	DeleteByMatch(ctx context.Context, matchID uuid.UUID) error
	InsertMany(ctx context.Context, matchID uuid.UUID, emails []string) error
}

// MatchResponseRepositoryInterface defines the interface for availability responses
type MatchResponseRepositoryInterface interface {
	Upsert(ctx context.Context, response *models.MatchResponse) error
	Get(ctx context.Context, matchID, userID uuid.UUID) (*models.MatchResponse, error)
	ReadyEmails(ctx context.Context, matchID uuid.UUID) ([]string, error)
}

// NotificationRepositoryInterface defines the interface for notification operations
type NotificationRepositoryInterface interface {
	CreateMany(ctx context.Context, notifications []models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListByEmail(ctx context.Context, email string, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context, email string, types []models.NotificationType) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, email string) (int64, error)
}

// ChatMessageRepositoryInterface defines the interface for team chat operations
type ChatMessageRepositoryInterface interface {
	Create(ctx context.Context, message *models.ChatMessage) error
	ListRecent(ctx context.Context, teamID uuid.UUID, limit int) ([]models.ChatMessage, error)
}
