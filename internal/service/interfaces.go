package service

import (
	"context"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MatchServiceInterface defines the interface for match scheduling and roster reconciliation
type MatchServiceInterface interface {
	CreateMatch(ctx context.Context, req *CreateMatchRequest) (*MatchResponse, error)
	SaveMatch(ctx context.Context, id uuid.UUID, req *SaveMatchRequest) (*SaveMatchResult, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, email string, filter MatchFilter) ([]MatchDay, error)
	ListAll(ctx context.Context) ([]MatchResponse, error)
	Detail(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*MatchDetailResponse, error)
}

// AvailabilityServiceInterface defines the interface for availability responses
type AvailabilityServiceInterface interface {
	SubmitResponse(ctx context.Context, matchID, userID uuid.UUID, status models.ResponseStatus) (*models.MatchResponse, error)
	GetMyResponse(ctx context.Context, matchID, userID uuid.UUID) (*models.ResponseStatus, error)
	ReadyCandidates(ctx context.Context, matchID uuid.UUID) ([]Candidate, error)
}

// TeamServiceInterface defines the interface for team administration
type TeamServiceInterface interface {
	List(ctx context.Context) ([]TeamResponse, error)
	Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	Detail(ctx context.Context, id uuid.UUID) (*TeamDetailResponse, error)
	Rename(ctx context.Context, id uuid.UUID, req *RenameTeamRequest) (*TeamResponse, error)
	SetCaptain(ctx context.Context, id uuid.UUID, email string) (*TeamResponse, error)
	ClearCaptain(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	AddPlayer(ctx context.Context, id uuid.UUID, email string) error
	RemovePlayer(ctx context.Context, id uuid.UUID, email string) error
}

// PlayerServiceInterface defines the interface for player (whitelist) administration
type PlayerServiceInterface interface {
	List(ctx context.Context) ([]PlayerResponse, error)
	CreatePlayer(ctx context.Context, req *CreatePlayerRequest) (*CreatePlayerResult, error)
	UpdatePlayer(ctx context.Context, email string, req *UpdatePlayerRequest) (*PlayerResponse, error)
	GrantAdmin(ctx context.Context, email string) (*PlayerResponse, error)
	DeletePlayer(ctx context.Context, email string) (*DeletePlayerResult, error)
	PlayerTeams(ctx context.Context, email string) (*PlayerTeamsResponse, error)
}

// MembershipServiceInterface defines the interface for live team/role resolution
type MembershipServiceInterface interface {
	UserTeams(ctx context.Context, email string) ([]TeamResponse, error)
	MyBadges(ctx context.Context, userID uuid.UUID, email string) (*Badges, error)
	CheckEmailAllowed(ctx context.Context, email string) (bool, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	IsTeamMember(ctx context.Context, teamID uuid.UUID, email string) (bool, error)
	EnsureProfile(ctx context.Context, userID uuid.UUID, email string) error
	SyncRoleLabel(ctx context.Context, email string)
}

// NotificationServiceInterface defines the interface for notifications
type NotificationServiceInterface interface {
	List(ctx context.Context, email string) ([]models.Notification, error)
	UnreadCount(ctx context.Context, email string) (int64, error)
	MarkRead(ctx context.Context, email string, id uuid.UUID) (*models.Notification, error)
	MarkAllRead(ctx context.Context, email string) (int64, error)
	Notify(ctx context.Context, recipients []string, kind models.NotificationType, title, body string, matchID *uuid.UUID) error
}

// ChatServiceInterface defines the interface for team chat
type ChatServiceInterface interface {
	History(ctx context.Context, teamID uuid.UUID, email string, limit int) ([]models.ChatMessage, error)
	Send(ctx context.Context, teamID uuid.UUID, email, text string) (*models.ChatMessage, error)
}
