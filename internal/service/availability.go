package service

import (
	"context"
	"errors"
	"time"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"
	"lido-club-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityService records player availability and builds the ready candidate list
type AvailabilityService struct {
	matchRepo    repository.MatchRepositoryInterface
	responseRepo repository.MatchResponseRepositoryInterface
	playerRepo   repository.TeamPlayerRepositoryInterface
	allowedRepo  repository.AllowedUserRepositoryInterface
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	matchRepo repository.MatchRepositoryInterface,
	responseRepo repository.MatchResponseRepositoryInterface,
	playerRepo repository.TeamPlayerRepositoryInterface,
	allowedRepo repository.AllowedUserRepositoryInterface,
) *AvailabilityService {
	return &AvailabilityService{
		matchRepo:    matchRepo,
		responseRepo: responseRepo,
		playerRepo:   playerRepo,
		allowedRepo:  allowedRepo,
	}
}

// SubmitResponseRequest carries a player's availability answer
type SubmitResponseRequest struct {
	Status models.ResponseStatus `json:"status"`
}

// Candidate is a team player who answered ready
type Candidate struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SubmitResponse stores or replaces the user's answer. Only matches collecting availability accept answers.
func (s *AvailabilityService) SubmitResponse(ctx context.Context, matchID, userID uuid.UUID, status models.ResponseStatus) (*models.MatchResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", apperrors.ErrInvalidResponse.Error())
	}

	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.SignupMode != models.SignupModeAvailability {
		return nil, apperrors.ErrSignupClosed
	}

	response := &models.MatchResponse{
		MatchID:   matchID,
		UserID:    userID,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.responseRepo.Upsert(ctx, response); err != nil {
		return nil, apperrors.NewRemoteError("save response", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"match_id": matchID,
		"status":   status,
	}).Info("availability recorded")
	return response, nil
}

// GetMyResponse returns the user's answer or nil when they have not answered
func (s *AvailabilityService) GetMyResponse(ctx context.Context, matchID, userID uuid.UUID) (*models.ResponseStatus, error) {
	r, err := s.responseRepo.Get(ctx, matchID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewRemoteError("load response", err, nil)
	}
	status := r.Status
	return &status, nil
}

// ReadyCandidates returns the team's players who answered ready, in team order.
// Players who answered not ready or not at all are left out.
func (s *AvailabilityService) ReadyCandidates(ctx context.Context, matchID uuid.UUID) ([]Candidate, error) {
	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	pool, err := s.playerRepo.ListByTeam(ctx, match.TeamID)
	if err != nil {
		return nil, apperrors.NewRemoteError("load team players", err, nil)
	}
	ready, err := s.responseRepo.ReadyEmails(ctx, matchID)
	if err != nil {
		return nil, apperrors.NewRemoteError("load responses", err, nil)
	}

	readySet := make(map[string]struct{}, len(ready))
	for _, e := range ready {
		readySet[models.NormalizeEmail(e)] = struct{}{}
	}

	emails := make([]string, 0, len(ready))
	for _, p := range pool {
		e := models.NormalizeEmail(p.Email)
		if _, ok := readySet[e]; ok {
			emails = append(emails, e)
		}
	}

	names, err := resolveNames(ctx, s.allowedRepo, emails)
	if err != nil {
		return nil, err
	}
	candidates := make([]Candidate, 0, len(emails))
	for _, e := range emails {
		candidates = append(candidates, Candidate{Email: e, Name: names[e]})
	}
	return candidates, nil
}

func (s *AvailabilityService) loadMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, apperrors.NewRemoteError("load match", err, nil)
	}
	return match, nil
}
