package service

import (
	"context"
	"errors"
	"strings"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"
	"lido-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PlayerService handles business logic for the player whitelist
type PlayerService struct {
	allowedRepo repository.AllowedUserRepositoryInterface
	teamRepo    repository.TeamRepositoryInterface
	playerRepo  repository.TeamPlayerRepositoryInterface
	roles       *roleLabelSyncer
	validator   *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(
	allowedRepo repository.AllowedUserRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	playerRepo repository.TeamPlayerRepositoryInterface,
	validator *validator.Validate,
) *PlayerService {
	return &PlayerService{
		allowedRepo: allowedRepo,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		roles:       newRoleLabelSyncer(teamRepo, allowedRepo),
		validator:   validator,
	}
}

// CreatePlayerRequest represents the request to add a player to the whitelist
type CreatePlayerRequest struct {
	Name          string      `json:"name"`
	Email         string      `json:"email" validate:"omitempty,email"`
	IsAdmin       bool        `json:"is_admin"`
	IsCaptain     bool        `json:"is_captain"`
	CaptainTeamID *uuid.UUID  `json:"captain_team_id"`
	PlayerTeamIDs []uuid.UUID `json:"player_team_ids"`
}

// UpdatePlayerRequest represents the request to rename a player
type UpdatePlayerRequest struct {
	Name string `json:"name" validate:"max=200"`
}

// PlayerResponse represents an allowed user with optional global badges
type PlayerResponse struct {
	Email   string           `json:"email"`
	Name    *string          `json:"name"`
	Role    models.RoleLabel `json:"role"`
	IsAdmin bool             `json:"is_admin"`
	Badges  *Badges          `json:"badges,omitempty"`
}

// CreatePlayerResult carries the created player and the recorded step outcomes
type CreatePlayerResult struct {
	Player PlayerResponse          `json:"player"`
	Steps  []apperrors.StepOutcome `json:"steps"`
}

// DeletePlayerResult carries the recorded step outcomes of a deletion
type DeletePlayerResult struct {
	Email string                  `json:"email"`
	Steps []apperrors.StepOutcome `json:"steps"`
}

// PlayerTeamsResponse lists the teams a player captains and plays on
type PlayerTeamsResponse struct {
	CaptainOf []TeamResponse `json:"captain_of"`
	PlaysOn   []TeamResponse `json:"plays_on"`
}

func newPlayerResponse(u *models.AllowedUser) PlayerResponse {
	return PlayerResponse{Email: u.Email, Name: u.Name, Role: u.Role, IsAdmin: u.IsAdmin}
}

// List returns every allowed user with global badges, admins first, then captains, then players,
// each group in Danish name order. A failed badge lookup is logged and the list returned without badges.
func (s *PlayerService) List(ctx context.Context) ([]PlayerResponse, error) {
	users, err := s.allowedRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewRemoteError("list players", err, nil)
	}

	var teams []models.Team
	var memberships []models.TeamPlayer
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		memberships, err = s.playerRepo.ListAll(gctx)
		return err
	})
	badgeErr := g.Wait()
	if badgeErr != nil {
		logger.WithContext(ctx).WithError(badgeErr).Warn("badge fetch failed, listing players without badges")
	}
	snap := NewBadgeSnapshot(teams, memberships)

	out := make([]PlayerResponse, 0, len(users))
	for i := range users {
		p := newPlayerResponse(&users[i])
		if badgeErr == nil {
			b := ResolveBadges(users[i].Email, nil, snap, users[i].Role == models.RoleAdmin)
			p.Badges = &b
		}
		out = append(out, p)
	}

	sortDanish(out, func(p PlayerResponse) string {
		if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
			return *p.Name
		}
		return p.Email
	})
	sortByRank(out)
	return out, nil
}

// sortByRank stable-sorts by role rank, keeping the name order inside each rank
func sortByRank(players []PlayerResponse) {
	buckets := make([][]PlayerResponse, 3)
	for _, p := range players {
		r := p.Role.Rank()
		buckets[r] = append(buckets[r], p)
	}
	players = players[:0]
	for _, b := range buckets {
		players = append(players, b...)
	}
}

// CreatePlayer whitelists a new player, links them to teams and optionally makes them captain.
// Steps run in order and stop at the first failure; completed steps are not undone.
func (s *PlayerService) CreatePlayer(ctx context.Context, req *CreatePlayerRequest) (*CreatePlayerResult, error) {
	name := strings.TrimSpace(req.Name)
	email := models.NormalizeEmail(req.Email)
	if name == "" || email == "" {
		return nil, apperrors.NewValidationError("", "Udfyld navn og email.")
	}
	if req.IsCaptain && req.CaptainTeamID == nil {
		return nil, apperrors.NewValidationError("captain_team_id", "Vælg et hold til kaptajn, eller slå kaptajn fra.")
	}
	req.Email = email
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("email", "Ugyldig email.")
	}

	user := &models.AllowedUser{
		Email:   email,
		Name:    &name,
		Role:    PrimaryRoleLabel(req.IsAdmin, req.IsCaptain),
		IsAdmin: req.IsAdmin,
	}

	rows := make([]models.TeamPlayer, 0, len(req.PlayerTeamIDs))
	for _, id := range req.PlayerTeamIDs {
		rows = append(rows, models.TeamPlayer{TeamID: id, Email: email})
	}

	var previousCaptain string
	steps := &saga{op: "create player", steps: []sagaStep{
		{
			name: "upsert_allowed_user",
			run:  func(ctx context.Context) error { return s.allowedRepo.Upsert(ctx, user) },
		},
		{
			name: "add_team_players",
			skip: len(rows) == 0,
			run:  func(ctx context.Context) error { return s.playerRepo.AddMany(ctx, rows) },
		},
		{
			name: "set_captain",
			skip: !req.IsCaptain,
			run: func(ctx context.Context) error {
				team, err := s.teamRepo.GetByID(ctx, *req.CaptainTeamID)
				if err != nil {
					return err
				}
				if team.CaptainEmail != nil {
					previousCaptain = models.NormalizeEmail(*team.CaptainEmail)
				}
				return s.teamRepo.SetCaptain(ctx, team.ID, &email)
			},
		},
	}}

	outcomes, err := steps.run(ctx)
	if err != nil {
		return nil, err
	}
	if previousCaptain != "" && previousCaptain != email {
		s.roles.sync(ctx, previousCaptain)
	}

	return &CreatePlayerResult{Player: newPlayerResponse(user), Steps: outcomes}, nil
}

// UpdatePlayer renames a player and keeps their role label
func (s *PlayerService) UpdatePlayer(ctx context.Context, email string, req *UpdatePlayerRequest) (*PlayerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "Navn må ikke være tomt.")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}
	if err := s.allowedRepo.UpdateName(ctx, email, &name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewRemoteError("update player", err, nil)
	}
	return s.get(ctx, email)
}

// GrantAdmin gives a player the admin flag and label
func (s *PlayerService) GrantAdmin(ctx context.Context, email string) (*PlayerResponse, error) {
	if err := s.allowedRepo.GrantAdmin(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewRemoteError("grant admin", err, nil)
	}
	return s.get(ctx, email)
}

// DeletePlayer unlinks the player from every team, removes their captaincies and deletes
// the whitelist entry. It stops at the first failed step without undoing earlier ones.
func (s *PlayerService) DeletePlayer(ctx context.Context, email string) (*DeletePlayerResult, error) {
	email = models.NormalizeEmail(email)
	if _, err := s.get(ctx, email); err != nil {
		return nil, err
	}

	steps := &saga{op: "delete player", steps: []sagaStep{
		{
			name: "remove_team_players",
			run:  func(ctx context.Context) error { return s.playerRepo.RemoveByEmail(ctx, email) },
		},
		{
			name: "clear_captaincy",
			run:  func(ctx context.Context) error { return s.teamRepo.ClearCaptainByEmail(ctx, email) },
		},
		{
			name: "delete_allowed_user",
			run:  func(ctx context.Context) error { return s.allowedRepo.Delete(ctx, email) },
		},
	}}

	outcomes, err := steps.run(ctx)
	if err != nil {
		return nil, err
	}
	return &DeletePlayerResult{Email: email, Steps: outcomes}, nil
}

// PlayerTeams returns the teams a player captains and the teams they play on
func (s *PlayerService) PlayerTeams(ctx context.Context, email string) (*PlayerTeamsResponse, error) {
	var captained []models.Team
	var memberships []models.TeamPlayer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		captained, err = s.teamRepo.GetByCaptain(gctx, email)
		return err
	})
	g.Go(func() error {
		var err error
		memberships, err = s.playerRepo.ListByEmail(gctx, email)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewRemoteError("load player teams", err, nil)
	}

	ids := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.TeamID)
	}
	playsOn, err := s.teamRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewRemoteError("load player teams", err, nil)
	}

	resp := &PlayerTeamsResponse{
		CaptainOf: make([]TeamResponse, 0, len(captained)),
		PlaysOn:   make([]TeamResponse, 0, len(playsOn)),
	}
	for i := range captained {
		resp.CaptainOf = append(resp.CaptainOf, newTeamResponse(&captained[i]))
	}
	for i := range playsOn {
		resp.PlaysOn = append(resp.PlaysOn, newTeamResponse(&playsOn[i]))
	}
	return resp, nil
}

func (s *PlayerService) get(ctx context.Context, email string) (*PlayerResponse, error) {
	user, err := s.allowedRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewRemoteError("load player", err, nil)
	}
	resp := newPlayerResponse(user)
	return &resp, nil
}
