package service

import (
	"context"
	"errors"
	"strings"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for team administration
type TeamService struct {
	repo        repository.TeamRepositoryInterface
	playerRepo  repository.TeamPlayerRepositoryInterface
	allowedRepo repository.AllowedUserRepositoryInterface
	roles       *roleLabelSyncer
	validator   *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	playerRepo repository.TeamPlayerRepositoryInterface,
	allowedRepo repository.AllowedUserRepositoryInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		repo:        repo,
		playerRepo:  playerRepo,
		allowedRepo: allowedRepo,
		roles:       newRoleLabelSyncer(repo, allowedRepo),
		validator:   validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// RenameTeamRequest represents the request to rename a team
type RenameTeamRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// SetCaptainRequest represents the request to assign a captain
type SetCaptainRequest struct {
	Email string `json:"email"`
}

// AddPlayerRequest represents the request to add a player to a team
type AddPlayerRequest struct {
	Email string `json:"email"`
}

// TeamMember is a captain or player rendered inside a team's detail view
type TeamMember struct {
	Email  string           `json:"email"`
	Name   string           `json:"name"`
	Role   models.RoleLabel `json:"role,omitempty"`
	Badges Badges           `json:"badges"`
}

// TeamDetailResponse is a team with its captain and player pool
type TeamDetailResponse struct {
	TeamResponse
	Captain *TeamMember  `json:"captain"`
	Players []TeamMember `json:"players"`
}

// List returns all teams ordered by name
func (s *TeamService) List(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewRemoteError("list teams", err, nil)
	}
	sortDanish(teams, func(t models.Team) string { return t.Name })
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, newTeamResponse(&teams[i]))
	}
	return out, nil
}

// Create creates a team with the given name
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "Skriv et navn til holdet.")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}

	team := &models.Team{Name: name}
	if err := s.repo.Create(ctx, team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, apperrors.NewRemoteError("create team", err, nil)
	}
	resp := newTeamResponse(team)
	return &resp, nil
}

// Detail returns a team with captain and players, badges scoped to this team
func (s *TeamService) Detail(ctx context.Context, id uuid.UUID) (*TeamDetailResponse, error) {
	team, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	pool, err := s.playerRepo.ListByTeam(ctx, id)
	if err != nil {
		return nil, apperrors.NewRemoteError("load team players", err, nil)
	}

	emails := make([]string, 0, len(pool)+1)
	onRoster := make(map[string]bool, len(pool))
	for _, p := range pool {
		emails = append(emails, p.Email)
		onRoster[models.NormalizeEmail(p.Email)] = true
	}
	if team.CaptainEmail != nil {
		emails = append(emails, *team.CaptainEmail)
	}
	users, err := s.allowedRepo.GetByEmails(ctx, emails)
	if err != nil {
		return nil, apperrors.NewRemoteError("load team members", err, nil)
	}
	byEmail := make(map[string]*models.AllowedUser, len(users))
	for i := range users {
		byEmail[models.NormalizeEmail(users[i].Email)] = &users[i]
	}

	snap := NewBadgeSnapshot([]models.Team{*team}, pool)
	member := func(email string) TeamMember {
		email = models.NormalizeEmail(email)
		m := TeamMember{Email: email, Name: email}
		isAdmin := false
		if u, ok := byEmail[email]; ok {
			m.Name = u.DisplayName()
			m.Role = u.Role
			isAdmin = u.IsAdmin || u.Role == models.RoleAdmin
		}
		m.Badges = ResolveBadges(email, &team.ID, snap, isAdmin)
		// a captain outside team_players is not a player of this team
		m.Badges.IsPlayer = onRoster[email]
		return m
	}

	resp := &TeamDetailResponse{
		TeamResponse: newTeamResponse(team),
		Players:      make([]TeamMember, 0, len(pool)),
	}
	if team.CaptainEmail != nil && *team.CaptainEmail != "" {
		c := member(*team.CaptainEmail)
		resp.Captain = &c
	}
	for _, p := range pool {
		resp.Players = append(resp.Players, member(p.Email))
	}
	return resp, nil
}

// Rename changes a team's name
func (s *TeamService) Rename(ctx context.Context, id uuid.UUID, req *RenameTeamRequest) (*TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "Skriv et navn til holdet.")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}
	if err := s.repo.UpdateName(ctx, id, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, apperrors.NewRemoteError("rename team", err, nil)
	}
	return s.response(ctx, id)
}

// SetCaptain makes email captain of the team and re-derives the role labels of the new and previous captain
func (s *TeamService) SetCaptain(ctx context.Context, id uuid.UUID, email string) (*TeamResponse, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewValidationError("email", "Vælg en kaptajn.")
	}
	team, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	var previous string
	if team.CaptainEmail != nil {
		previous = models.NormalizeEmail(*team.CaptainEmail)
	}

	if err := s.repo.SetCaptain(ctx, id, &email); err != nil {
		return nil, apperrors.NewRemoteError("set captain", err, nil)
	}

	s.roles.sync(ctx, email)
	if previous != "" && previous != email {
		s.roles.sync(ctx, previous)
	}
	return s.response(ctx, id)
}

// ClearCaptain removes the team's captain and re-derives the previous captain's role label
func (s *TeamService) ClearCaptain(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetCaptain(ctx, id, nil); err != nil {
		return nil, apperrors.NewRemoteError("clear captain", err, nil)
	}
	if team.CaptainEmail != nil {
		s.roles.sync(ctx, *team.CaptainEmail)
	}
	return s.response(ctx, id)
}

// AddPlayer adds email to the team's player pool. Adding an existing player is not an error.
func (s *TeamService) AddPlayer(ctx context.Context, id uuid.UUID, email string) error {
	email = models.NormalizeEmail(email)
	if email == "" {
		return apperrors.NewValidationError("email", "Vælg en spiller.")
	}
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.playerRepo.Add(ctx, id, email); err != nil {
		return apperrors.NewRemoteError("add player", err, nil)
	}
	return nil
}

// RemovePlayer removes email from the team's player pool
func (s *TeamService) RemovePlayer(ctx context.Context, id uuid.UUID, email string) error {
	if err := s.playerRepo.Remove(ctx, id, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return apperrors.NewRemoteError("remove player", err, nil)
	}
	return nil
}

func (s *TeamService) get(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.NewRemoteError("load team", err, nil)
	}
	return team, nil
}

func (s *TeamService) response(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := newTeamResponse(team)
	return &resp, nil
}
