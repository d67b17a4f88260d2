package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"
	"lido-club-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CaptainEmail *string   `json:"captain_email"`
	CreatedAt    string    `json:"created_at"`
}

func newTeamResponse(t *models.Team) TeamResponse {
	return TeamResponse{
		ID:           t.ID,
		Name:         t.Name,
		CaptainEmail: t.CaptainEmail,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
}

// MembershipService resolves teams and badges of the signed-in user from live data
type MembershipService struct {
	teamRepo    repository.TeamRepositoryInterface
	playerRepo  repository.TeamPlayerRepositoryInterface
	allowedRepo repository.AllowedUserRepositoryInterface
	profileRepo repository.ProfileRepositoryInterface
	roles       *roleLabelSyncer
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	teamRepo repository.TeamRepositoryInterface,
	playerRepo repository.TeamPlayerRepositoryInterface,
	allowedRepo repository.AllowedUserRepositoryInterface,
	profileRepo repository.ProfileRepositoryInterface,
) *MembershipService {
	return &MembershipService{
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		allowedRepo: allowedRepo,
		profileRepo: profileRepo,
		roles:       newRoleLabelSyncer(teamRepo, allowedRepo),
	}
}

// UserTeams returns the teams the user captains or plays on, unique and sorted by name
func (s *MembershipService) UserTeams(ctx context.Context, email string) ([]TeamResponse, error) {
	teams, err := loadUserTeams(ctx, s.teamRepo, s.playerRepo, email)
	if err != nil {
		return nil, err
	}
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, newTeamResponse(&teams[i]))
	}
	return out, nil
}

// MyBadges returns the global badges of the signed-in user, admin taken from the profile flag
func (s *MembershipService) MyBadges(ctx context.Context, userID uuid.UUID, email string) (*Badges, error) {
	isAdmin, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}

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
		return nil, apperrors.NewRemoteError("load badges", err, nil)
	}

	badges := ResolveBadges(email, nil, NewBadgeSnapshot(captained, memberships), isAdmin)
	return &badges, nil
}

// CheckEmailAllowed reports whether email is on the sign-in whitelist
func (s *MembershipService) CheckEmailAllowed(ctx context.Context, email string) (bool, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return false, apperrors.NewValidationError("email", "Udfyld email.")
	}
	ok, err := s.allowedRepo.Exists(ctx, email)
	if err != nil {
		return false, apperrors.NewRemoteError("check email", err, nil)
	}
	return ok, nil
}

// IsAdmin reads the authoritative admin flag of a signed-in user. The cached role label is never consulted.
func (s *MembershipService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.NewRemoteError("load profile", err, nil)
	}
	if profile.IsAdmin {
		return true, nil
	}
	allowed, err := s.allowedRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.NewRemoteError("load allowed user", err, nil)
	}
	return allowed.IsAdmin, nil
}

// EnsureProfile creates the profile of a signed-in user the first time they are seen,
// copying name, role label and admin flag from the whitelist
func (s *MembershipService) EnsureProfile(ctx context.Context, userID uuid.UUID, email string) error {
	_, err := s.profileRepo.GetByID(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewRemoteError("load profile", err, nil)
	}

	profile := &models.Profile{ID: userID, Email: models.NormalizeEmail(email), Role: models.RolePlayer}
	allowed, err := s.allowedRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		profile.Name = allowed.Name
		profile.Role = allowed.Role
		profile.IsAdmin = allowed.IsAdmin
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return apperrors.NewRemoteError("load allowed user", err, nil)
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return apperrors.NewRemoteError("create profile", err, nil)
	}
	logger.WithContext(ctx).WithField("user_id", userID).Info("profile created")
	return nil
}

// IsTeamMember reports whether email captains or plays on the team
func (s *MembershipService) IsTeamMember(ctx context.Context, teamID uuid.UUID, email string) (bool, error) {
	ok, _, err := isTeamMember(ctx, s.teamRepo, s.playerRepo, teamID, email)
	return ok, err
}

// SyncRoleLabel re-derives the cached role label of email. Failures are only logged.
func (s *MembershipService) SyncRoleLabel(ctx context.Context, email string) {
	s.roles.sync(ctx, email)
}

// loadUserTeams returns captain teams and player teams of email, unique, in Danish name order
func loadUserTeams(ctx context.Context, teamRepo repository.TeamRepositoryInterface, playerRepo repository.TeamPlayerRepositoryInterface, email string) ([]models.Team, error) {
	var captained []models.Team
	var memberships []models.TeamPlayer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		captained, err = teamRepo.GetByCaptain(gctx, email)
		return err
	})
	g.Go(func() error {
		var err error
		memberships, err = playerRepo.ListByEmail(gctx, email)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewRemoteError("load user teams", err, nil)
	}

	seen := make(map[uuid.UUID]struct{}, len(captained)+len(memberships))
	teams := make([]models.Team, 0, len(captained)+len(memberships))
	for _, t := range captained {
		seen[t.ID] = struct{}{}
		teams = append(teams, t)
	}
	var missing []uuid.UUID
	for _, m := range memberships {
		if _, ok := seen[m.TeamID]; ok {
			continue
		}
		seen[m.TeamID] = struct{}{}
		missing = append(missing, m.TeamID)
	}
	if len(missing) > 0 {
		playerTeams, err := teamRepo.GetByIDs(ctx, missing)
		if err != nil {
			return nil, apperrors.NewRemoteError("load user teams", err, nil)
		}
		teams = append(teams, playerTeams...)
	}

	sortDanish(teams, func(t models.Team) string { return t.Name })
	return teams, nil
}

// isTeamMember loads the team and checks whether email is its captain or one of its players
func isTeamMember(ctx context.Context, teamRepo repository.TeamRepositoryInterface, playerRepo repository.TeamPlayerRepositoryInterface, teamID uuid.UUID, email string) (bool, *models.Team, error) {
	team, err := teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, apperrors.ErrTeamNotFound
		}
		return false, nil, apperrors.NewRemoteError("load team", err, nil)
	}
	email = models.NormalizeEmail(email)
	if team.CaptainEmail != nil && models.NormalizeEmail(*team.CaptainEmail) == email {
		return true, team, nil
	}
	ok, err := playerRepo.Exists(ctx, teamID, email)
	if err != nil {
		return false, team, apperrors.NewRemoteError("check team membership", err, nil)
	}
	return ok, team, nil
}

// roleLabelSyncer keeps the cached allowed_users.role label in line with live captaincy
type roleLabelSyncer struct {
	teamRepo    repository.TeamRepositoryInterface
	allowedRepo repository.AllowedUserRepositoryInterface
}

func newRoleLabelSyncer(teamRepo repository.TeamRepositoryInterface, allowedRepo repository.AllowedUserRepositoryInterface) *roleLabelSyncer {
	return &roleLabelSyncer{teamRepo: teamRepo, allowedRepo: allowedRepo}
}

// sync is best effort: a missing user or an admin is left alone, and errors are logged
func (r *roleLabelSyncer) sync(ctx context.Context, email string) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return
	}
	log := logger.WithContext(ctx).WithField("target", email)
	if err := r.syncLabel(ctx, email); err != nil {
		log.WithError(err).Warn("role label sync failed")
	}
}

func (r *roleLabelSyncer) syncLabel(ctx context.Context, email string) error {
	user, err := r.allowedRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load allowed user: %w", err)
	}
	if user.IsAdmin || user.Role == models.RoleAdmin {
		return nil
	}

	count, err := r.teamRepo.CountByCaptain(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to count captaincies: %w", err)
	}

	next := DeriveRoleLabel(user.Role, count > 0)
	if next == user.Role {
		return nil
	}
	if err := r.allowedRepo.UpdateRole(ctx, email, next); err != nil {
		return fmt.Errorf("failed to update role label: %w", err)
	}
	return nil
}
