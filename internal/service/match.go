package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"
	"lido-club-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnknownTeamName is shown when a match's team cannot be resolved
const UnknownTeamName = "Ukendt hold"

// MatchService handles match scheduling and roster reconciliation
type MatchService struct {
	repo         repository.MatchRepositoryInterface
	rosterRepo   repository.MatchRosterRepositoryInterface
	responseRepo repository.MatchResponseRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	playerRepo   repository.TeamPlayerRepositoryInterface
	allowedRepo  repository.AllowedUserRepositoryInterface
	notifier     NotificationServiceInterface
	loc          *time.Location
	now          func() time.Time
}

// MatchRepos groups the repositories the match service reads and writes
type MatchRepos struct {
	Matches   repository.MatchRepositoryInterface
	Roster    repository.MatchRosterRepositoryInterface
	Responses repository.MatchResponseRepositoryInterface
	Teams     repository.TeamRepositoryInterface
	Players   repository.TeamPlayerRepositoryInterface
	Allowed   repository.AllowedUserRepositoryInterface
}

// NewMatchService creates a new match service. loc is the club time zone used to group matches by day.
func NewMatchService(repos MatchRepos, notifier NotificationServiceInterface, loc *time.Location) *MatchService {
	if loc == nil {
		loc = time.UTC
	}
	return &MatchService{
		repo:         repos.Matches,
		rosterRepo:   repos.Roster,
		responseRepo: repos.Responses,
		teamRepo:     repos.Teams,
		playerRepo:   repos.Players,
		allowedRepo:  repos.Allowed,
		notifier:     notifier,
		loc:          loc,
		now:          time.Now,
	}
}

// CreateMatchRequest represents the admin request to schedule a match
type CreateMatchRequest struct {
	TeamID         *uuid.UUID        `json:"team_id"`
	StartAt        *time.Time        `json:"start_at"`
	IsHome         *bool             `json:"is_home"`
	League         string            `json:"league"`
	Opponent       string            `json:"opponent"`
	MatchType      string            `json:"match_type"`
	Notes          string            `json:"notes"`
	SignupMode     models.SignupMode `json:"signup_mode"`
	SelectedEmails []string          `json:"selected_emails"`
}

// SaveMatchRequest represents the admin edit of an existing match
type SaveMatchRequest struct {
	League         string             `json:"league"`
	Opponent       string             `json:"opponent"`
	Notes          string             `json:"notes"`
	MatchType      string             `json:"match_type"`
	Status         models.MatchStatus `json:"status"`
	IsHome         bool               `json:"is_home"`
	TargetMode     *models.SignupMode `json:"target_mode"`
	SelectedEmails []string           `json:"selected_emails"`
}

// MatchResponse represents a match in API responses
type MatchResponse struct {
	ID         uuid.UUID          `json:"id"`
	TeamID     uuid.UUID          `json:"team_id"`
	TeamName   string             `json:"team_name"`
	StartAt    time.Time          `json:"start_at"`
	IsHome     bool               `json:"is_home"`
	League     *string            `json:"league"`
	Opponent   string             `json:"opponent"`
	MatchType  *string            `json:"match_type"`
	Notes      *string            `json:"notes"`
	Status     models.MatchStatus `json:"status"`
	SignupMode models.SignupMode  `json:"signup_mode"`
}

// SaveMatchResult is the outcome of a successful SaveMatch
type SaveMatchResult struct {
	Match  MatchResponse           `json:"match"`
	Roster []string                `json:"roster"`
	Plan   SignupPlan              `json:"plan"`
	Steps  []apperrors.StepOutcome `json:"steps"`
}

// MatchFilter narrows ListForUser
type MatchFilter struct {
	Upcoming bool
	TeamID   *uuid.UUID
}

// MatchDay groups the matches of one calendar day in the club time zone
type MatchDay struct {
	Date    string          `json:"date"`
	Matches []MatchResponse `json:"matches"`
}

// RosterEntry is a selected player
type RosterEntry struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MatchDetailResponse is a match with its roster and, in availability mode, the viewer's own answer
type MatchDetailResponse struct {
	Match      MatchResponse          `json:"match"`
	Roster     []RosterEntry          `json:"roster"`
	MyResponse *models.ResponseStatus `json:"my_response"`
}

func newMatchResponse(m *models.Match, teamName string) MatchResponse {
	return MatchResponse{
		ID:         m.ID,
		TeamID:     m.TeamID,
		TeamName:   teamName,
		StartAt:    m.StartAt,
		IsHome:     m.IsHome,
		League:     m.League,
		Opponent:   m.Opponent,
		MatchType:  m.MatchType,
		Notes:      m.Notes,
		Status:     m.Status,
		SignupMode: m.SignupMode,
	}
}

// optional turns a blank string into NULL
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// CreateMatch validates and stores a new match with its preselected roster in one transaction,
// then notifies the affected players.
func (s *MatchService) CreateMatch(ctx context.Context, req *CreateMatchRequest) (*MatchResponse, error) {
	if req.TeamID == nil || *req.TeamID == uuid.Nil {
		return nil, apperrors.NewValidationError("team_id", "Vælg hvilket hold kampen hører til.")
	}
	if req.StartAt == nil || req.StartAt.IsZero() {
		return nil, apperrors.NewValidationError("start_at", "Udfyld dato og tidspunkt.")
	}
	if req.IsHome == nil {
		return nil, apperrors.NewValidationError("is_home", "Vælg om kampen er hjemme eller ude.")
	}
	opponent := strings.TrimSpace(req.Opponent)
	if opponent == "" {
		return nil, apperrors.NewValidationError("opponent", "Skriv modstanderens navn.")
	}
	mode := req.SignupMode
	if mode == "" {
		mode = models.SignupModeAvailability
	}
	if !mode.IsValid() {
		return nil, apperrors.NewValidationError("signup_mode", apperrors.ErrInvalidSignupMode.Error())
	}
	var roster []string
	if mode == models.SignupModePreselected {
		roster = NormalizeSelection(req.SelectedEmails)
		if len(roster) == 0 {
			return nil, apperrors.NewValidationError("selected_emails", "Vælg mindst én spiller til kampen.")
		}
	}

	team, err := s.teamRepo.GetByID(ctx, *req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.NewRemoteError("load team", err, nil)
	}

	match := &models.Match{
		TeamID:     team.ID,
		StartAt:    req.StartAt.UTC(),
		IsHome:     *req.IsHome,
		League:     optional(req.League),
		Opponent:   opponent,
		MatchType:  optional(req.MatchType),
		Notes:      optional(req.Notes),
		Status:     models.MatchStatusPlanned,
		SignupMode: mode,
	}
	if err := s.repo.CreateWithRoster(ctx, match, roster); err != nil {
		return nil, apperrors.NewRemoteError("create match", err, nil)
	}

	s.notifyCreated(ctx, team, match, roster)

	resp := newMatchResponse(match, team.Name)
	return &resp, nil
}

func (s *MatchService) notifyCreated(ctx context.Context, team *models.Team, match *models.Match, roster []string) {
	log := logger.WithContext(ctx).WithField("match_id", match.ID)
	body := matchSummary(team.Name, match, s.loc)

	switch match.SignupMode {
	case models.SignupModeAvailability:
		pool, err := s.playerRepo.ListByTeam(ctx, team.ID)
		if err != nil {
			log.WithError(err).Warn("failed to load team players for invites")
			return
		}
		recipients := make([]string, 0, len(pool)+1)
		for _, p := range pool {
			recipients = append(recipients, p.Email)
		}
		if team.CaptainEmail != nil {
			recipients = append(recipients, *team.CaptainEmail)
		}
		if err := s.notifier.Notify(ctx, recipients, models.NotificationMatchInvite, "Ny kamp", body, &match.ID); err != nil {
			log.WithError(err).Warn("failed to send match invites")
		}
	case models.SignupModePreselected:
		if err := s.notifier.Notify(ctx, roster, models.NotificationMatchSelected, "Du er udtaget", body, &match.ID); err != nil {
			log.WithError(err).Warn("failed to send selection notifications")
		}
	}
}

func matchSummary(teamName string, m *models.Match, loc *time.Location) string {
	where := "ude"
	if m.IsHome {
		where = "hjemme"
	}
	return fmt.Sprintf("%s mod %s (%s) %s", teamName, m.Opponent, where, m.StartAt.In(loc).Format("02-01-2006 15:04"))
}

// SaveMatch applies an admin edit: one write of the match fields including the next signup mode,
// then a full replacement of the preselected roster. On a failed step the completed steps are
// undone in reverse and a RemoteError with the step outcomes is returned.
func (s *MatchService) SaveMatch(ctx context.Context, id uuid.UUID, req *SaveMatchRequest) (*SaveMatchResult, error) {
	opponent := strings.TrimSpace(req.Opponent)
	if opponent == "" {
		return nil, apperrors.NewValidationError("opponent", "Modstander må ikke være tom.")
	}
	if req.Status != "" && !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", apperrors.ErrInvalidMatchStatus.Error())
	}
	if req.TargetMode != nil && !req.TargetMode.IsValid() {
		return nil, apperrors.NewValidationError("target_mode", apperrors.ErrInvalidSignupMode.Error())
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, apperrors.NewRemoteError("load match", err, nil)
	}
	previousRows, err := s.rosterRepo.ListByMatch(ctx, id)
	if err != nil {
		return nil, apperrors.NewRemoteError("load roster", err, nil)
	}
	previousRoster := make([]string, 0, len(previousRows))
	for _, r := range previousRows {
		previousRoster = append(previousRoster, r.Email)
	}

	plan := PlanSignup(current.SignupMode, req.TargetMode, req.SelectedEmails)
	status := req.Status
	if status == "" {
		status = current.Status
	}

	updates := map[string]interface{}{
		"league":      optional(req.League),
		"opponent":    opponent,
		"notes":       optional(req.Notes),
		"match_type":  optional(req.MatchType),
		"status":      status,
		"is_home":     req.IsHome,
		"signup_mode": plan.NextMode,
	}
	restore := map[string]interface{}{
		"league":      current.League,
		"opponent":    current.Opponent,
		"notes":       current.Notes,
		"match_type":  current.MatchType,
		"status":      current.Status,
		"is_home":     current.IsHome,
		"signup_mode": current.SignupMode,
	}

	run := &saga{op: "save match", compensate: true, steps: []sagaStep{
		{
			name:       "update_match",
			run:        func(ctx context.Context) error { return s.repo.Update(ctx, id, updates) },
			compensate: func(ctx context.Context) error { return s.repo.Update(ctx, id, restore) },
		},
		{
			name:       "clear_roster",
			run:        func(ctx context.Context) error { return s.rosterRepo.DeleteByMatch(ctx, id) },
			compensate: func(ctx context.Context) error { return s.rosterRepo.InsertMany(ctx, id, previousRoster) },
		},
		{
			name: "insert_roster",
			skip: plan.NextMode != models.SignupModePreselected || len(plan.Roster) == 0,
			run:  func(ctx context.Context) error { return s.rosterRepo.InsertMany(ctx, id, plan.Roster) },
		},
	}}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"match_id":  id,
		"from_mode": current.SignupMode,
		"to_mode":   plan.NextMode,
		"inferred":  plan.Inferred,
	})

	outcomes, err := run.run(ctx)
	if err != nil {
		log.WithError(err).Error("save match failed")
		return nil, err
	}
	log.Info("match saved")

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewRemoteError("reload match", err, outcomes)
	}
	teamName := s.teamName(ctx, updated.TeamID)

	if plan.NextMode == models.SignupModePreselected {
		added := addedEmails(previousRoster, plan.Roster)
		if len(added) > 0 {
			body := matchSummary(teamName, updated, s.loc)
			if err := s.notifier.Notify(ctx, added, models.NotificationMatchSelected, "Du er udtaget", body, &id); err != nil {
				log.WithError(err).Warn("failed to send selection notifications")
			}
		}
	}

	return &SaveMatchResult{
		Match:  newMatchResponse(updated, teamName),
		Roster: plan.Roster,
		Plan:   plan,
		Steps:  outcomes,
	}, nil
}

// DeleteMatch removes a match with its roster and responses
func (s *MatchService) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return apperrors.NewRemoteError("delete match", err, nil)
	}
	return nil
}

// ListForUser returns the matches of the user's teams grouped by day, oldest first
func (s *MatchService) ListForUser(ctx context.Context, email string, filter MatchFilter) ([]MatchDay, error) {
	teams, err := loadUserTeams(ctx, s.teamRepo, s.playerRepo, email)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(teams))
	ids := make([]uuid.UUID, 0, len(teams))
	for _, t := range teams {
		if filter.TeamID != nil && t.ID != *filter.TeamID {
			continue
		}
		names[t.ID] = t.Name
		ids = append(ids, t.ID)
	}
	if len(ids) == 0 {
		return []MatchDay{}, nil
	}

	var from *time.Time
	if filter.Upcoming {
		now := s.now()
		from = &now
	}
	matches, err := s.repo.ListByTeams(ctx, ids, from)
	if err != nil {
		return nil, apperrors.NewRemoteError("list matches", err, nil)
	}

	responses := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		responses = append(responses, newMatchResponse(&matches[i], names[matches[i].TeamID]))
	}
	return GroupByDay(responses, s.loc), nil
}

// GroupByDay groups matches already sorted by start time into calendar days of loc
func GroupByDay(matches []MatchResponse, loc *time.Location) []MatchDay {
	days := []MatchDay{}
	for _, m := range matches {
		key := m.StartAt.In(loc).Format("2006-01-02")
		if n := len(days); n > 0 && days[n-1].Date == key {
			days[n-1].Matches = append(days[n-1].Matches, m)
			continue
		}
		days = append(days, MatchDay{Date: key, Matches: []MatchResponse{m}})
	}
	return days
}

// ListAll returns every match for the admin overview
func (s *MatchService) ListAll(ctx context.Context) ([]MatchResponse, error) {
	matches, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewRemoteError("list matches", err, nil)
	}

	names := map[uuid.UUID]string{}
	if teams, err := s.teamRepo.GetAll(ctx); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to load team names")
	} else {
		for _, t := range teams {
			names[t.ID] = t.Name
		}
	}

	out := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		name, ok := names[matches[i].TeamID]
		if !ok {
			name = UnknownTeamName
		}
		out = append(out, newMatchResponse(&matches[i], name))
	}
	return out, nil
}

// Detail returns a match, its roster with names and, when collecting availability, the viewer's own answer
func (s *MatchService) Detail(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*MatchDetailResponse, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, apperrors.NewRemoteError("load match", err, nil)
	}

	rows, err := s.rosterRepo.ListByMatch(ctx, id)
	if err != nil {
		return nil, apperrors.NewRemoteError("load roster", err, nil)
	}
	emails := make([]string, 0, len(rows))
	for _, r := range rows {
		emails = append(emails, r.Email)
	}
	names, err := s.displayNames(ctx, emails)
	if err != nil {
		return nil, err
	}
	roster := make([]RosterEntry, 0, len(rows))
	for _, e := range emails {
		roster = append(roster, RosterEntry{Email: e, Name: names[e]})
	}

	resp := &MatchDetailResponse{
		Match:  newMatchResponse(match, s.teamName(ctx, match.TeamID)),
		Roster: roster,
	}

	if match.SignupMode == models.SignupModeAvailability {
		r, err := s.responseRepo.Get(ctx, id, userID)
		switch {
		case err == nil:
			status := r.Status
			resp.MyResponse = &status
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return nil, apperrors.NewRemoteError("load response", err, nil)
		}
	}
	return resp, nil
}

func (s *MatchService) teamName(ctx context.Context, teamID uuid.UUID) string {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return UnknownTeamName
	}
	return team.Name
}

// displayNames maps each email to the allowed user's name, falling back to the email itself
func (s *MatchService) displayNames(ctx context.Context, emails []string) (map[string]string, error) {
	return resolveNames(ctx, s.allowedRepo, emails)
}

func resolveNames(ctx context.Context, allowedRepo repository.AllowedUserRepositoryInterface, emails []string) (map[string]string, error) {
	names := make(map[string]string, len(emails))
	for _, e := range emails {
		names[models.NormalizeEmail(e)] = models.NormalizeEmail(e)
	}
	if len(emails) == 0 {
		return names, nil
	}
	users, err := allowedRepo.GetByEmails(ctx, emails)
	if err != nil {
		return nil, apperrors.NewRemoteError("load player names", err, nil)
	}
	for i := range users {
		names[models.NormalizeEmail(users[i].Email)] = users[i].DisplayName()
	}
	return names, nil
}
