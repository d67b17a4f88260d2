package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/mocks"
	"lido-club-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var clubZone = time.FixedZone("CET", 3600)

type MatchServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	matchRepo    *mocks.MockMatchRepositoryInterface
	rosterRepo   *mocks.MockMatchRosterRepositoryInterface
	responseRepo *mocks.MockMatchResponseRepositoryInterface
	teamRepo     *mocks.MockTeamRepositoryInterface
	playerRepo   *mocks.MockTeamPlayerRepositoryInterface
	allowedRepo  *mocks.MockAllowedUserRepositoryInterface
	notifier     *mocks.MockNotificationServiceInterface
	matchService *service.MatchService
}

func (suite *MatchServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.matchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.rosterRepo = mocks.NewMockMatchRosterRepositoryInterface(suite.ctrl)
	suite.responseRepo = mocks.NewMockMatchResponseRepositoryInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.playerRepo = mocks.NewMockTeamPlayerRepositoryInterface(suite.ctrl)
	suite.allowedRepo = mocks.NewMockAllowedUserRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.matchService = service.NewMatchService(service.MatchRepos{
		Matches:   suite.matchRepo,
		Roster:    suite.rosterRepo,
		Responses: suite.responseRepo,
		Teams:     suite.teamRepo,
		Players:   suite.playerRepo,
		Allowed:   suite.allowedRepo,
	}, suite.notifier, clubZone)
}

func (suite *MatchServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MatchServiceTestSuite) team(name string, captain *string) *models.Team {
	return &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: name, CaptainEmail: captain}
}

func (suite *MatchServiceTestSuite) validRequest(teamID uuid.UUID) *service.CreateMatchRequest {
	start := time.Date(2026, 11, 3, 19, 0, 0, 0, time.UTC)
	home := true
	return &service.CreateMatchRequest{
		TeamID:   &teamID,
		StartAt:  &start,
		IsHome:   &home,
		Opponent: "  Hellerup  ",
	}
}

func (suite *MatchServiceTestSuite) assertValidation(err error, message string) {
	var verr *apperrors.ValidationError
	require.True(suite.T(), errors.As(err, &verr), "expected validation error, got %v", err)
	assert.Equal(suite.T(), apperrors.TitleMissing, verr.Title)
	assert.Equal(suite.T(), message, verr.Message)
}

func (suite *MatchServiceTestSuite) TestCreateMatch_ValidationOrder() {
	teamID := uuid.New()

	req := suite.validRequest(teamID)
	req.TeamID = nil
	req.Opponent = ""
	_, err := suite.matchService.CreateMatch(suite.ctx, req)
	suite.assertValidation(err, "Vælg hvilket hold kampen hører til.")

	req = suite.validRequest(teamID)
	req.StartAt = nil
	_, err = suite.matchService.CreateMatch(suite.ctx, req)
	suite.assertValidation(err, "Udfyld dato og tidspunkt.")

	req = suite.validRequest(teamID)
	req.IsHome = nil
	_, err = suite.matchService.CreateMatch(suite.ctx, req)
	suite.assertValidation(err, "Vælg om kampen er hjemme eller ude.")

	req = suite.validRequest(teamID)
	req.Opponent = "   "
	_, err = suite.matchService.CreateMatch(suite.ctx, req)
	suite.assertValidation(err, "Skriv modstanderens navn.")

	req = suite.validRequest(teamID)
	req.SignupMode = models.SignupModePreselected
	req.SelectedEmails = []string{" "}
	_, err = suite.matchService.CreateMatch(suite.ctx, req)
	suite.assertValidation(err, "Vælg mindst én spiller til kampen.")
}

func (suite *MatchServiceTestSuite) TestCreateMatch_AvailabilityInvitesTeam() {
	team := suite.team("Lido 1", strPtr("cap@lido.dk"))
	req := suite.validRequest(team.ID)
	req.League = " "

	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.matchRepo.EXPECT().CreateWithRoster(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, m *models.Match, _ []string) error {
			assert.Equal(suite.T(), "Hellerup", m.Opponent)
			assert.Nil(suite.T(), m.League)
			assert.Equal(suite.T(), models.MatchStatusPlanned, m.Status)
			assert.Equal(suite.T(), models.SignupModeAvailability, m.SignupMode)
			m.ID = uuid.New()
			return nil
		})
	suite.playerRepo.EXPECT().ListByTeam(gomock.Any(), team.ID).Return([]models.TeamPlayer{
		{TeamID: team.ID, Email: "a@lido.dk"},
		{TeamID: team.ID, Email: "b@lido.dk"},
	}, nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), []string{"a@lido.dk", "b@lido.dk", "cap@lido.dk"},
		models.NotificationMatchInvite, "Ny kamp", gomock.Any(), gomock.Not(gomock.Nil())).Return(nil)

	resp, err := suite.matchService.CreateMatch(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Lido 1", resp.TeamName)
	assert.Equal(suite.T(), models.SignupModeAvailability, resp.SignupMode)
}

func (suite *MatchServiceTestSuite) TestCreateMatch_PreselectedNotifiesRoster() {
	team := suite.team("Lido 2", nil)
	req := suite.validRequest(team.ID)
	req.SignupMode = models.SignupModePreselected
	req.SelectedEmails = []string{"A@lido.dk", "a@lido.dk", "b@lido.dk"}

	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.matchRepo.EXPECT().CreateWithRoster(gomock.Any(), gomock.Any(), []string{"a@lido.dk", "b@lido.dk"}).Return(nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), []string{"a@lido.dk", "b@lido.dk"},
		models.NotificationMatchSelected, "Du er udtaget", gomock.Any(), gomock.Any()).Return(errors.New("push down"))

	resp, err := suite.matchService.CreateMatch(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SignupModePreselected, resp.SignupMode)
}

func (suite *MatchServiceTestSuite) TestCreateMatch_TeamNotFound() {
	teamID := uuid.New()
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.matchService.CreateMatch(suite.ctx, suite.validRequest(teamID))

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *MatchServiceTestSuite) TestCreateMatch_InvalidMode() {
	req := suite.validRequest(uuid.New())
	req.SignupMode = "open"

	_, err := suite.matchService.CreateMatch(suite.ctx, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MatchServiceTestSuite) TestSaveMatch_EmptyOpponent() {
	_, err := suite.matchService.SaveMatch(suite.ctx, uuid.New(), &service.SaveMatchRequest{Opponent: "  "})

	suite.assertValidation(err, "Modstander må ikke være tom.")
}

func (suite *MatchServiceTestSuite) TestSaveMatch_InvalidStatus() {
	_, err := suite.matchService.SaveMatch(suite.ctx, uuid.New(), &service.SaveMatchRequest{Opponent: "B93", Status: "postponed"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MatchServiceTestSuite) TestSaveMatch_NotFound() {
	id := uuid.New()
	suite.matchRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.matchService.SaveMatch(suite.ctx, id, &service.SaveMatchRequest{Opponent: "B93"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchNotFound)
}

func (suite *MatchServiceTestSuite) TestSaveMatch_PromotesAvailabilityWithSelection() {
	team := suite.team("Lido 1", nil)
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: team.ID, Opponent: "B93",
		Status: models.MatchStatusPlanned, SignupMode: models.SignupModeAvailability}

	suite.matchRepo.EXPECT().GetByID(gomock.Any(), match.ID).Return(match, nil).Times(2)
	suite.rosterRepo.EXPECT().ListByMatch(gomock.Any(), match.ID).Return([]models.MatchRoster{}, nil)
	suite.matchRepo.EXPECT().Update(gomock.Any(), match.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), models.SignupModePreselected, updates["signup_mode"])
			assert.Equal(suite.T(), models.MatchStatusPlanned, updates["status"])
			return nil
		})
	suite.rosterRepo.EXPECT().DeleteByMatch(gomock.Any(), match.ID).Return(nil)
	suite.rosterRepo.EXPECT().InsertMany(gomock.Any(), match.ID, []string{"a@lido.dk"}).Return(nil)
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), []string{"a@lido.dk"}, models.NotificationMatchSelected,
		gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := suite.matchService.SaveMatch(suite.ctx, match.ID, &service.SaveMatchRequest{
		Opponent:       "B93",
		SelectedEmails: []string{" A@lido.dk"},
	})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.Plan.Inferred)
	assert.Equal(suite.T(), []string{"a@lido.dk"}, result.Roster)
	assert.Len(suite.T(), result.Steps, 3)
	for _, step := range result.Steps {
		assert.Equal(suite.T(), apperrors.StepSucceeded, step.Status)
	}
}

func (suite *MatchServiceTestSuite) TestSaveMatch_ExplicitAvailabilitySkipsInsert() {
	team := suite.team("Lido 1", nil)
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: team.ID, Opponent: "B93",
		Status: models.MatchStatusPlanned, SignupMode: models.SignupModePreselected}
	target := models.SignupModeAvailability

	suite.matchRepo.EXPECT().GetByID(gomock.Any(), match.ID).Return(match, nil).Times(2)
	suite.rosterRepo.EXPECT().ListByMatch(gomock.Any(), match.ID).Return([]models.MatchRoster{{MatchID: match.ID, Email: "a@lido.dk"}}, nil)
	suite.matchRepo.EXPECT().Update(gomock.Any(), match.ID, gomock.Any()).Return(nil)
	suite.rosterRepo.EXPECT().DeleteByMatch(gomock.Any(), match.ID).Return(nil)
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	result, err := suite.matchService.SaveMatch(suite.ctx, match.ID, &service.SaveMatchRequest{
		Opponent:       "B93",
		TargetMode:     &target,
		SelectedEmails: []string{"b@lido.dk"},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SignupModeAvailability, result.Plan.NextMode)
	assert.Empty(suite.T(), result.Roster)
	assert.Equal(suite.T(), apperrors.StepSkipped, result.Steps[2].Status)
}

func (suite *MatchServiceTestSuite) TestSaveMatch_InsertFailureRollsBack() {
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: uuid.New(), Opponent: "B93",
		Status: models.MatchStatusPlanned, SignupMode: models.SignupModePreselected}

	var writes []map[string]interface{}
	suite.matchRepo.EXPECT().GetByID(gomock.Any(), match.ID).Return(match, nil)
	suite.rosterRepo.EXPECT().ListByMatch(gomock.Any(), match.ID).Return([]models.MatchRoster{{MatchID: match.ID, Email: "old@lido.dk"}}, nil)
	suite.matchRepo.EXPECT().Update(gomock.Any(), match.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, updates map[string]interface{}) error {
			writes = append(writes, updates)
			return nil
		}).Times(2)
	suite.rosterRepo.EXPECT().DeleteByMatch(gomock.Any(), match.ID).Return(nil)
	suite.rosterRepo.EXPECT().InsertMany(gomock.Any(), match.ID, []string{"new@lido.dk"}).Return(errors.New("duplicate key value"))
	suite.rosterRepo.EXPECT().InsertMany(gomock.Any(), match.ID, []string{"old@lido.dk"}).Return(nil)

	_, err := suite.matchService.SaveMatch(suite.ctx, match.ID, &service.SaveMatchRequest{
		Opponent:       "KB",
		SelectedEmails: []string{"new@lido.dk"},
	})

	var remote *apperrors.RemoteError
	require.True(suite.T(), errors.As(err, &remote))
	assert.Equal(suite.T(), "duplicate key value", remote.Message)
	assert.Equal(suite.T(), "insert_roster", remote.FailedStep())
	assert.Equal(suite.T(), []apperrors.StepStatus{apperrors.StepCompensated, apperrors.StepCompensated, apperrors.StepFailed},
		[]apperrors.StepStatus{remote.Steps[0].Status, remote.Steps[1].Status, remote.Steps[2].Status})

	require.Len(suite.T(), writes, 2)
	assert.Equal(suite.T(), "KB", writes[0]["opponent"])
	assert.Equal(suite.T(), "B93", writes[1]["opponent"])
}

func (suite *MatchServiceTestSuite) TestSaveMatch_UpdateFailureSkipsRest() {
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: uuid.New(), Opponent: "B93",
		Status: models.MatchStatusPlanned, SignupMode: models.SignupModeLocked}

	suite.matchRepo.EXPECT().GetByID(gomock.Any(), match.ID).Return(match, nil)
	suite.rosterRepo.EXPECT().ListByMatch(gomock.Any(), match.ID).Return(nil, nil)
	suite.matchRepo.EXPECT().Update(gomock.Any(), match.ID, gomock.Any()).Return(errors.New("permission denied"))

	_, err := suite.matchService.SaveMatch(suite.ctx, match.ID, &service.SaveMatchRequest{Opponent: "B93"})

	var remote *apperrors.RemoteError
	require.True(suite.T(), errors.As(err, &remote))
	assert.Equal(suite.T(), apperrors.StepFailed, remote.Steps[0].Status)
	assert.Equal(suite.T(), apperrors.StepSkipped, remote.Steps[1].Status)
	assert.Equal(suite.T(), apperrors.StepSkipped, remote.Steps[2].Status)
}

func (suite *MatchServiceTestSuite) TestListForUser_GroupsByDay() {
	team := suite.team("Lido 1", strPtr("me@lido.dk"))
	day1 := time.Date(2026, 11, 3, 18, 0, 0, 0, time.UTC)
	day1Late := time.Date(2026, 11, 3, 22, 30, 0, 0, time.UTC)
	day2 := time.Date(2026, 11, 3, 23, 30, 0, 0, time.UTC)

	suite.teamRepo.EXPECT().GetByCaptain(gomock.Any(), "me@lido.dk").Return([]models.Team{*team}, nil)
	suite.playerRepo.EXPECT().ListByEmail(gomock.Any(), "me@lido.dk").Return([]models.TeamPlayer{{TeamID: team.ID, Email: "me@lido.dk"}}, nil)
	suite.matchRepo.EXPECT().ListByTeams(gomock.Any(), []uuid.UUID{team.ID}, gomock.Not(gomock.Nil())).Return([]models.Match{
		{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: team.ID, StartAt: day1},
		{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: team.ID, StartAt: day1Late},
		{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: team.ID, StartAt: day2},
	}, nil)

	days, err := suite.matchService.ListForUser(suite.ctx, "me@lido.dk", service.MatchFilter{Upcoming: true})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), days, 2)
	assert.Equal(suite.T(), "2026-11-03", days[0].Date)
	assert.Len(suite.T(), days[0].Matches, 2)
	assert.Equal(suite.T(), "2026-11-04", days[1].Date)
	assert.Equal(suite.T(), "Lido 1", days[1].Matches[0].TeamName)
}

func (suite *MatchServiceTestSuite) TestListForUser_TeamFilterOutsideMembership() {
	suite.teamRepo.EXPECT().GetByCaptain(gomock.Any(), "me@lido.dk").Return(nil, nil)
	suite.playerRepo.EXPECT().ListByEmail(gomock.Any(), "me@lido.dk").Return(nil, nil)
	other := uuid.New()

	days, err := suite.matchService.ListForUser(suite.ctx, "me@lido.dk", service.MatchFilter{TeamID: &other})

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), days)
}

func (suite *MatchServiceTestSuite) TestListAll_UnknownTeamFallback() {
	known := suite.team("Lido 1", nil)
	suite.matchRepo.EXPECT().ListAll(gomock.Any()).Return([]models.Match{
		{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: known.ID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: uuid.New()},
	}, nil)
	suite.teamRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{*known}, nil)

	list, err := suite.matchService.ListAll(suite.ctx)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Lido 1", list[0].TeamName)
	assert.Equal(suite.T(), service.UnknownTeamName, list[1].TeamName)
}

func (suite *MatchServiceTestSuite) TestDetail_AvailabilityIncludesOwnResponse() {
	team := suite.team("Lido 1", nil)
	userID := uuid.New()
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: team.ID, SignupMode: models.SignupModeAvailability}

	suite.matchRepo.EXPECT().GetByID(gomock.Any(), match.ID).Return(match, nil)
	suite.rosterRepo.EXPECT().ListByMatch(gomock.Any(), match.ID).Return(nil, nil)
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.responseRepo.EXPECT().Get(gomock.Any(), match.ID, userID).Return(&models.MatchResponse{Status: models.ResponseReady}, nil)

	detail, err := suite.matchService.Detail(suite.ctx, match.ID, userID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), detail.MyResponse)
	assert.Equal(suite.T(), models.ResponseReady, *detail.MyResponse)
	assert.Empty(suite.T(), detail.Roster)
}

func (suite *MatchServiceTestSuite) TestDetail_PreselectedRosterNames() {
	team := suite.team("Lido 1", nil)
	match := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: team.ID, SignupMode: models.SignupModePreselected}

	suite.matchRepo.EXPECT().GetByID(gomock.Any(), match.ID).Return(match, nil)
	suite.rosterRepo.EXPECT().ListByMatch(gomock.Any(), match.ID).Return([]models.MatchRoster{
		{MatchID: match.ID, Email: "a@lido.dk"},
		{MatchID: match.ID, Email: "ghost@lido.dk"},
	}, nil)
	suite.allowedRepo.EXPECT().GetByEmails(gomock.Any(), []string{"a@lido.dk", "ghost@lido.dk"}).
		Return([]models.AllowedUser{{Email: "a@lido.dk", Name: strPtr("Anna")}}, nil)
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(nil, gorm.ErrRecordNotFound)

	detail, err := suite.matchService.Detail(suite.ctx, match.ID, uuid.New())

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), detail.MyResponse)
	assert.Equal(suite.T(), service.UnknownTeamName, detail.Match.TeamName)
	assert.Equal(suite.T(), []service.RosterEntry{
		{Email: "a@lido.dk", Name: "Anna"},
		{Email: "ghost@lido.dk", Name: "ghost@lido.dk"},
	}, detail.Roster)
}

func (suite *MatchServiceTestSuite) TestDeleteMatch_NotFound() {
	id := uuid.New()
	suite.matchRepo.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

	err := suite.matchService.DeleteMatch(suite.ctx, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchNotFound)
}

func TestMatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}

func TestGroupByDay_UsesClubZone(t *testing.T) {
	late := time.Date(2026, 3, 1, 23, 15, 0, 0, time.UTC)
	days := service.GroupByDay([]service.MatchResponse{{StartAt: late}}, clubZone)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-02", days[0].Date)

	assert.Empty(t, service.GroupByDay(nil, clubZone))
}
