//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"lido-club-backend/internal/database/models"
	"lido-club-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MatchRepositoryTestSuite tests matches, rosters and availability responses
type MatchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MatchRepository
	roster        *MatchRosterRepository
	responses     *MatchResponseRepository
	teams         *TeamRepository
	profiles      *ProfileRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	team          *models.Team
}

func (suite *MatchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewMatchRepository(db)
	suite.roster = NewMatchRosterRepository(db)
	suite.responses = NewMatchResponseRepository(db)
	suite.teams = NewTeamRepository(db)
	suite.profiles = NewProfileRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *MatchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *MatchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.team = suite.factories.Team.Create()
	suite.Require().NoError(suite.teams.Create(suite.ctx, suite.team))
}

func (suite *MatchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MatchRepositoryTestSuite) TestCreateWithRoster() {
	match := suite.factories.Match.WithMode(suite.team.ID, models.SignupModePreselected)
	suite.Require().NoError(suite.repo.CreateWithRoster(suite.ctx, match, []string{"A@lido.dk", "b@lido.dk"}))

	rows, err := suite.roster.ListByMatch(suite.ctx, match.ID)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("a@lido.dk", rows[0].Email)
}

func (suite *MatchRepositoryTestSuite) TestCreateWithRosterRollsBack() {
	match := suite.factories.Match.WithMode(suite.team.ID, models.SignupModePreselected)
	err := suite.repo.CreateWithRoster(suite.ctx, match, []string{"a@lido.dk", "a@lido.dk"})
	suite.Error(err)

	_, err = suite.repo.GetByID(suite.ctx, match.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *MatchRepositoryTestSuite) TestUpdateAndDelete() {
	match := suite.factories.Match.Create(suite.team.ID)
	suite.Require().NoError(suite.repo.CreateWithRoster(suite.ctx, match, nil))

	suite.Require().NoError(suite.repo.Update(suite.ctx, match.ID, map[string]interface{}{
		"opponent":    "Ny modstander",
		"league":      nil,
		"signup_mode": models.SignupModeLocked,
	}))
	got, err := suite.repo.GetByID(suite.ctx, match.ID)
	suite.Require().NoError(err)
	suite.Equal("Ny modstander", got.Opponent)
	suite.Nil(got.League)
	suite.Equal(models.SignupModeLocked, got.SignupMode)

	suite.Require().NoError(suite.repo.Delete(suite.ctx, match.ID))
	suite.ErrorIs(suite.repo.Delete(suite.ctx, match.ID), gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.repo.Update(suite.ctx, match.ID, map[string]interface{}{"opponent": "x"}), gorm.ErrRecordNotFound)
}

func (suite *MatchRepositoryTestSuite) TestListByTeams() {
	other := suite.factories.Team.Create()
	suite.Require().NoError(suite.teams.Create(suite.ctx, other))

	now := time.Now()
	past := suite.factories.Match.WithStart(suite.team.ID, now.Add(-48*time.Hour))
	soon := suite.factories.Match.WithStart(suite.team.ID, now.Add(24*time.Hour))
	later := suite.factories.Match.WithStart(other.ID, now.Add(72*time.Hour))
	for _, m := range []*models.Match{later, past, soon} {
		suite.Require().NoError(suite.repo.CreateWithRoster(suite.ctx, m, nil))
	}

	all, err := suite.repo.ListByTeams(suite.ctx, []uuid.UUID{suite.team.ID, other.ID}, nil)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(past.ID, all[0].ID)

	upcoming, err := suite.repo.ListByTeams(suite.ctx, []uuid.UUID{suite.team.ID}, &now)
	suite.Require().NoError(err)
	suite.Require().Len(upcoming, 1)
	suite.Equal(soon.ID, upcoming[0].ID)

	none, err := suite.repo.ListByTeams(suite.ctx, nil, nil)
	suite.Require().NoError(err)
	suite.Empty(none)

	everything, err := suite.repo.ListAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(everything, 3)
}

func (suite *MatchRepositoryTestSuite) TestRosterReplace() {
	match := suite.factories.Match.WithMode(suite.team.ID, models.SignupModePreselected)
	suite.Require().NoError(suite.repo.CreateWithRoster(suite.ctx, match, []string{"a@lido.dk"}))

	suite.Require().NoError(suite.roster.DeleteByMatch(suite.ctx, match.ID))
	suite.Require().NoError(suite.roster.InsertMany(suite.ctx, match.ID, []string{"c@lido.dk", "d@lido.dk"}))

	rows, err := suite.roster.ListByMatch(suite.ctx, match.ID)
	suite.Require().NoError(err)
	suite.Len(rows, 2)
}

func (suite *MatchRepositoryTestSuite) TestResponses() {
	match := suite.factories.Match.Create(suite.team.ID)
	suite.Require().NoError(suite.repo.CreateWithRoster(suite.ctx, match, nil))

	ready := suite.factories.Profile.WithEmail("Klar@Lido.dk")
	notReady := suite.factories.Profile.WithEmail("ikke@lido.dk")
	suite.Require().NoError(suite.profiles.Upsert(suite.ctx, ready))
	suite.Require().NoError(suite.profiles.Upsert(suite.ctx, notReady))

	suite.Require().NoError(suite.responses.Upsert(suite.ctx, &models.MatchResponse{MatchID: match.ID, UserID: ready.ID, Status: models.ResponseNotReady}))
	suite.Require().NoError(suite.responses.Upsert(suite.ctx, &models.MatchResponse{MatchID: match.ID, UserID: ready.ID, Status: models.ResponseReady}))
	suite.Require().NoError(suite.responses.Upsert(suite.ctx, &models.MatchResponse{MatchID: match.ID, UserID: notReady.ID, Status: models.ResponseNotReady}))

	got, err := suite.responses.Get(suite.ctx, match.ID, ready.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ResponseReady, got.Status)

	emails, err := suite.responses.ReadyEmails(suite.ctx, match.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"klar@lido.dk"}, emails)
}

func TestMatchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MatchRepositoryTestSuite))
}
