package service_test

import (
	"context"
	"testing"

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

type AvailabilityServiceTestSuite struct {
	suite.Suite
	ctx                 context.Context
	ctrl                *gomock.Controller
	matchRepo           *mocks.MockMatchRepositoryInterface
	responseRepo        *mocks.MockMatchResponseRepositoryInterface
	playerRepo          *mocks.MockTeamPlayerRepositoryInterface
	allowedRepo         *mocks.MockAllowedUserRepositoryInterface
	availabilityService *service.AvailabilityService
}

func (suite *AvailabilityServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.matchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.responseRepo = mocks.NewMockMatchResponseRepositoryInterface(suite.ctrl)
	suite.playerRepo = mocks.NewMockTeamPlayerRepositoryInterface(suite.ctrl)
	suite.allowedRepo = mocks.NewMockAllowedUserRepositoryInterface(suite.ctrl)
	suite.availabilityService = service.NewAvailabilityService(suite.matchRepo, suite.responseRepo, suite.playerRepo, suite.allowedRepo)
}

func (suite *AvailabilityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AvailabilityServiceTestSuite) match(mode models.SignupMode) *models.Match {
	return &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: uuid.New(), SignupMode: mode}
}

func (suite *AvailabilityServiceTestSuite) TestSubmitResponse_Upserts() {
	m := suite.match(models.SignupModeAvailability)
	userID := uuid.New()
	suite.matchRepo.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)
	suite.responseRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.MatchResponse) error {
			assert.Equal(suite.T(), m.ID, r.MatchID)
			assert.Equal(suite.T(), userID, r.UserID)
			assert.Equal(suite.T(), models.ResponseNotReady, r.Status)
			return nil
		})

	resp, err := suite.availabilityService.SubmitResponse(suite.ctx, m.ID, userID, models.ResponseNotReady)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ResponseNotReady, resp.Status)
}

func (suite *AvailabilityServiceTestSuite) TestSubmitResponse_ClosedSignup() {
	for _, mode := range []models.SignupMode{models.SignupModePreselected, models.SignupModeLocked} {
		m := suite.match(mode)
		suite.matchRepo.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)

		_, err := suite.availabilityService.SubmitResponse(suite.ctx, m.ID, uuid.New(), models.ResponseReady)

		assert.ErrorIs(suite.T(), err, apperrors.ErrSignupClosed)
	}
}

func (suite *AvailabilityServiceTestSuite) TestSubmitResponse_InvalidStatus() {
	_, err := suite.availabilityService.SubmitResponse(suite.ctx, uuid.New(), uuid.New(), "maybe")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AvailabilityServiceTestSuite) TestGetMyResponse_NoneYet() {
	matchID, userID := uuid.New(), uuid.New()
	suite.responseRepo.EXPECT().Get(gomock.Any(), matchID, userID).Return(nil, gorm.ErrRecordNotFound)

	status, err := suite.availabilityService.GetMyResponse(suite.ctx, matchID, userID)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), status)
}

func (suite *AvailabilityServiceTestSuite) TestReadyCandidates_PoolOrderCaseInsensitive() {
	m := suite.match(models.SignupModeAvailability)
	suite.matchRepo.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)
	suite.playerRepo.EXPECT().ListByTeam(gomock.Any(), m.TeamID).Return([]models.TeamPlayer{
		{TeamID: m.TeamID, Email: "c@lido.dk"},
		{TeamID: m.TeamID, Email: "a@lido.dk"},
		{TeamID: m.TeamID, Email: "b@lido.dk"},
		{TeamID: m.TeamID, Email: "silent@lido.dk"},
	}, nil)
	suite.responseRepo.EXPECT().ReadyEmails(gomock.Any(), m.ID).Return([]string{"A@Lido.dk", "c@lido.dk", "outsider@lido.dk"}, nil)
	suite.allowedRepo.EXPECT().GetByEmails(gomock.Any(), []string{"c@lido.dk", "a@lido.dk"}).
		Return([]models.AllowedUser{{Email: "a@lido.dk", Name: strPtr("Anna")}}, nil)

	candidates, err := suite.availabilityService.ReadyCandidates(suite.ctx, m.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.Candidate{
		{Email: "c@lido.dk", Name: "c@lido.dk"},
		{Email: "a@lido.dk", Name: "Anna"},
	}, candidates)
}

func (suite *AvailabilityServiceTestSuite) TestReadyCandidates_NobodyReady() {
	m := suite.match(models.SignupModeAvailability)
	suite.matchRepo.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)
	suite.playerRepo.EXPECT().ListByTeam(gomock.Any(), m.TeamID).Return([]models.TeamPlayer{{TeamID: m.TeamID, Email: "a@lido.dk"}}, nil)
	suite.responseRepo.EXPECT().ReadyEmails(gomock.Any(), m.ID).Return(nil, nil)

	candidates, err := suite.availabilityService.ReadyCandidates(suite.ctx, m.ID)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), candidates)
}

func (suite *AvailabilityServiceTestSuite) TestReadyCandidates_MatchNotFound() {
	id := uuid.New()
	suite.matchRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.availabilityService.ReadyCandidates(suite.ctx, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchNotFound)
}

func TestAvailabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}
