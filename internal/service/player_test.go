package service_test

import (
	"context"
	"errors"
	"testing"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/mocks"
	"lido-club-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PlayerServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	allowedRepo   *mocks.MockAllowedUserRepositoryInterface
	teamRepo      *mocks.MockTeamRepositoryInterface
	playerRepo    *mocks.MockTeamPlayerRepositoryInterface
	playerService *service.PlayerService
}

func (suite *PlayerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.allowedRepo = mocks.NewMockAllowedUserRepositoryInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.playerRepo = mocks.NewMockTeamPlayerRepositoryInterface(suite.ctrl)
	suite.playerService = service.NewPlayerService(suite.allowedRepo, suite.teamRepo, suite.playerRepo, validator.New())
}

func (suite *PlayerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerServiceTestSuite) TestList_SortedByRankThenName() {
	teamID := uuid.New()
	suite.allowedRepo.EXPECT().GetAll(gomock.Any()).Return([]models.AllowedUser{
		{Email: "zoe@lido.dk", Name: strPtr("Zoe"), Role: models.RolePlayer},
		{Email: "age@lido.dk", Name: strPtr("Åge"), Role: models.RolePlayer},
		{Email: "bo@lido.dk", Name: strPtr("Bo"), Role: models.RoleCaptain},
		{Email: "eva@lido.dk", Role: models.RoleAdmin, IsAdmin: true},
		{Email: "anna@lido.dk", Name: strPtr("Anna"), Role: models.RolePlayer},
	}, nil)
	suite.teamRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{
		{BaseModel: models.BaseModel{ID: teamID}, Name: "Lido 1", CaptainEmail: strPtr("bo@lido.dk")},
	}, nil)
	suite.playerRepo.EXPECT().ListAll(gomock.Any()).Return([]models.TeamPlayer{{TeamID: teamID, Email: "anna@lido.dk"}}, nil)

	players, err := suite.playerService.List(suite.ctx)

	require.NoError(suite.T(), err)
	emails := make([]string, 0, len(players))
	for _, p := range players {
		emails = append(emails, p.Email)
	}
	assert.Equal(suite.T(), []string{"eva@lido.dk", "bo@lido.dk", "anna@lido.dk", "zoe@lido.dk", "age@lido.dk"}, emails)

	require.NotNil(suite.T(), players[0].Badges)
	assert.True(suite.T(), players[0].Badges.IsAdmin)
	assert.True(suite.T(), players[1].Badges.IsCaptain)
	assert.True(suite.T(), players[2].Badges.IsPlayer)
	assert.False(suite.T(), players[3].Badges.IsPlayer)
}

func (suite *PlayerServiceTestSuite) TestList_BadgeFailureStillLists() {
	suite.allowedRepo.EXPECT().GetAll(gomock.Any()).Return([]models.AllowedUser{{Email: "a@lido.dk", Role: models.RolePlayer}}, nil)
	suite.teamRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("timeout"))
	suite.playerRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil).AnyTimes()

	players, err := suite.playerService.List(suite.ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), players, 1)
	assert.Nil(suite.T(), players[0].Badges)
}

func (suite *PlayerServiceTestSuite) TestCreatePlayer_Validation() {
	_, err := suite.playerService.CreatePlayer(suite.ctx, &service.CreatePlayerRequest{Name: "Anna"})
	var verr *apperrors.ValidationError
	require.True(suite.T(), errors.As(err, &verr))
	assert.Equal(suite.T(), "Udfyld navn og email.", verr.Message)

	_, err = suite.playerService.CreatePlayer(suite.ctx, &service.CreatePlayerRequest{Name: "Anna", Email: "a@lido.dk", IsCaptain: true})
	require.True(suite.T(), errors.As(err, &verr))
	assert.Equal(suite.T(), "Vælg et hold til kaptajn, eller slå kaptajn fra.", verr.Message)

	_, err = suite.playerService.CreatePlayer(suite.ctx, &service.CreatePlayerRequest{Name: "Anna", Email: "not-an-email"})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PlayerServiceTestSuite) TestCreatePlayer_CaptainReplacesPrevious() {
	teamID := uuid.New()
	otherTeam := uuid.New()

	suite.allowedRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.AllowedUser) error {
			assert.Equal(suite.T(), "new@lido.dk", u.Email)
			assert.Equal(suite.T(), models.RoleCaptain, u.Role)
			assert.False(suite.T(), u.IsAdmin)
			return nil
		})
	suite.playerRepo.EXPECT().AddMany(gomock.Any(), []models.TeamPlayer{{TeamID: otherTeam, Email: "new@lido.dk"}}).Return(nil)
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}, CaptainEmail: strPtr("old@lido.dk")}, nil)
	suite.teamRepo.EXPECT().SetCaptain(gomock.Any(), teamID, gomock.Any()).Return(nil)
	suite.allowedRepo.EXPECT().GetByEmail(gomock.Any(), "old@lido.dk").Return(&models.AllowedUser{Email: "old@lido.dk", Role: models.RoleCaptain}, nil)
	suite.teamRepo.EXPECT().CountByCaptain(gomock.Any(), "old@lido.dk").Return(int64(0), nil)
	suite.allowedRepo.EXPECT().UpdateRole(gomock.Any(), "old@lido.dk", models.RolePlayer).Return(nil)

	result, err := suite.playerService.CreatePlayer(suite.ctx, &service.CreatePlayerRequest{
		Name:          " Ny Spiller ",
		Email:         "New@Lido.dk",
		IsCaptain:     true,
		CaptainTeamID: &teamID,
		PlayerTeamIDs: []uuid.UUID{otherTeam},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Ny Spiller", *result.Player.Name)
	for _, step := range result.Steps {
		assert.Equal(suite.T(), apperrors.StepSucceeded, step.Status)
	}
}

func (suite *PlayerServiceTestSuite) TestCreatePlayer_StopsWithoutRollback() {
	teamID := uuid.New()
	suite.allowedRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	suite.playerRepo.EXPECT().AddMany(gomock.Any(), gomock.Any()).Return(errors.New("violates foreign key constraint"))

	_, err := suite.playerService.CreatePlayer(suite.ctx, &service.CreatePlayerRequest{
		Name:          "Anna",
		Email:         "a@lido.dk",
		IsAdmin:       true,
		PlayerTeamIDs: []uuid.UUID{teamID},
	})

	var remote *apperrors.RemoteError
	require.True(suite.T(), errors.As(err, &remote))
	assert.Equal(suite.T(), "add_team_players", remote.FailedStep())
	assert.Equal(suite.T(), apperrors.StepSucceeded, remote.Steps[0].Status)
	assert.Equal(suite.T(), apperrors.StepSkipped, remote.Steps[2].Status)
}

func (suite *PlayerServiceTestSuite) TestUpdatePlayer_EmptyName() {
	_, err := suite.playerService.UpdatePlayer(suite.ctx, "a@lido.dk", &service.UpdatePlayerRequest{Name: " "})

	var verr *apperrors.ValidationError
	require.True(suite.T(), errors.As(err, &verr))
	assert.Equal(suite.T(), "Navn må ikke være tomt.", verr.Message)
}

func (suite *PlayerServiceTestSuite) TestUpdatePlayer_KeepsRole() {
	suite.allowedRepo.EXPECT().UpdateName(gomock.Any(), "a@lido.dk", gomock.Any()).Return(nil)
	suite.allowedRepo.EXPECT().GetByEmail(gomock.Any(), "a@lido.dk").Return(&models.AllowedUser{Email: "a@lido.dk", Name: strPtr("Anne"), Role: models.RoleCaptain}, nil)

	resp, err := suite.playerService.UpdatePlayer(suite.ctx, "a@lido.dk", &service.UpdatePlayerRequest{Name: "Anne"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleCaptain, resp.Role)
}

func (suite *PlayerServiceTestSuite) TestGrantAdmin_NotFound() {
	suite.allowedRepo.EXPECT().GrantAdmin(gomock.Any(), "x@lido.dk").Return(gorm.ErrRecordNotFound)

	_, err := suite.playerService.GrantAdmin(suite.ctx, "x@lido.dk")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *PlayerServiceTestSuite) TestDeletePlayer_AllSteps() {
	suite.allowedRepo.EXPECT().GetByEmail(gomock.Any(), "a@lido.dk").Return(&models.AllowedUser{Email: "a@lido.dk"}, nil)
	gomock.InOrder(
		suite.playerRepo.EXPECT().RemoveByEmail(gomock.Any(), "a@lido.dk").Return(nil),
		suite.teamRepo.EXPECT().ClearCaptainByEmail(gomock.Any(), "a@lido.dk").Return(nil),
		suite.allowedRepo.EXPECT().Delete(gomock.Any(), "a@lido.dk").Return(nil),
	)

	result, err := suite.playerService.DeletePlayer(suite.ctx, " A@lido.dk")

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Steps, 3)
}

func (suite *PlayerServiceTestSuite) TestDeletePlayer_CaptaincyFailureKeepsUser() {
	suite.allowedRepo.EXPECT().GetByEmail(gomock.Any(), "a@lido.dk").Return(&models.AllowedUser{Email: "a@lido.dk"}, nil)
	suite.playerRepo.EXPECT().RemoveByEmail(gomock.Any(), "a@lido.dk").Return(nil)
	suite.teamRepo.EXPECT().ClearCaptainByEmail(gomock.Any(), "a@lido.dk").Return(errors.New("row level security"))

	_, err := suite.playerService.DeletePlayer(suite.ctx, "a@lido.dk")

	var remote *apperrors.RemoteError
	require.True(suite.T(), errors.As(err, &remote))
	assert.Equal(suite.T(), "clear_captaincy", remote.FailedStep())
	assert.Equal(suite.T(), apperrors.StepSkipped, remote.Steps[2].Status)
}

func (suite *PlayerServiceTestSuite) TestDeletePlayer_Unknown() {
	suite.allowedRepo.EXPECT().GetByEmail(gomock.Any(), "x@lido.dk").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.playerService.DeletePlayer(suite.ctx, "x@lido.dk")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *PlayerServiceTestSuite) TestPlayerTeams() {
	captainOf := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Lido 1"}
	playsOn := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Lido 2"}
	suite.teamRepo.EXPECT().GetByCaptain(gomock.Any(), "a@lido.dk").Return([]models.Team{captainOf}, nil)
	suite.playerRepo.EXPECT().ListByEmail(gomock.Any(), "a@lido.dk").Return([]models.TeamPlayer{{TeamID: playsOn.ID, Email: "a@lido.dk"}}, nil)
	suite.teamRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{playsOn.ID}).Return([]models.Team{playsOn}, nil)

	resp, err := suite.playerService.PlayerTeams(suite.ctx, "a@lido.dk")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Lido 1", resp.CaptainOf[0].Name)
	assert.Equal(suite.T(), "Lido 2", resp.PlaysOn[0].Name)
}

func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
