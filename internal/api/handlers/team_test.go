package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lido-club-backend/internal/api/handlers"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/mocks"
	"lido-club-backend/internal/service"
	"lido-club-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/api/v1/admin/teams")
	{
		teams.GET("", suite.handler.ListTeams)
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PATCH("/:id", suite.handler.RenameTeam)
		teams.PUT("/:id/captain", suite.handler.SetCaptain)
		teams.DELETE("/:id/captain", suite.handler.ClearCaptain)
		teams.POST("/:id/players", suite.handler.AddPlayer)
		teams.DELETE("/:id/players/:email", suite.handler.RemovePlayer)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *TeamHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.mockService.EXPECT().List(gomock.Any()).
		Return([]service.TeamResponse{{ID: uuid.New(), Name: "Ærø"}, {ID: uuid.New(), Name: "Øst"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/teams", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response []service.TeamResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.mockService.EXPECT().Create(gomock.Any(), &service.CreateTeamRequest{Name: "Herrer 1"}).
		Return(&service.TeamResponse{ID: uuid.New(), Name: "Herrer 1"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/teams", service.CreateTeamRequest{Name: "Herrer 1"})
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_MissingName() {
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.NewValidationError("name", "Holdnavn"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/teams", service.CreateTeamRequest{})
	body := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, apperrors.TitleMissing)
	assert.Equal(suite.T(), "Holdnavn", body["message"])
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_DuplicateName() {
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrTeamExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/teams", service.CreateTeamRequest{Name: "Herrer 1"})
	body := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, apperrors.TitleFailure)
	assert.Equal(suite.T(), apperrors.ErrTeamExists.Error(), body["message"])
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_InvalidJSON() {
	recorder := suite.makeInvalidJSONRequest(http.MethodPost, "/api/v1/admin/teams")
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, apperrors.TitleMissing)
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	teamID := uuid.New()
	suite.mockService.EXPECT().Detail(gomock.Any(), teamID).
		Return(&service.TeamDetailResponse{TeamResponse: service.TeamResponse{ID: teamID, Name: "Herrer 1"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/teams/"+teamID.String(), nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestGetTeam_NotFound() {
	teamID := uuid.New()
	suite.mockService.EXPECT().Detail(gomock.Any(), teamID).Return(nil, apperrors.ErrTeamNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/teams/"+teamID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, apperrors.TitleFailure)
}

func (suite *TeamHandlerTestSuite) TestGetTeam_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/teams/invalid-uuid", nil)
	body := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
	assert.Equal(suite.T(), "invalid team ID", body["message"])
}

func (suite *TeamHandlerTestSuite) TestRenameTeam() {
	teamID := uuid.New()
	suite.mockService.EXPECT().Rename(gomock.Any(), teamID, &service.RenameTeamRequest{Name: "Damer 2"}).
		Return(&service.TeamResponse{ID: teamID, Name: "Damer 2"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/admin/teams/"+teamID.String(), service.RenameTeamRequest{Name: "Damer 2"})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestSetAndClearCaptain() {
	teamID := uuid.New()
	captain := "kaptajn@lido.dk"
	suite.mockService.EXPECT().SetCaptain(gomock.Any(), teamID, captain).
		Return(&service.TeamResponse{ID: teamID, CaptainEmail: &captain}, nil)
	suite.mockService.EXPECT().ClearCaptain(gomock.Any(), teamID).
		Return(&service.TeamResponse{ID: teamID}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/admin/teams/"+teamID.String()+"/captain", service.SetCaptainRequest{Email: captain})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/admin/teams/"+teamID.String()+"/captain", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestAddAndRemovePlayer() {
	teamID := uuid.New()
	suite.mockService.EXPECT().AddPlayer(gomock.Any(), teamID, "bo@lido.dk").Return(nil)
	suite.mockService.EXPECT().RemovePlayer(gomock.Any(), teamID, "bo@lido.dk").Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/teams/"+teamID.String()+"/players", service.AddPlayerRequest{Email: "bo@lido.dk"})
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/admin/teams/"+teamID.String()+"/players/bo@lido.dk", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestRemovePlayer_StorageFailure() {
	teamID := uuid.New()
	suite.mockService.EXPECT().RemovePlayer(gomock.Any(), teamID, "bo@lido.dk").
		Return(apperrors.NewRemoteError("remove player", errors.New("permission denied for table team_players"), nil))

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/admin/teams/"+teamID.String()+"/players/bo@lido.dk", nil)
	body := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, apperrors.TitleFailure)
	assert.Equal(suite.T(), "permission denied for table team_players", body["message"])
	assert.NotContains(suite.T(), body, "steps")
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
