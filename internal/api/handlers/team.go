package handlers

import (
	"net/http"

	"lido-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team administration
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /admin/teams
// @Summary List teams
// @Description All teams in Danish name order
// @Tags admin-teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// CreateTeam handles POST /admin/teams
// @Summary Create a new team
// @Tags admin-teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} map[string]interface{} "Name missing"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /admin/teams/:id
// @Summary Get team detail
// @Description Team with captain, player pool and team-scoped badges
// @Tags admin-teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamDetailResponse "Team detail"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /admin/teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// RenameTeam handles PATCH /admin/teams/:id
// @Summary Rename a team
// @Tags admin-teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.RenameTeamRequest true "New name"
// @Success 200 {object} service.TeamResponse "Renamed team"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /admin/teams/{id} [patch]
func (h *TeamHandler) RenameTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.RenameTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.teamService.Rename(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// SetCaptain handles PUT /admin/teams/:id/captain
// @Summary Assign the team captain
// @Tags admin-teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param captain body service.SetCaptainRequest true "Captain email"
// @Success 200 {object} service.TeamResponse "Updated team"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /admin/teams/{id}/captain [put]
func (h *TeamHandler) SetCaptain(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.SetCaptainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.teamService.SetCaptain(c.Request.Context(), id, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ClearCaptain handles DELETE /admin/teams/:id/captain
// @Summary Remove the team captain
// @Tags admin-teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Updated team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /admin/teams/{id}/captain [delete]
func (h *TeamHandler) ClearCaptain(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.ClearCaptain(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AddPlayer handles POST /admin/teams/:id/players
// @Summary Add a player to the team pool
// @Description Adding an existing member is not an error
// @Tags admin-teams
// @Accept json
// @Param id path string true "Team ID (UUID)"
// @Param player body service.AddPlayerRequest true "Player email"
// @Success 204 "Player added"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /admin/teams/{id}/players [post]
func (h *TeamHandler) AddPlayer(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.teamService.AddPlayer(c.Request.Context(), id, req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemovePlayer handles DELETE /admin/teams/:id/players/:email
// @Summary Remove a player from the team pool
// @Tags admin-teams
// @Param id path string true "Team ID (UUID)"
// @Param email path string true "Player email"
// @Success 204 "Player removed"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Security BearerAuth
// @Router /admin/teams/{id}/players/{email} [delete]
func (h *TeamHandler) RemovePlayer(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.RemovePlayer(c.Request.Context(), id, c.Param("email")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
