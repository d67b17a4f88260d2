package handlers

import (
	"net/http"
	"strconv"

	"lido-club-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchHandler handles HTTP requests for match scheduling
type MatchHandler struct {
	matchService service.MatchServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// ListMyMatches handles GET /matches
// @Summary List my matches
// @Description Matches of the teams the user captains or plays on, grouped by calendar day
// @Tags matches
// @Produce json
// @Param upcoming query bool false "Only matches that have not started yet"
// @Param team_id query string false "Team ID (UUID) to filter by"
// @Success 200 {array} service.MatchDay "Matches grouped by day"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches [get]
func (h *MatchHandler) ListMyMatches(c *gin.Context) {
	_, email, ok := identity(c)
	if !ok {
		return
	}

	var filter service.MatchFilter
	if raw := c.Query("upcoming"); raw != "" {
		upcoming, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "invalid upcoming flag")
			return
		}
		filter.Upcoming = upcoming
	}
	if raw := c.Query("team_id"); raw != "" {
		teamID, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid team ID")
			return
		}
		filter.TeamID = &teamID
	}

	days, err := h.matchService.ListForUser(c.Request.Context(), email, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, days)
}

// GetMatch handles GET /matches/:id
// @Summary Get match detail
// @Description Match with team name, roster and the caller's own availability answer
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchDetailResponse "Match detail"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "match")
	if !ok {
		return
	}

	detail, err := h.matchService.Detail(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListAllMatches handles GET /admin/matches
// @Summary List all matches
// @Description Every match in ascending start order with team names
// @Tags admin-matches
// @Produce json
// @Success 200 {array} service.MatchResponse "All matches"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/matches [get]
func (h *MatchHandler) ListAllMatches(c *gin.Context) {
	matches, err := h.matchService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// CreateMatch handles POST /admin/matches
// @Summary Schedule a match
// @Description Create a match, optionally with a preselected roster, and notify the team
// @Tags admin-matches
// @Accept json
// @Produce json
// @Param match body service.CreateMatchRequest true "Match data"
// @Success 201 {object} service.MatchResponse "Created match"
// @Failure 400 {object} map[string]interface{} "Missing fields"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req service.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	match, err := h.matchService.CreateMatch(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// SaveMatch handles PUT /admin/matches/:id
// @Summary Save a match
// @Description Update match fields and reconcile the signup mode and roster
// @Tags admin-matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param match body service.SaveMatchRequest true "Match data"
// @Success 200 {object} service.SaveMatchResult "Saved match with step outcomes"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Failure 500 {object} map[string]interface{} "A step failed; completed steps were compensated"
// @Security BearerAuth
// @Router /admin/matches/{id} [put]
func (h *MatchHandler) SaveMatch(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "match")
	if !ok {
		return
	}

	var req service.SaveMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.matchService.SaveMatch(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteMatch handles DELETE /admin/matches/:id
// @Summary Delete a match
// @Tags admin-matches
// @Param id path string true "Match ID (UUID)"
// @Success 204 "Match deleted"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /admin/matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "match")
	if !ok {
		return
	}

	if err := h.matchService.DeleteMatch(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
