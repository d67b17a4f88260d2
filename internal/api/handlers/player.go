package handlers

import (
	"net/http"

	"lido-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for whitelist administration
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// ListPlayers handles GET /admin/players
// @Summary List players
// @Description Every allowed user with global badges, admins first, then captains, then players
// @Tags admin-players
// @Produce json
// @Success 200 {array} service.PlayerResponse "Players"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// CreatePlayer handles POST /admin/players
// @Summary Add a player
// @Description Whitelists the email, adds team memberships and optionally assigns captaincy
// @Tags admin-players
// @Accept json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.CreatePlayerResult "Created player with step outcomes"
// @Failure 400 {object} map[string]interface{} "Missing fields"
// @Failure 500 {object} map[string]interface{} "A step failed; earlier steps are kept"
// @Security BearerAuth
// @Router /admin/players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.playerService.CreatePlayer(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdatePlayer handles PUT /admin/players/:email
// @Summary Rename a player
// @Tags admin-players
// @Accept json
// @Produce json
// @Param email path string true "Player email"
// @Param player body service.UpdatePlayerRequest true "New name"
// @Success 200 {object} service.PlayerResponse "Updated player"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /admin/players/{email} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	player, err := h.playerService.UpdatePlayer(c.Request.Context(), c.Param("email"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// GrantAdmin handles POST /admin/players/:email/admin
// @Summary Make a player admin
// @Tags admin-players
// @Produce json
// @Param email path string true "Player email"
// @Success 200 {object} service.PlayerResponse "Updated player"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /admin/players/{email}/admin [post]
func (h *PlayerHandler) GrantAdmin(c *gin.Context) {
	player, err := h.playerService.GrantAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles DELETE /admin/players/:email
// @Summary Delete a player
// @Description Removes memberships, clears captaincies and removes the whitelist entry
// @Tags admin-players
// @Produce json
// @Param email path string true "Player email"
// @Success 200 {object} service.DeletePlayerResult "Step outcomes"
// @Failure 500 {object} map[string]interface{} "A step failed; earlier steps are kept"
// @Security BearerAuth
// @Router /admin/players/{email} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	result, err := h.playerService.DeletePlayer(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPlayerTeams handles GET /admin/players/:email/teams
// @Summary Teams of a player
// @Tags admin-players
// @Produce json
// @Param email path string true "Player email"
// @Success 200 {object} service.PlayerTeamsResponse "Captained and played teams"
// @Security BearerAuth
// @Router /admin/players/{email}/teams [get]
func (h *PlayerHandler) GetPlayerTeams(c *gin.Context) {
	teams, err := h.playerService.PlayerTeams(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
