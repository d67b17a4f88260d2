package handlers

import (
	"net/http"

	"lido-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler handles availability answers and the admin candidate view
type AvailabilityHandler struct {
	availabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// SubmitResponse handles PUT /matches/:id/response
// @Summary Answer availability
// @Description Store or replace the caller's answer (ready or not_ready)
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param response body service.SubmitResponseRequest true "Answer"
// @Success 200 {object} models.MatchResponse "Stored answer"
// @Failure 400 {object} map[string]interface{} "Invalid answer"
// @Failure 409 {object} map[string]interface{} "Match is not collecting availability"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id}/response [put]
func (h *AvailabilityHandler) SubmitResponse(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	matchID, ok := parseIDParam(c, "id", "match")
	if !ok {
		return
	}

	var req service.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	response, err := h.availabilityService.SubmitResponse(c.Request.Context(), matchID, userID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListCandidates handles GET /admin/matches/:id/candidates
// @Summary Ready candidates
// @Description Team players who answered ready, in player pool order
// @Tags admin-matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {array} service.Candidate "Ready players"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /admin/matches/{id}/candidates [get]
func (h *AvailabilityHandler) ListCandidates(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id", "match")
	if !ok {
		return
	}

	candidates, err := h.availabilityService.ReadyCandidates(c.Request.Context(), matchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}
