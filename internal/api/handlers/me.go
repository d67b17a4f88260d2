package handlers

import (
	"net/http"

	"lido-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MeHandler serves the signed-in user's own teams and badges
type MeHandler struct {
	membershipService service.MembershipServiceInterface
}

// NewMeHandler creates a new handler for the signed-in user
func NewMeHandler(membershipService service.MembershipServiceInterface) *MeHandler {
	return &MeHandler{membershipService: membershipService}
}

// GetMyBadges handles GET /me/badges
// @Summary My badges
// @Description Global badges of the caller, admin taken from the profile flag
// @Tags me
// @Produce json
// @Success 200 {object} service.Badges "Badges"
// @Security BearerAuth
// @Router /me/badges [get]
func (h *MeHandler) GetMyBadges(c *gin.Context) {
	userID, email, ok := identity(c)
	if !ok {
		return
	}

	badges, err := h.membershipService.MyBadges(c.Request.Context(), userID, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, badges)
}

// GetMyTeams handles GET /me/teams
// @Summary My teams
// @Description Teams the caller captains or plays on, in Danish name order
// @Tags me
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Security BearerAuth
// @Router /me/teams [get]
func (h *MeHandler) GetMyTeams(c *gin.Context) {
	_, email, ok := identity(c)
	if !ok {
		return
	}

	teams, err := h.membershipService.UserTeams(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
