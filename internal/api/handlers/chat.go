package handlers

import (
	"net/http"
	"strconv"

	"lido-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the REST side of team chat
type ChatHandler struct {
	chatService service.ChatServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService service.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ListMessages handles GET /teams/:id/messages
// @Summary Team chat history
// @Description Latest messages of the team, oldest first. Only captains and players of the team may read.
// @Tags chat
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param limit query int false "Maximum number of messages" default(200)
// @Success 200 {array} models.ChatMessage "Messages"
// @Failure 403 {object} map[string]interface{} "Not a member of the team"
// @Security BearerAuth
// @Router /teams/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	_, email, ok := identity(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, "invalid limit")
			return
		}
		limit = n
	}

	messages, err := h.chatService.History(c.Request.Context(), teamID, email, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SendMessage handles POST /teams/:id/messages
// @Summary Send a chat message
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param message body service.SendMessageRequest true "Message"
// @Success 201 {object} models.ChatMessage "Stored message"
// @Failure 400 {object} map[string]interface{} "Empty message"
// @Failure 403 {object} map[string]interface{} "Not a member of the team"
// @Security BearerAuth
// @Router /teams/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	_, email, ok := identity(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	msg, err := h.chatService.Send(c.Request.Context(), teamID, email, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}
