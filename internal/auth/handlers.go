package auth

import (
	"context"
	"errors"
	"net/http"

	apperrors "lido-club-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// EmailChecker reports whether an email is on the sign-in whitelist
type EmailChecker interface {
	CheckEmailAllowed(ctx context.Context, email string) (bool, error)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	checker EmailChecker
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, checker EmailChecker) *AuthHandler {
	return &AuthHandler{service: service, checker: checker}
}

// CheckEmailRequest is the body of the whitelist check
type CheckEmailRequest struct {
	Email string `json:"email"`
}

// CheckEmail handles POST /api/v1/auth/check-email
// @Summary Check sign-in whitelist
// @Description Reports whether the email may sign in. Called before sign-in, so no token is required.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body CheckEmailRequest true "Email to check"
// @Success 200 {object} map[string]interface{} "allowed flag"
// @Failure 400 {object} map[string]interface{} "Missing email"
// @Router /api/v1/auth/check-email [post]
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.TitleMissing, "message": "Udfyld email."})
		return
	}

	allowed, err := h.checker.CheckEmailAllowed(c.Request.Context(), req.Email)
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Title, "message": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.TitleFailure, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"allowed": allowed})
}

// ValidateToken handles POST /api/v1/auth/validate
// @Summary Validate JWT token
// @Description Validate the session token and return the user it belongs to
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/v1/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "message": err.Error()})
		return
	}

	userID, _ := claims.UserID()
	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, UserID: userID, Email: claims.Email})
}
