package handlers

import (
	"errors"
	"net/http"

	"lido-club-backend/internal/auth"
	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps service errors to the {"error": title, "message": raw} body the client shows
func respondError(c *gin.Context, err error) {
	var (
		verr   *apperrors.ValidationError
		nferr  *apperrors.NotFoundError
		exerr  *apperrors.AlreadyExistsError
		authz  *apperrors.AuthorizationError
		authn  *apperrors.AuthenticationError
		remote *apperrors.RemoteError
	)

	switch {
	case errors.Is(err, apperrors.ErrSignupClosed):
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.TitleFailure, "message": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Title, "message": verr.Message})
	case errors.As(err, &nferr):
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.TitleFailure, "message": nferr.Error()})
	case errors.As(err, &exerr):
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.TitleFailure, "message": exerr.Error()})
	case errors.As(err, &authz):
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.TitleFailure, "message": authz.Error()})
	case errors.As(err, &authn):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.TitleFailure, "message": authn.Error()})
	case errors.As(err, &remote):
		logger.WithContext(c.Request.Context()).WithError(err).WithField("op", remote.Op).Error("request failed")
		body := gin.H{"error": apperrors.TitleFailure, "message": remote.Message}
		if len(remote.Steps) > 0 {
			body["steps"] = remote.Steps
		}
		c.JSON(http.StatusInternalServerError, body)
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.TitleFailure, "message": err.Error()})
	}
}

// badRequest answers with a "Mangler" validation body
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.TitleMissing, "message": message})
}

// parseIDParam reads a uuid path parameter, answering 400 when it is malformed
func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// identity returns the signed-in user placed in the context by RequireAuth
func identity(c *gin.Context) (uuid.UUID, string, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, "", false
	}
	email, ok := auth.GetUserEmail(c)
	if !ok {
		respondError(c, apperrors.ErrUserEmailNotFound)
		return uuid.Nil, "", false
	}
	return userID, models.NormalizeEmail(email), true
}
