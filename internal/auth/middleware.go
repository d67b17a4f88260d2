package auth

import (
	"context"
	"net/http"
	"strings"
	"sync"

	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberDirectory is the part of the membership service the middleware needs
type MemberDirectory interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	EnsureProfile(ctx context.Context, userID uuid.UUID, email string) error
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
	members MemberDirectory
	// seen holds user ids whose profile was ensured by this process
	seen sync.Map
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, members MemberDirectory) *AuthMiddleware {
	return &AuthMiddleware{service: service, members: members}
}

// bearerToken reads the token from the Authorization header, or from the
// access_token query parameter for websocket upgrades where browsers cannot set headers
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if token := c.Query("access_token"); token != "" {
			return token, true
		}
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", false
	}
	return tokenString, true
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "message": err.Error()})
			c.Abort()
			return
		}
		userID, _ := claims.UserID()

		c.Set("user_id", userID)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)
		ctx := logger.ContextWithEmail(c.Request.Context(), claims.Email)
		c.Request = c.Request.WithContext(ctx)

		if _, loaded := m.seen.Load(userID); !loaded && m.members != nil {
			if err := m.members.EnsureProfile(ctx, userID, claims.Email); err != nil {
				logger.WithContext(ctx).WithError(err).Warn("failed to ensure profile")
			} else {
				m.seen.Store(userID, struct{}{})
			}
		}

		c.Next()
	}
}

// RequireAdmin rejects users without the admin flag. Must run after RequireAuth.
// The flag is read live on every request; the cached role label is never trusted.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		isAdmin, err := m.members.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.TitleFailure, "message": err.Error()})
			c.Abort()
			return
		}
		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNotAdmin.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok && emailStr != ""
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
