package auth

import (
	"fmt"
	"strings"
	"time"

	"lido-club-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents the session token claims. Subject carries the auth user id.
type AuthClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject as the auth user id
func (c *AuthClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool      `json:"valid"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// AuthService validates session tokens issued by the sign-in provider
type AuthService struct {
	config *AuthConfig
	parser *jwt.Parser
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(config.Leeway),
	}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}

	return &AuthService{config: config, parser: jwt.NewParser(opts...)}, nil
}

// GenerateJWT creates a session token. Used by tooling and tests; sign-in itself happens elsewhere.
func (s *AuthService) GenerateJWT(userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Email: models.NormalizeEmail(email),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a session token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("invalid subject: %w", err)
	}
	claims.Email = models.NormalizeEmail(claims.Email)
	if claims.Email == "" || !strings.Contains(claims.Email, "@") {
		return nil, fmt.Errorf("token has no email")
	}
	return claims, nil
}
