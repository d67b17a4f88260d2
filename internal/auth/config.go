package auth

import (
	"fmt"
	"time"
)

// AuthConfig holds the settings needed to validate session tokens
type AuthConfig struct {
	JWTSecret string
	// Issuer is checked when set
	Issuer string
	// Leeway tolerates clock skew between the token issuer and this server
	Leeway time.Duration
}

// ValidateConfig validates the auth configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT secret must be at least 16 characters")
	}
	if c.Leeway < 0 {
		return fmt.Errorf("leeway must not be negative")
	}
	return nil
}
