package auth

import (
	"fmt"
	"time"

	"github.com/phrazzld/blog-api/internal/config"
)

// DefaultJWTConfig returns a standard configuration for JWT authentication suitable for testing.
func DefaultJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
	}
}

// NewTestJWTService creates a JWT service with the given secret and
// lifetime whose clock is timeFunc.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}

// MustCreateTestJWTService creates a JWT service from DefaultJWTConfig and
// panics if it fails.
func MustCreateTestJWTService() JWTService {
	service, err := NewJWTService(DefaultJWTConfig())
	if err != nil {
		// ALLOW-PANIC
		panic(fmt.Sprintf("failed to create test JWT service: %v", err))
	}
	return service
}
