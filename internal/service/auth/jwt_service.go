package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	GenerateToken(ctx context.Context, userID uint64) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Every failure wraps ErrInvalidToken; ErrExpiredToken, ErrInvalidSignature
	// and ErrMalformedToken tell the causes apart.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime reports how long issued tokens stay valid.
	TokenLifetime() time.Duration
}

// Claims represents the claims carried by a blog access token.
type Claims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID uint64 `json:"id"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
