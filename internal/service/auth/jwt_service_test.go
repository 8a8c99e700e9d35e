package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/config"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantErr bool
	}{
		{"valid config", config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60}, false},
		{"short secret", config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60}, true},
		{"zero lifetime", config.AuthConfig{JWTSecret: testSecret}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, err := NewJWTService(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Hour, svc.TokenLifetime())
		})
	}
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uint64(42)

	svc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
		return fixedTime
	})

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)

	second, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEqual(t, token, second, "jti should make every token unique")
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	wrongSecret := "wrong-secret-that-is-long-enough-for-testing"
	userID := uint64(7)

	issue := func(secret string) string {
		svc := NewTestJWTService(secret, tokenLifetime, func() time.Time { return fixedTime })
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)
		return token
	}
	at := func(when time.Time) JWTService {
		return NewTestJWTService(testSecret, tokenLifetime, func() time.Time { return when })
	}

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				return at(fixedTime.Add(59 * time.Minute)), issue(testSecret)
			},
		},
		{
			name: "expired one minute after lifetime",
			setupFunc: func() (JWTService, string) {
				return at(fixedTime.Add(61 * time.Minute)), issue(testSecret)
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "expired one second after lifetime",
			setupFunc: func() (JWTService, string) {
				return at(fixedTime.Add(tokenLifetime + time.Second)), issue(testSecret)
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong secret",
			setupFunc: func() (JWTService, string) {
				return at(fixedTime), issue(wrongSecret)
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name: "tampered payload",
			setupFunc: func() (JWTService, string) {
				token := issue(testSecret)
				parts := strings.Split(token, ".")
				forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtCustomClaims{
					UserID: 1,
					RegisteredClaims: jwt.RegisteredClaims{
						IssuedAt:  jwt.NewNumericDate(fixedTime),
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(tokenLifetime)),
					},
				})
				forgedToken, err := forged.SignedString([]byte(wrongSecret))
				require.NoError(t, err)
				forgedParts := strings.Split(forgedToken, ".")
				return at(fixedTime), parts[0] + "." + forgedParts[1] + "." + parts[2]
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name: "alg none",
			setupFunc: func() (JWTService, string) {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwtCustomClaims{
					UserID: userID,
					RegisteredClaims: jwt.RegisteredClaims{
						IssuedAt:  jwt.NewNumericDate(fixedTime),
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(tokenLifetime)),
					},
				})
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return at(fixedTime), signed
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				return at(fixedTime), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrMalformedToken,
		},
		{
			name: "empty token",
			setupFunc: func() (JWTService, string) {
				return at(fixedTime), ""
			},
			wantErr: ErrMalformedToken,
		},
		{
			name: "missing user id",
			setupFunc: func() (JWTService, string) {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtCustomClaims{
					RegisteredClaims: jwt.RegisteredClaims{
						IssuedAt:  jwt.NewNumericDate(fixedTime),
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(tokenLifetime)),
					},
				})
				signed, err := token.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return at(fixedTime), signed
			},
			wantErr: ErrMalformedToken,
		},
		{
			name: "missing expiry",
			setupFunc: func() (JWTService, string) {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtCustomClaims{UserID: userID})
				signed, err := token.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return at(fixedTime), signed
			},
			wantErr: ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc()
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}
