package rpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/redact"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

const (
	authorizationKey = "authorization"

	msgNoTokenProvided = "no token provided"
	msgInvalidToken    = "invalid token"
)

type contextKey string

const userIDKey contextKey = "rpc_user_id"

// UserIDFromContext returns the identity admitted by the gate.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	userID, ok := ctx.Value(userIDKey).(uint64)
	return userID, ok && userID != 0
}

// Gate applies the access rules to gRPC calls: a missing bearer token is
// PermissionDenied, a token that fails verification is Unauthenticated.
type Gate struct {
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewGate creates a Gate backed by jwtService.
func NewGate(jwtService auth.JWTService, log *slog.Logger) *Gate {
	if log == nil {
		log = slog.Default()
	}
	return &Gate{jwtService: jwtService, logger: log}
}

// Authenticate has the signature of grpc-middleware's auth.AuthFunc. On
// success the returned context carries the caller's user id.
func (g *Gate) Authenticate(ctx context.Context) (context.Context, error) {
	var header string
	if values := metadata.ValueFromIncomingContext(ctx, authorizationKey); len(values) > 0 {
		header = values[0]
	}

	token, err := auth.BearerToken(header)
	if err != nil {
		return nil, status.Error(codes.PermissionDenied, msgNoTokenProvided)
	}

	claims, err := g.jwtService.ValidateToken(ctx, token)
	if err != nil {
		logger.FromContextOrDefault(ctx, g.logger).Debug("rpc token rejected",
			slog.String("reason", redact.Error(err)))
		return nil, status.Error(codes.Unauthenticated, msgInvalidToken)
	}

	return context.WithValue(ctx, userIDKey, claims.UserID), nil
}
