package rpc

import (
	"context"
	"fmt"
	"log/slog"

	grpcauth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"

	"github.com/phrazzld/blog-api/internal/service/auth"
)

// InterceptorLogger adapts slog to the logging interceptor's Logger.
func InterceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// LoggingInterceptor logs the start and finish of every unary call.
func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	opts := []logging.Option{
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
		logging.WithLevels(logging.DefaultServerCodeToLevel),
	}
	return logging.UnaryServerInterceptor(InterceptorLogger(log), opts...)
}

// NewServer builds a gRPC server with logging and the access gate installed
// and the token service registered.
func NewServer(jwtService auth.JWTService, log *slog.Logger, opts ...grpc.ServerOption) *grpc.Server {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "grpc"))

	gate := NewGate(jwtService, log)
	opts = append(opts, grpc.ChainUnaryInterceptor(
		LoggingInterceptor(log),
		grpcauth.UnaryServerInterceptor(gate.Authenticate),
	))

	srv := grpc.NewServer(opts...)
	RegisterTokenServiceServer(srv, NewTokenServer(jwtService, log))
	return srv
}

// Addr formats the listen address for port.
func Addr(port int) string {
	return fmt.Sprintf(":%d", port)
}
