package rpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/redact"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// Fully qualified names of the token service and its methods.
const (
	TokenServiceName = "blog.auth.v1.TokenService"
	VerifyMethod     = "/" + TokenServiceName + "/Verify"
	WhoAmIMethod     = "/" + TokenServiceName + "/WhoAmI"
)

// TokenServiceServer is the server API for the token service.
type TokenServiceServer interface {
	// Verify validates the token in the request and returns its user id.
	// It requires no credentials of its own.
	Verify(ctx context.Context, token *wrapperspb.StringValue) (*wrapperspb.UInt64Value, error)

	// WhoAmI returns the user id of the caller's bearer token.
	WhoAmI(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.UInt64Value, error)
}

// TokenServiceDesc describes the token service for grpc.Server registration.
var TokenServiceDesc = grpc.ServiceDesc{
	ServiceName: TokenServiceName,
	HandlerType: (*TokenServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Verify", Handler: verifyHandler},
		{MethodName: "WhoAmI", Handler: whoAmIHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "blog/auth/v1/token.proto",
}

// RegisterTokenServiceServer registers srv on s.
func RegisterTokenServiceServer(s grpc.ServiceRegistrar, srv TokenServiceServer) {
	s.RegisterService(&TokenServiceDesc, srv)
}

func verifyHandler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).Verify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VerifyMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).Verify(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func whoAmIHandler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).WhoAmI(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: WhoAmIMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).WhoAmI(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// tokenServer implements TokenServiceServer on top of auth.JWTService.
type tokenServer struct {
	jwtService auth.JWTService
	gate       *Gate
	logger     *slog.Logger
}

var _ TokenServiceServer = (*tokenServer)(nil)

// NewTokenServer creates the token service implementation.
func NewTokenServer(jwtService auth.JWTService, log *slog.Logger) TokenServiceServer {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "token_rpc"))
	return &tokenServer{
		jwtService: jwtService,
		gate:       NewGate(jwtService, log),
		logger:     log,
	}
}

func (s *tokenServer) Verify(ctx context.Context, token *wrapperspb.StringValue) (*wrapperspb.UInt64Value, error) {
	if token.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	claims, err := s.jwtService.ValidateToken(ctx, token.GetValue())
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidToken) {
			logger.FromContextOrDefault(ctx, s.logger).Error("token verification failed",
				slog.String("error", redact.Error(err)))
			return nil, status.Error(codes.Internal, "internal error")
		}
		return nil, status.Error(codes.Unauthenticated, msgInvalidToken)
	}
	return wrapperspb.UInt64(claims.UserID), nil
}

func (s *tokenServer) WhoAmI(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, msgInvalidToken)
	}
	return wrapperspb.UInt64(userID), nil
}

// AuthFuncOverride lets Verify run without credentials; every other method
// goes through the gate.
func (s *tokenServer) AuthFuncOverride(ctx context.Context, fullMethodName string) (context.Context, error) {
	if fullMethodName == VerifyMethod {
		return ctx, nil
	}
	return s.gate.Authenticate(ctx)
}
