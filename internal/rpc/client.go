package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls the token service over an existing connection.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Verify returns the user id encoded in token.
func (c *Client) Verify(ctx context.Context, token string, opts ...grpc.CallOption) (uint64, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.conn.Invoke(ctx, VerifyMethod, wrapperspb.String(token), out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}

// WhoAmI sends token as the bearer credential and returns the identity the
// server admitted.
func (c *Client) WhoAmI(ctx context.Context, token string, opts ...grpc.CallOption) (uint64, error) {
	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, authorizationKey, "Bearer "+token)
	}
	out := new(wrapperspb.UInt64Value)
	if err := c.conn.Invoke(ctx, WhoAmIMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}
