// Package rpc serves the blog's token service over gRPC so that sibling
// services can check blog tokens without holding the signing secret.
//
// The service uses the protobuf well-known wrapper types for its messages,
// so clients need no generated stubs: the Client type in this package, or a
// plain grpc.ClientConn.Invoke against the method names below, is enough.
package rpc
