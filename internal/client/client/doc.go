// Package client talks to the TaskHub backend over gRPC.
//
// GRPCClient implements Client. It keeps the current token and attaches it
// to every call through a unary interceptor, applies the configured request
// timeout and maps gRPC status codes onto the sentinel errors of this
// package (ErrUnavailable, ErrUnauthorized, ErrInvalid, ErrConflict,
// ErrNotFound), keeping the server's message as detail.
package client
