package grpc

import (
	"context"

	"github.com/taskhub/taskhub/internal/server/transport"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var kindCodes = map[transport.Kind]codes.Code{
	transport.KindInvalid:         codes.InvalidArgument,
	transport.KindMissingToken:    codes.InvalidArgument,
	transport.KindUnauthenticated: codes.Unauthenticated,
	transport.KindConflict:        codes.AlreadyExists,
	transport.KindNotFound:        codes.NotFound,
	transport.KindInternal:        codes.Internal,
}

// toStatus converts a service error into a gRPC status. Internal errors are
// logged and hidden from the caller.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	kind := transport.Classify(err)
	if kind == transport.KindInternal {
		s.logger.Error(ctx, "request failed", "error", err)
	}
	return status.Error(kindCodes[kind], transport.Message(err))
}
