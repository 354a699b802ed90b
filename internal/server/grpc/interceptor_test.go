package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/logging"
	"github.com/taskhub/taskhub/internal/server/services/servicestest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer() *GRPCServer {
	fakes := servicestest.New(map[string]int64{"abc": 3})
	return NewGRPCServer("", logging.Nop{}, fakes.Set(), 50*time.Millisecond)
}

func TestInterceptor_PublicMethodSkipsAuth(t *testing.T) {
	s := newTestServer()
	info := &grpc.UnaryServerInfo{FullMethod: api.FullMethod(api.MethodLogin)}

	called := false
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || resp != "ok" {
		t.Fatalf("handler not called properly, resp=%v", resp)
	}
}

func TestInterceptor_StoresUserID(t *testing.T) {
	s := newTestServer()
	info := &grpc.UnaryServerInfo{FullMethod: api.FullMethod(api.MethodListTasks)}
	md := metadata.Pairs(common.AuthorizationHeaderName, "Bearer abc")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var got int64
	h := func(ctx context.Context, req any) (any, error) {
		id, err := currentUser(ctx)
		got = id
		return nil, err
	}

	if _, err := s.accessTokenInterceptor(ctx, nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected user 3, got %d", got)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer()
	info := &grpc.UnaryServerInfo{FullMethod: api.FullMethod(api.MethodCreateTag)}

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestTimeoutInterceptor_SetsDeadline(t *testing.T) {
	s := newTestServer()

	h := func(ctx context.Context, req any) (any, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("expected deadline on request context")
		}
		return nil, nil
	}

	if _, err := s.timeoutInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCurrentUser_Missing(t *testing.T) {
	if _, err := currentUser(context.Background()); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}
