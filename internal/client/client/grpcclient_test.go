package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

type fakeServer struct {
	api.UnimplementedTaskHubServer

	lastAuth    string
	hadDeadline bool
	lastUpdate  *api.UpdateTaskRequest
	tagErr      error
}

func (f *fakeServer) record(ctx context.Context) {
	f.lastAuth = ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(common.AuthorizationHeaderName); len(v) > 0 {
			f.lastAuth = v[0]
		}
	}
	_, f.hadDeadline = ctx.Deadline()
}

func (f *fakeServer) Ping(ctx context.Context, _ *emptypb.Empty) (*api.PingResponse, error) {
	f.record(ctx)
	return &api.PingResponse{Status: "OK"}, nil
}

func (f *fakeServer) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	if req.Password != "secret" {
		return nil, status.Error(codes.Unauthenticated, "invalid login credentials")
	}
	return &api.TokenResponse{Token: "tok-" + req.Username}, nil
}

func (f *fakeServer) ListTags(ctx context.Context, _ *emptypb.Empty) (*api.ListTagsResponse, error) {
	f.record(ctx)
	return &api.ListTagsResponse{Tags: []api.Tag{{ID: 1, Name: "work"}}}, nil
}

func (f *fakeServer) CreateTag(ctx context.Context, req *api.CreateTagRequest) (*api.CreateTagResponse, error) {
	if f.tagErr != nil {
		return nil, f.tagErr
	}
	return &api.CreateTagResponse{TagID: 9}, nil
}

func (f *fakeServer) UpdateTask(ctx context.Context, req *api.UpdateTaskRequest) (*emptypb.Empty, error) {
	f.lastUpdate = req
	return &emptypb.Empty{}, nil
}

func newTestClient(t *testing.T) (*GRPCClient, *fakeServer) {
	t.Helper()

	fake := &fakeServer{}
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	api.RegisterTaskHubServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()

	c, err := NewGRPCClient("passthrough:///bufnet", time.Second,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)

	t.Cleanup(func() {
		c.Close()
		srv.Stop()
	})
	return c, fake
}

func TestPing_NoTokenAttached(t *testing.T) {
	c, fake := newTestClient(t)

	require.NoError(t, c.Ping(context.Background()))
	assert.Empty(t, fake.lastAuth)
	assert.True(t, fake.hadDeadline)
}

func TestLogin_ThenTokenIsSent(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	token, err := c.Login(ctx, "ann", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-ann", token)

	c.SetToken(token)
	tags, err := c.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []api.Tag{{ID: 1, Name: "work"}}, tags)
	assert.Equal(t, "Token tok-ann", fake.lastAuth)
}

func TestLogin_BadPassword(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Login(context.Background(), "ann", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid login credentials")
}

func TestUpdateTask_SendsTriStateTag(t *testing.T) {
	c, fake := newTestClient(t)

	require.NoError(t, c.UpdateTask(context.Background(), api.UpdateTaskRequest{TaskID: 3, TagID: api.NoID()}))
	require.NotNil(t, fake.lastUpdate)
	assert.True(t, fake.lastUpdate.TagID.Set)
	assert.Nil(t, fake.lastUpdate.TagID.ID)
}

func TestUnimplementedMapsToRPCError(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.ListTasks(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc error")
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		in   error
		want error
	}{
		{status.Error(codes.Unauthenticated, "x"), ErrUnauthorized},
		{status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{status.Error(codes.DeadlineExceeded, "x"), ErrUnavailable},
		{status.Error(codes.InvalidArgument, "x"), ErrInvalid},
		{status.Error(codes.AlreadyExists, "x"), ErrConflict},
		{status.Error(codes.NotFound, "x"), ErrNotFound},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, c.mapError(tt.in), tt.want)
	}

	assert.NoError(t, c.mapError(nil))
	assert.False(t, errors.Is(c.mapError(status.Error(codes.Internal, "boom")), ErrInvalid))
}

func TestCreateTag_Conflict(t *testing.T) {
	c, fake := newTestClient(t)
	fake.tagErr = status.Error(codes.AlreadyExists, "tag with this name already exists")

	_, err := c.CreateTag(context.Background(), "work")
	assert.ErrorIs(t, err, ErrConflict)
}
