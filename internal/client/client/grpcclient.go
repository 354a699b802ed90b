package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.TaskHubClient

	mu    sync.RWMutex
	token string
}

func withToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AuthorizationHeaderName, "Token "+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.Token(); token != "" {
		ctx = withToken(ctx, token)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient creates a client for endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewTaskHubClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *GRPCClient) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, req api.RegisterRequest) (string, error) {
	resp, err := s.client.Register(ctx, &req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Token, nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Token, nil
}

func (s *GRPCClient) UpdateAccount(ctx context.Context, req api.UpdateAccountRequest) error {
	_, err := s.client.UpdateAccount(ctx, &req)
	return s.mapError(err)
}

func (s *GRPCClient) DeleteAccount(ctx context.Context) error {
	_, err := s.client.DeleteAccount(ctx, &emptypb.Empty{})
	return s.mapError(err)
}

func (s *GRPCClient) CreateTag(ctx context.Context, name string) (int64, error) {
	resp, err := s.client.CreateTag(ctx, &api.CreateTagRequest{Name: name})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.TagID, nil
}

func (s *GRPCClient) ListTags(ctx context.Context) ([]api.Tag, error) {
	resp, err := s.client.ListTags(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Tags, nil
}

func (s *GRPCClient) DeleteTag(ctx context.Context, tagID int64) error {
	_, err := s.client.DeleteTag(ctx, &api.DeleteTagRequest{TagID: api.FlexInt(tagID)})
	return s.mapError(err)
}

func (s *GRPCClient) CreateTask(ctx context.Context, req api.CreateTaskRequest) (int64, error) {
	resp, err := s.client.CreateTask(ctx, &req)
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.TaskID, nil
}

func (s *GRPCClient) UpdateTask(ctx context.Context, req api.UpdateTaskRequest) error {
	_, err := s.client.UpdateTask(ctx, &req)
	return s.mapError(err)
}

func (s *GRPCClient) DeleteTask(ctx context.Context, taskID int64) error {
	_, err := s.client.DeleteTask(ctx, &api.DeleteTaskRequest{TaskID: api.FlexInt(taskID)})
	return s.mapError(err)
}

func (s *GRPCClient) ListTasks(ctx context.Context) ([]api.Task, error) {
	resp, err := s.client.ListTasks(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Tasks, nil
}

func (s *GRPCClient) ListTasksByDate(ctx context.Context, start, end string) ([]api.Task, error) {
	resp, err := s.client.ListTasksByDate(ctx, &api.ListTasksByDateRequest{StartDate: start, EndDate: end})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Tasks, nil
}

func (s *GRPCClient) FilterTasks(ctx context.Context, req api.FilterTasksRequest) ([]api.LabeledTask, error) {
	resp, err := s.client.FilterTasks(ctx, &req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Tasks, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalid, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
