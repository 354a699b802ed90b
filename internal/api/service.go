package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "taskhub.TaskHub"

const (
	MethodPing            = "Ping"
	MethodRegister        = "Register"
	MethodLogin           = "Login"
	MethodUpdateAccount   = "UpdateAccount"
	MethodDeleteAccount   = "DeleteAccount"
	MethodCreateTag       = "CreateTag"
	MethodListTags        = "ListTags"
	MethodDeleteTag       = "DeleteTag"
	MethodCreateTask      = "CreateTask"
	MethodUpdateTask      = "UpdateTask"
	MethodDeleteTask      = "DeleteTask"
	MethodListTasks       = "ListTasks"
	MethodListTasksByDate = "ListTasksByDate"
	MethodFilterTasks     = "FilterTasks"
)

// FullMethod returns the gRPC full method name, e.g. "/taskhub.TaskHub/Ping".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// TaskHubServer is the server API of the TaskHub service.
type TaskHubServer interface {
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*TokenResponse, error)
	Login(context.Context, *LoginRequest) (*TokenResponse, error)
	UpdateAccount(context.Context, *UpdateAccountRequest) (*emptypb.Empty, error)
	DeleteAccount(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	CreateTag(context.Context, *CreateTagRequest) (*CreateTagResponse, error)
	ListTags(context.Context, *emptypb.Empty) (*ListTagsResponse, error)
	DeleteTag(context.Context, *DeleteTagRequest) (*emptypb.Empty, error)
	CreateTask(context.Context, *CreateTaskRequest) (*CreateTaskResponse, error)
	UpdateTask(context.Context, *UpdateTaskRequest) (*emptypb.Empty, error)
	DeleteTask(context.Context, *DeleteTaskRequest) (*emptypb.Empty, error)
	ListTasks(context.Context, *emptypb.Empty) (*ListTasksResponse, error)
	ListTasksByDate(context.Context, *ListTasksByDateRequest) (*ListTasksResponse, error)
	FilterTasks(context.Context, *FilterTasksRequest) (*FilterTasksResponse, error)
}

// UnimplementedTaskHubServer can be embedded to have forward compatible
// implementations.
type UnimplementedTaskHubServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedTaskHubServer) Ping(context.Context, *emptypb.Empty) (*PingResponse, error) {
	return nil, unimplemented(MethodPing)
}
func (UnimplementedTaskHubServer) Register(context.Context, *RegisterRequest) (*TokenResponse, error) {
	return nil, unimplemented(MethodRegister)
}
func (UnimplementedTaskHubServer) Login(context.Context, *LoginRequest) (*TokenResponse, error) {
	return nil, unimplemented(MethodLogin)
}
func (UnimplementedTaskHubServer) UpdateAccount(context.Context, *UpdateAccountRequest) (*emptypb.Empty, error) {
	return nil, unimplemented(MethodUpdateAccount)
}
func (UnimplementedTaskHubServer) DeleteAccount(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, unimplemented(MethodDeleteAccount)
}
func (UnimplementedTaskHubServer) CreateTag(context.Context, *CreateTagRequest) (*CreateTagResponse, error) {
	return nil, unimplemented(MethodCreateTag)
}
func (UnimplementedTaskHubServer) ListTags(context.Context, *emptypb.Empty) (*ListTagsResponse, error) {
	return nil, unimplemented(MethodListTags)
}
func (UnimplementedTaskHubServer) DeleteTag(context.Context, *DeleteTagRequest) (*emptypb.Empty, error) {
	return nil, unimplemented(MethodDeleteTag)
}
func (UnimplementedTaskHubServer) CreateTask(context.Context, *CreateTaskRequest) (*CreateTaskResponse, error) {
	return nil, unimplemented(MethodCreateTask)
}
func (UnimplementedTaskHubServer) UpdateTask(context.Context, *UpdateTaskRequest) (*emptypb.Empty, error) {
	return nil, unimplemented(MethodUpdateTask)
}
func (UnimplementedTaskHubServer) DeleteTask(context.Context, *DeleteTaskRequest) (*emptypb.Empty, error) {
	return nil, unimplemented(MethodDeleteTask)
}
func (UnimplementedTaskHubServer) ListTasks(context.Context, *emptypb.Empty) (*ListTasksResponse, error) {
	return nil, unimplemented(MethodListTasks)
}
func (UnimplementedTaskHubServer) ListTasksByDate(context.Context, *ListTasksByDateRequest) (*ListTasksResponse, error) {
	return nil, unimplemented(MethodListTasksByDate)
}
func (UnimplementedTaskHubServer) FilterTasks(context.Context, *FilterTasksRequest) (*FilterTasksResponse, error) {
	return nil, unimplemented(MethodFilterTasks)
}

// unary builds the MethodDesc of a unary RPC, decoding into a fresh Req and
// routing through the server interceptor chain.
func unary[Req, Resp any](method string, call func(TaskHubServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(TaskHubServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// TaskHub_ServiceDesc is the grpc.ServiceDesc for the TaskHub service.
var TaskHub_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TaskHubServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodPing, TaskHubServer.Ping),
		unary(MethodRegister, TaskHubServer.Register),
		unary(MethodLogin, TaskHubServer.Login),
		unary(MethodUpdateAccount, TaskHubServer.UpdateAccount),
		unary(MethodDeleteAccount, TaskHubServer.DeleteAccount),
		unary(MethodCreateTag, TaskHubServer.CreateTag),
		unary(MethodListTags, TaskHubServer.ListTags),
		unary(MethodDeleteTag, TaskHubServer.DeleteTag),
		unary(MethodCreateTask, TaskHubServer.CreateTask),
		unary(MethodUpdateTask, TaskHubServer.UpdateTask),
		unary(MethodDeleteTask, TaskHubServer.DeleteTask),
		unary(MethodListTasks, TaskHubServer.ListTasks),
		unary(MethodListTasksByDate, TaskHubServer.ListTasksByDate),
		unary(MethodFilterTasks, TaskHubServer.FilterTasks),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "taskhub.proto",
}

func RegisterTaskHubServer(s grpc.ServiceRegistrar, srv TaskHubServer) {
	s.RegisterService(&TaskHub_ServiceDesc, srv)
}

// TaskHubClient is the client API of the TaskHub service. Calls use the JSON
// codec.
type TaskHubClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	UpdateAccount(ctx context.Context, in *UpdateAccountRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteAccount(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	CreateTag(ctx context.Context, in *CreateTagRequest, opts ...grpc.CallOption) (*CreateTagResponse, error)
	ListTags(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListTagsResponse, error)
	DeleteTag(ctx context.Context, in *DeleteTagRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error)
	UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListTasks(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListTasksResponse, error)
	ListTasksByDate(ctx context.Context, in *ListTasksByDateRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	FilterTasks(ctx context.Context, in *FilterTasksRequest, opts ...grpc.CallOption) (*FilterTasksResponse, error)
}

type taskHubClient struct {
	cc grpc.ClientConnInterface
}

func NewTaskHubClient(cc grpc.ClientConnInterface) TaskHubClient {
	return &taskHubClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskHubClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}
func (c *taskHubClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, MethodRegister, in, opts)
}
func (c *taskHubClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, MethodLogin, in, opts)
}
func (c *taskHubClient) UpdateAccount(ctx context.Context, in *UpdateAccountRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodUpdateAccount, in, opts)
}
func (c *taskHubClient) DeleteAccount(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodDeleteAccount, in, opts)
}
func (c *taskHubClient) CreateTag(ctx context.Context, in *CreateTagRequest, opts ...grpc.CallOption) (*CreateTagResponse, error) {
	return invoke[CreateTagResponse](ctx, c.cc, MethodCreateTag, in, opts)
}
func (c *taskHubClient) ListTags(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListTagsResponse, error) {
	return invoke[ListTagsResponse](ctx, c.cc, MethodListTags, in, opts)
}
func (c *taskHubClient) DeleteTag(ctx context.Context, in *DeleteTagRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodDeleteTag, in, opts)
}
func (c *taskHubClient) CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error) {
	return invoke[CreateTaskResponse](ctx, c.cc, MethodCreateTask, in, opts)
}
func (c *taskHubClient) UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodUpdateTask, in, opts)
}
func (c *taskHubClient) DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodDeleteTask, in, opts)
}
func (c *taskHubClient) ListTasks(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	return invoke[ListTasksResponse](ctx, c.cc, MethodListTasks, in, opts)
}
func (c *taskHubClient) ListTasksByDate(ctx context.Context, in *ListTasksByDateRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	return invoke[ListTasksResponse](ctx, c.cc, MethodListTasksByDate, in, opts)
}
func (c *taskHubClient) FilterTasks(ctx context.Context, in *FilterTasksRequest, opts ...grpc.CallOption) (*FilterTasksResponse, error) {
	return invoke[FilterTasksResponse](ctx, c.cc, MethodFilterTasks, in, opts)
}
