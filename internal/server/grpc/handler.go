package grpc

import (
	"context"

	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/server/transport"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.TokenResponse, error) {

	token, err := s.services.Users.Register(ctx, transport.RegisterInput(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &api.TokenResponse{Token: token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {

	token, err := s.services.Users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.TokenResponse{Token: token}, nil
}

func (s *GRPCServer) UpdateAccount(ctx context.Context, req *api.UpdateAccountRequest) (*emptypb.Empty, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Users.Update(ctx, userID, transport.UserPatch(req)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Users.Delete(ctx, userID); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Account deleted", "user_id", userID)
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) CreateTag(ctx context.Context, req *api.CreateTagRequest) (*api.CreateTagResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.services.Tags.Create(ctx, userID, req.Name)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.CreateTagResponse{Message: "Tag created successfully", TagID: id}, nil
}

func (s *GRPCServer) ListTags(ctx context.Context, _ *emptypb.Empty) (*api.ListTagsResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	tags, err := s.services.Tags.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ListTagsResponse{Tags: transport.Tags(tags)}, nil
}

func (s *GRPCServer) DeleteTag(ctx context.Context, req *api.DeleteTagRequest) (*emptypb.Empty, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Tags.Delete(ctx, userID, int64(req.TagID)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) CreateTask(ctx context.Context, req *api.CreateTaskRequest) (*api.CreateTaskResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.services.Tasks.Create(ctx, userID, transport.CreateTaskInput(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.CreateTaskResponse{Message: "Task created successfully", TaskID: id}, nil
}

func (s *GRPCServer) UpdateTask(ctx context.Context, req *api.UpdateTaskRequest) (*emptypb.Empty, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Tasks.Update(ctx, userID, int64(req.TaskID), transport.TaskPatch(req)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeleteTask(ctx context.Context, req *api.DeleteTaskRequest) (*emptypb.Empty, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Tasks.Delete(ctx, userID, int64(req.TaskID)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListTasks(ctx context.Context, _ *emptypb.Empty) (*api.ListTasksResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	views, err := s.services.Tasks.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ListTasksResponse{Tasks: transport.Tasks(views)}, nil
}

func (s *GRPCServer) ListTasksByDate(ctx context.Context, req *api.ListTasksByDateRequest) (*api.ListTasksResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	views, err := s.services.Tasks.ListByDateRange(ctx, userID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ListTasksResponse{Tasks: transport.Tasks(views)}, nil
}

func (s *GRPCServer) FilterTasks(ctx context.Context, req *api.FilterTasksRequest) (*api.FilterTasksResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	views, err := s.services.Tasks.Filter(ctx, userID, transport.FilterCriteria(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.FilterTasksResponse{Tasks: transport.LabeledTasks(views)}, nil
}
