package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/server/transport"
)

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, api.PingResponse{Status: "OK"})
}

func (s *HTTPServer) register(c *gin.Context) {
	var req api.RegisterRequest
	if !bind(c, &req) {
		return
	}

	token, err := s.services.Users.Register(c.Request.Context(), transport.RegisterInput(&req))
	if err != nil {
		s.fail(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "username", req.Username)
	c.JSON(http.StatusCreated, api.TokenResponse{Token: token})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req api.LoginRequest
	if !bind(c, &req) {
		return
	}

	token, err := s.services.Users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

func (s *HTTPServer) updateAccount(c *gin.Context) {
	var req api.UpdateAccountRequest
	if !bind(c, &req) {
		return
	}

	if err := s.services.Users.Update(c.Request.Context(), currentUser(c), transport.UserPatch(&req)); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "User updated successfully"})
}

func (s *HTTPServer) deleteAccount(c *gin.Context) {
	if err := s.services.Users.Delete(c.Request.Context(), currentUser(c)); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "User and all associated data deleted successfully"})
}

func (s *HTTPServer) createTag(c *gin.Context) {
	var req api.CreateTagRequest
	if !bind(c, &req) {
		return
	}

	id, err := s.services.Tags.Create(c.Request.Context(), currentUser(c), req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.CreateTagResponse{Message: "Tag created successfully", TagID: id})
}

func (s *HTTPServer) listTags(c *gin.Context) {
	tags, err := s.services.Tags.List(c.Request.Context(), currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ListTagsResponse{Tags: transport.Tags(tags)})
}

func (s *HTTPServer) deleteTag(c *gin.Context) {
	var req api.DeleteTagRequest
	if !bind(c, &req) {
		return
	}

	if err := s.services.Tags.Delete(c.Request.Context(), currentUser(c), int64(req.TagID)); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Tag deleted successfully"})
}

func (s *HTTPServer) createTask(c *gin.Context) {
	var req api.CreateTaskRequest
	if !bind(c, &req) {
		return
	}

	id, err := s.services.Tasks.Create(c.Request.Context(), currentUser(c), transport.CreateTaskInput(&req))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.CreateTaskResponse{Message: "Task created successfully", TaskID: id})
}

func (s *HTTPServer) updateTask(c *gin.Context) {
	var req api.UpdateTaskRequest
	if !bind(c, &req) {
		return
	}

	err := s.services.Tasks.Update(c.Request.Context(), currentUser(c), int64(req.TaskID), transport.TaskPatch(&req))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Task updated successfully"})
}

func (s *HTTPServer) deleteTask(c *gin.Context) {
	var req api.DeleteTaskRequest
	if !bind(c, &req) {
		return
	}

	if err := s.services.Tasks.Delete(c.Request.Context(), currentUser(c), int64(req.TaskID)); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Task deleted successfully"})
}

func (s *HTTPServer) listTasks(c *gin.Context) {
	views, err := s.services.Tasks.List(c.Request.Context(), currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ListTasksResponse{Tasks: transport.Tasks(views)})
}

func (s *HTTPServer) listTasksByDate(c *gin.Context) {
	var req api.ListTasksByDateRequest
	if !bind(c, &req) {
		return
	}

	views, err := s.services.Tasks.ListByDateRange(c.Request.Context(), currentUser(c), req.StartDate, req.EndDate)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ListTasksResponse{Tasks: transport.Tasks(views)})
}

func (s *HTTPServer) filterTasks(c *gin.Context) {
	var req api.FilterTasksRequest
	if !bind(c, &req) {
		return
	}

	views, err := s.services.Tasks.Filter(c.Request.Context(), currentUser(c), transport.FilterCriteria(&req))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FilterTasksResponse{Tasks: transport.LabeledTasks(views)})
}
