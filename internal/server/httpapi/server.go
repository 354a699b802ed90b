// Package httpapi serves the TaskHub services as a JSON HTTP API under /api.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskhub/taskhub/internal/logging"
	"github.com/taskhub/taskhub/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address        string
	services       services.Set
	logger         logging.Logger
	allowedOrigins []string
	requestTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, set services.Set, allowedOrigins []string, requestTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:        a,
		logger:         l.With("module", "http_server"),
		services:       set,
		allowedOrigins: allowedOrigins,
		requestTimeout: requestTimeout,
	}
}

// Router builds the gin engine with every route registered.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.timeout())

	if len(s.allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	api := r.Group("/api")
	{
		api.GET("/health/", s.health)

		users := api.Group("/users")
		{
			users.POST("/register/", s.register)
			users.POST("/login/", s.login)
			users.POST("/update/", s.authenticate(), s.updateAccount)
			users.DELETE("/delete/", s.authenticate(), s.deleteAccount)
		}

		tags := api.Group("/tags", s.authenticate())
		{
			tags.POST("/create/", s.createTag)
			tags.GET("/get/", s.listTags)
			tags.DELETE("/delete/", s.deleteTag)
		}

		tasks := api.Group("/tasks", s.authenticate())
		{
			tasks.POST("/create/", s.createTask)
			tasks.POST("/update/", s.updateTask)
			tasks.DELETE("/delete/", s.deleteTask)
			tasks.GET("/get/", s.listTasks)
			tasks.POST("/get-by-date/", s.listTasksByDate)
			tasks.POST("/filter/", s.filterTasks)
		}
	}

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(context.Background(), "HTTP shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
