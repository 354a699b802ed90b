package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/server/transport"
)

const contextUserKey = "userID"

func (s *HTTPServer) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := s.services.Tokens.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			switch transport.Classify(err) {
			case transport.KindMissingToken:
				c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: "Authorization token is required"})
			case transport.KindUnauthenticated:
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid or expired token"})
			default:
				s.fail(c, err)
				c.Abort()
			}
			return
		}

		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// currentUser returns the id stored by authenticate.
func currentUser(c *gin.Context) int64 {
	return c.GetInt64(contextUserKey)
}

func (s *HTTPServer) timeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.requestTimeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), s.requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

var kindStatus = map[transport.Kind]int{
	transport.KindInvalid:         http.StatusBadRequest,
	transport.KindMissingToken:    http.StatusBadRequest,
	transport.KindConflict:        http.StatusBadRequest,
	transport.KindUnauthenticated: http.StatusUnauthorized,
	transport.KindNotFound:        http.StatusNotFound,
	transport.KindInternal:        http.StatusInternalServerError,
}

// fail writes err as {"error": ...}. Internal errors are logged and hidden.
func (s *HTTPServer) fail(c *gin.Context, err error) {
	kind := transport.Classify(err)
	if kind == transport.KindInternal {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(kindStatus[kind], api.ErrorResponse{Error: transport.Message(err)})
}

// bind decodes the JSON body into req, answering 400 on malformed input.
// An empty body leaves req zeroed.
func bind(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "malformed request body"})
		return false
	}
	return true
}
