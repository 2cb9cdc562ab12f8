package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/erikmaday/clauditorium/internal/logger"
)

const requestIDHeader = "X-Request-ID"

const requestIDContextKey = "request_id"

// RequestIDMiddleware tags each request with a short correlation token. The
// token rides the response header, the gin context and the request context,
// and is echoed in error bodies.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()[:8]
		c.Set(requestIDContextKey, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Writer.Header().Set(requestIDHeader, id)
		logger.Debug("request received", "request_id", id,
			"method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	}
}

func requestIDFrom(c *gin.Context) string {
	id, _ := c.Get(requestIDContextKey)
	s, _ := id.(string)
	return s
}
