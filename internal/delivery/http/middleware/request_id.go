package middleware

import (
	"log/slog"

	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id (reusing a client supplied one)
// and puts a logger carrying it into the request context.
func RequestID(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Set("request_id", id)

		ctx := logger.Into(c.Request.Context(), base.With(slog.String("request_id", id)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
