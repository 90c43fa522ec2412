package middleware

import (
	"log/slog"
	"strings"

	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// Authenticator resolves an access token to a user id.
type Authenticator interface {
	Authenticate(token string) (int, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// OptionalAuth records the caller's user id when a valid bearer token is
// sent. Anything else, including a malformed or expired token, proceeds
// anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			logger.From(c.Request.Context()).Debug("ignoring non-bearer authorization header")
			c.Next()
			return
		}

		userID, err := m.auth.Authenticate(token)
		if err != nil {
			logger.From(c.Request.Context()).Debug("ignoring invalid bearer token", slog.Any("error", err))
			c.Next()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id, if any.
func UserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
