package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// abortWithError writes an error body. Server errors are logged with the
// cause; the client only sees message.
func abortWithError(c *gin.Context, status int, message string, cause error) {
	if status >= http.StatusInternalServerError && cause != nil {
		logger.From(c.Request.Context()).Error(message,
			slog.String("path", c.FullPath()),
			slog.Any("error", cause),
		)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// parseUserID accepts a positive integer id.
func parseUserID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// bindingMessage describes a request binding failure. Missing required
// fields get requiredMsg; any other rule names the offending field.
func bindingMessage(err error, requiredMsg string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return requiredMsg
		}
	}
	return fmt.Sprintf("Invalid value for %s", verrs[0].Field())
}
