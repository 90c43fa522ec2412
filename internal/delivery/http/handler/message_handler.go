package handler

import (
	"net/http"

	"github.com/gdugdh24/matrimony-backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
}

func NewMessageHandler(messageUseCase *message.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

// ListMessages handles GET /messages
// @Summary List messages
// @Tags messages
// @Produce json
// @Success 200 {object} map[string][]domain.Message
// @Failure 500 {object} ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.messageUseCase.ListMessages(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch messages", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
