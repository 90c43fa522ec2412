package message

import (
	"context"
	"fmt"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
}

func NewMessageUseCase(messageRepo repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{messageRepo: messageRepo}
}

func (uc *MessageUseCase) ListMessages(ctx context.Context) ([]domain.Message, error) {
	messages, err := uc.messageRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}
