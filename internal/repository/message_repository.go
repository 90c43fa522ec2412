package repository

import (
	"context"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

type MessageRepository interface {
	// List returns all messages, newest first.
	List(ctx context.Context) ([]domain.Message, error)
}
