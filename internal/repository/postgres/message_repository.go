package postgres

import (
	"context"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) List(ctx context.Context) ([]domain.Message, error) {
	messages := []domain.Message{}
	query := `SELECT id, text, created_at FROM messages ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &messages, query)
	return messages, err
}
