package repository

import (
	"context"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gdugdh24/matrimony-backend/internal/repository UserRepository,ProfileRepository,MessageRepository

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
