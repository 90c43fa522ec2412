package repository

import (
	"context"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	GetCandidateByUserID(ctx context.Context, userID int) (*domain.Candidate, error)
	// ListCandidates returns every profile joined with its owner, oldest first.
	ListCandidates(ctx context.Context) ([]domain.Candidate, error)
	Update(ctx context.Context, profile *domain.Profile) error
}
