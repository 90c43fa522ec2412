package match

import (
	"context"
	"fmt"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/matching"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

// MatchUseCase loads the candidate pool and hands it to the matching engine.
type MatchUseCase struct {
	profileRepo repository.ProfileRepository
	engine      *matching.Engine
}

func NewMatchUseCase(profileRepo repository.ProfileRepository, engine *matching.Engine) *MatchUseCase {
	return &MatchUseCase{
		profileRepo: profileRepo,
		engine:      engine,
	}
}

// ListProfiles returns filtered matches in storage order. viewerID is
// optional; when set it must refer to an existing profile.
func (uc *MatchUseCase) ListProfiles(ctx context.Context, viewerID *int, filters matching.Filters) ([]domain.MatchViewModel, error) {
	if viewerID != nil && *viewerID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	pool, err := uc.profileRepo.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return uc.engine.ListProfiles(pool, viewerID, matching.ParseFilters(filters))
}

// RecommendMatches returns the best-scored opposite-gender matches for viewerID.
func (uc *MatchUseCase) RecommendMatches(ctx context.Context, viewerID int) ([]domain.MatchViewModel, error) {
	if viewerID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	pool, err := uc.profileRepo.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return uc.engine.RecommendMatches(pool, viewerID)
}
