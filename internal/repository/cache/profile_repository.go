package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/logger"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	candidatesKeyPrefix = "matrimony:candidates:v1:"
	generationKey       = "matrimony:candidates:gen"
)

// profileRepository keeps the candidate pool in redis for a short TTL.
// Pools are stored under the generation current when the load started;
// writes bump the generation, so a load racing a write can only fill a key
// nobody reads any more. Redis failures are logged and the wrapped
// repository is used instead.
type profileRepository struct {
	repository.ProfileRepository
	client *redis.Client
	ttl    time.Duration
}

func NewProfileRepository(next repository.ProfileRepository, client *redis.Client, ttl time.Duration) repository.ProfileRepository {
	return &profileRepository{
		ProfileRepository: next,
		client:            client,
		ttl:               ttl,
	}
}

func (r *profileRepository) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	log := logger.From(ctx)

	gen, err := r.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Warn("candidate cache unavailable", slog.Any("error", err))
		return r.ProfileRepository.ListCandidates(ctx)
	}
	key := candidatesKey(gen)

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var candidates []domain.Candidate
		if err := json.Unmarshal(raw, &candidates); err == nil {
			return candidates, nil
		}
		log.Warn("discarding undecodable candidate cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		log.Warn("candidate cache read failed", slog.Any("error", err))
	}

	candidates, err := r.ProfileRepository.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(candidates); err == nil {
		if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
			log.Warn("candidate cache write failed", slog.Any("error", err))
		}
	}
	return candidates, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if err := r.ProfileRepository.Create(ctx, profile); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if err := r.ProfileRepository.Update(ctx, profile); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// invalidate moves readers to a fresh generation. Entries of older
// generations are left to expire.
func (r *profileRepository) invalidate(ctx context.Context) {
	if err := r.client.Incr(ctx, generationKey).Err(); err != nil {
		logger.From(ctx).Warn("candidate cache invalidation failed", slog.Any("error", err))
	}
}

func candidatesKey(gen int64) string {
	return candidatesKeyPrefix + strconv.FormatInt(gen, 10)
}
