package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/config"
	"github.com/gdugdh24/matrimony-backend/internal/delivery/http"
	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/database"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/server"
	"github.com/gdugdh24/matrimony-backend/internal/matching"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
	"github.com/gdugdh24/matrimony-backend/internal/repository/cache"
	"github.com/gdugdh24/matrimony-backend/internal/repository/postgres"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/auth"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/match"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/message"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/profile"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("database migrated")
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	var profileRepo repository.ProfileRepository = postgres.NewProfileRepository(db)

	if cfg.Redis.Enabled() {
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			// The cache is optional; serve straight from postgres.
			logger.Warn("redis unavailable, candidate cache disabled", slog.Any("error", err))
		} else {
			c.Redis = redisClient
			profileRepo = cache.NewProfileRepository(profileRepo, redisClient, cfg.Redis.CacheTTL)
		}
	}

	// Initialize use cases
	tokens := auth.NewTokenManager(cfg.JWT.AccessSecret, time.Duration(cfg.JWT.AccessExpiryMin)*time.Minute)
	authUseCase := auth.NewAuthUseCase(userRepo, profileRepo, tokens)
	profileUseCase := profile.NewProfileUseCase(profileRepo)
	matchUseCase := match.NewMatchUseCase(
		profileRepo,
		matching.NewEngine(matching.NewScorer(nil), matching.NewClassifier(nil)),
	)
	messageUseCase := message.NewMessageUseCase(messageRepo)

	router := http.NewRouter(
		handler.NewAuthHandler(authUseCase),
		handler.NewProfileHandler(profileUseCase),
		handler.NewMatchHandler(matchUseCase),
		handler.NewMessageHandler(messageUseCase),
		middleware.NewAuthMiddleware(authUseCase),
		logger,
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)
	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("failed to close redis", slog.Any("error", err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
