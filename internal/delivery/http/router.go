package http

import (
	"log/slog"

	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	matchHandler   *handler.MatchHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
	logger         *slog.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	matchHandler *handler.MatchHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *slog.Logger,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		matchHandler:   matchHandler,
		messageHandler: messageHandler,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(r.logger),
		middleware.Logging(),
	)

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
	}

	public := api.Group("")
	public.Use(r.authMiddleware.OptionalAuth())
	{
		public.GET("/profile/:userId", r.profileHandler.GetProfile)
		public.PUT("/profile/:userId", r.profileHandler.UpdateProfile)

		public.GET("/profiles", r.matchHandler.ListProfiles)
		public.GET("/matches/recommended", r.matchHandler.RecommendMatches)
		public.GET("/messages", r.messageHandler.ListMessages)
	}

	return router
}
