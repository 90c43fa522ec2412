package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/matching"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// ProfilesQuery is the query string of GET /profiles.
type ProfilesQuery struct {
	AgeRange      string `form:"ageRange"`
	City          string `form:"city"`
	Religion      string `form:"religion"`
	Occupation    string `form:"occupation"`
	Compatibility string `form:"compatibility"`
	Search        string `form:"search"`
	UserID        string `form:"userId"`
}

// ListProfiles handles GET /profiles
// @Summary Browse profiles
// @Description List profiles matching the filters, scored for the viewer if given
// @Tags matches
// @Produce json
// @Param ageRange query string false "Any or min-max"
// @Param city query string false "Any or exact city"
// @Param religion query string false "Any or exact religion"
// @Param occupation query string false "Any or occupation substring"
// @Param compatibility query string false "Any or threshold like 80+"
// @Param userId query int false "Viewer user ID"
// @Success 200 {object} map[string][]domain.MatchViewModel
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles [get]
func (h *MatchHandler) ListProfiles(c *gin.Context) {
	var q ProfilesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid query", nil)
		return
	}

	var viewerID *int
	if q.UserID != "" {
		id, ok := parseUserID(q.UserID)
		if !ok {
			abortWithError(c, http.StatusBadRequest, "userId must be a positive integer", nil)
			return
		}
		viewerID = &id
	} else if id, ok := middleware.UserID(c); ok {
		viewerID = &id
	}

	profiles, err := h.matchUseCase.ListProfiles(c.Request.Context(), viewerID, matching.Filters{
		AgeRange:      q.AgeRange,
		City:          q.City,
		Religion:      q.Religion,
		Occupation:    q.Occupation,
		Compatibility: q.Compatibility,
		Search:        q.Search,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			abortWithError(c, http.StatusBadRequest, "Valid userId is required", nil)
			return
		case errors.Is(err, domain.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, "Profile not found", nil)
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch profiles", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// RecommendMatches handles GET /matches/recommended
// @Summary Recommended matches
// @Description Top six opposite-gender matches by compatibility
// @Tags matches
// @Produce json
// @Param userId query int false "Viewer user ID, defaults to the bearer token's user"
// @Success 200 {object} map[string][]domain.MatchViewModel
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/recommended [get]
func (h *MatchHandler) RecommendMatches(c *gin.Context) {
	raw := c.Query("userId")
	viewerID, ok := parseUserID(raw)
	if raw == "" {
		viewerID, ok = middleware.UserID(c)
	}
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Valid userId is required", nil)
		return
	}

	matches, err := h.matchUseCase.RecommendMatches(c.Request.Context(), viewerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			abortWithError(c, http.StatusBadRequest, "Valid userId is required", nil)
			return
		case errors.Is(err, domain.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, "Profile not found", nil)
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch recommended matches", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
