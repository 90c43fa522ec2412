package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetProfile handles GET /profile/:userId
// @Summary Get profile
// @Description Get a user's profile with the owning user
// @Tags profile
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]domain.Candidate
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/{userId} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := parseUserID(c.Param("userId"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "User id is required", nil)
		return
	}

	result, err := h.profileUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			abortWithError(c, http.StatusBadRequest, "User id is required", nil)
			return
		case errors.Is(err, domain.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, "Profile not found", nil)
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": result})
}

// UpdateProfile handles PUT /profile/:userId
// @Summary Update profile
// @Description Replace the profile attributes and mark the user active
// @Tags profile
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body profile.UpdateProfileRequest true "Profile data"
// @Success 200 {object} map[string]domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/{userId} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := parseUserID(c.Param("userId"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "User id is required", nil)
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingMessage(err, "invalid request body"), nil)
		return
	}

	updated, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			abortWithError(c, http.StatusBadRequest, "User id is required", nil)
			return
		case errors.Is(err, domain.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, "Profile not found", nil)
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": updated})
}
