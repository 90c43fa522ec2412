package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
	}
}

// UpdateProfileRequest replaces every optional attribute of a profile.
// An omitted field clears the stored value.
type UpdateProfileRequest struct {
	Age             *int    `json:"age" binding:"omitempty,min=0,max=150"`
	Gender          *string `json:"gender" binding:"omitempty,max=50"`
	City            *string `json:"city" binding:"omitempty,max=100"`
	About           *string `json:"about" binding:"omitempty,max=2000"`
	Religion        *string `json:"religion" binding:"omitempty,max=100"`
	Height          *string `json:"height" binding:"omitempty,max=20"`
	MaritalStatus   *string `json:"maritalStatus" binding:"omitempty,max=50"`
	MotherTongue    *string `json:"motherTongue" binding:"omitempty,max=50"`
	EatingHabits    *string `json:"eatingHabits" binding:"omitempty,max=50"`
	DrinkingSmoking *string `json:"drinkingSmoking" binding:"omitempty,max=50"`
	Education       *string `json:"education" binding:"omitempty,max=200"`
	Occupation      *string `json:"occupation" binding:"omitempty,max=200"`
	IncomeRange     *string `json:"incomeRange" binding:"omitempty,max=50"`
	FamilyDetails   *string `json:"familyDetails" binding:"omitempty,max=2000"`
	ImageURL        *string `json:"imageUrl" binding:"omitempty,url,max=2048"`
}

// GetProfile returns the profile of userID together with its owner.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID int) (*domain.Candidate, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.profileRepo.GetCandidateByUserID(ctx, userID)
}

// UpdateProfile overwrites the profile of userID. Saving always refreshes
// LastActive.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Age = req.Age
	profile.Gender = req.Gender
	profile.City = req.City
	profile.About = req.About
	profile.Religion = req.Religion
	profile.Height = req.Height
	profile.MaritalStatus = req.MaritalStatus
	profile.MotherTongue = req.MotherTongue
	profile.EatingHabits = req.EatingHabits
	profile.DrinkingSmoking = req.DrinkingSmoking
	profile.Education = req.Education
	profile.Occupation = req.Occupation
	profile.IncomeRange = req.IncomeRange
	profile.FamilyDetails = req.FamilyDetails
	profile.ImageURL = req.ImageURL

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}
