package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tokens      *TokenManager
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	tokens *TokenManager,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,max=254"`
	Password string  `json:"password" binding:"required,max=72"`
	FullName string  `json:"fullName" binding:"required,max=120"`
	Age      *int    `json:"age" binding:"omitempty,min=0,max=150"`
	Gender   *string `json:"gender" binding:"omitempty,max=50"`
	City     *string `json:"city" binding:"omitempty,max=100"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	User      domain.UserSummary `json:"user"`
	Profile   *domain.Profile    `json:"profile"`
	Token     string             `json:"token"`
	ExpiresAt int64              `json:"expiresAt"`
}

// Register creates a user and its empty profile.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	if email == "" || fullName == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &domain.Profile{
		UserID: user.ID,
		Age:    req.Age,
		Gender: req.Gender,
		City:   req.City,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return uc.respond(user, profile)
}

// Login checks credentials and returns the user with its profile.
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return uc.respond(user, profile)
}

// Authenticate resolves a bearer token to a user id.
func (uc *AuthUseCase) Authenticate(token string) (int, error) {
	return uc.tokens.Parse(token)
}

func (uc *AuthUseCase) respond(user *domain.User, profile *domain.Profile) (*AuthResponse, error) {
	token, expiresAt, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:      user.Summary(),
		Profile:   profile,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}
