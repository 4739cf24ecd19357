package services

import (
	"context"
	"errors"
	"time"

	"shadowme_backend/internal/auth"
	"shadowme_backend/internal/logger"
	"shadowme_backend/internal/models"
	"shadowme_backend/internal/repositories"
	"shadowme_backend/internal/services/dto"
	"shadowme_backend/pkg/apperrors"
)

// AuthService handles registration, login and the refresh token lifecycle.
type AuthService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) *AuthService {
	return &AuthService{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	// The DTO validation already enforces these for HTTP callers; direct
	// callers get the same rules.
	if !models.ValidUserRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to check existing user", 500)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to hash password", 500)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to create user", 500)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find user", 500)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)

	return s.issueTokens(ctx, user)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// new pair is issued.
func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find refresh token", 500)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(ctx, req.RefreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.userRepo.DeleteRefreshToken(ctx, req.RefreshToken); err != nil &&
		!errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to rotate refresh token", 500)
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, req dto.LogoutRequest) error {
	err := s.userRepo.DeleteRefreshToken(ctx, req.RefreshToken)
	if err != nil && !errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to delete refresh token", 500)
	}
	// Logging out with an unknown token is not an error.
	return nil
}

// GetCurrentUser returns the user together with the profile matching their
// role, when one exists.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find user", 500)
	}

	resp := &dto.MeResponse{User: dto.ToUserDTO(user)}

	switch user.Role {
	case models.UserRoleStudent:
		profile, err := s.profileRepo.FindStudentProfileByUserID(ctx, userID)
		if err == nil {
			p := dto.ToStudentProfileResponse(profile)
			resp.StudentProfile = &p
		} else if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find student profile", 500)
		}
	case models.UserRoleBusiness:
		profile, err := s.profileRepo.FindBusinessProfileByUserID(ctx, userID)
		if err == nil {
			p := dto.ToBusinessProfileResponse(profile)
			resp.BusinessProfile = &p
		} else if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find business profile", 500)
		}
	}

	return resp, nil
}

func (s *AuthService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find user", 500)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to update user", 500)
	}

	userDTO := dto.ToUserDTO(user)
	return &userDTO, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to generate access token", 500)
	}

	refreshValue, expiresAt := auth.NewRefreshToken()
	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshValue,
		ExpiresAt: expiresAt,
	}
	if err := s.userRepo.CreateRefreshToken(ctx, refreshToken); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to store refresh token", 500)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshValue,
		User:         dto.ToUserDTO(user),
	}, nil
}
