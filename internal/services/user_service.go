package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskmatch/internal/models"
	"taskmatch/internal/repositories"
	"taskmatch/utils"

	"github.com/google/uuid"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	ProviderRepo *repositories.ProviderRepository
	Tokens       *utils.Manager
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	if user.Email == "" && user.Phone == "" {
		return models.User{}, models.ErrValidation
	}
	if user.Password == "" {
		return models.User{}, models.ErrValidation
	}
	if user.Role == "" {
		user.Role = "consumer"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hash)

	return s.UserRepo.CreateUser(ctx, user)
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserForSignIn(ctx, req.Email, req.Phone)
	if err != nil {
		return models.SignInResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}
	user.Password = ""

	accessToken, err := s.Tokens.NewJWT(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}
	refreshToken, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, err
	}

	err = s.UserRepo.CreateSession(ctx, models.Session{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		Role:         user.Role,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	})
	if err != nil {
		return models.SignInResponse{}, err
	}

	return models.SignInResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetUserInfo returns the user merged with its provider record when one
// exists.
func (s *UserService) GetUserInfo(ctx context.Context, userID int) (models.UserInfo, error) {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.UserInfo{}, err
	}

	info := models.UserInfo{User: user}
	provider, err := s.ProviderRepo.GetProviderByUserID(ctx, userID)
	if err == nil {
		info.Provider = &provider
	} else if !errors.Is(err, models.ErrProviderNotFound) {
		return models.UserInfo{}, err
	}
	return info, nil
}

// UploadAvatar stores the image in S3 and records its URL on the user. The
// replaced avatar's object is deleted best-effort so it does not orphan in
// the bucket.
func (s *UserService) UploadAvatar(ctx context.Context, userID int, file []byte) (string, error) {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%d_%s.jpg", userID, uuid.NewString())
	url, err := utils.UploadFileToS3(file, fileName, "avatars")
	if err != nil {
		return "", err
	}
	if err := s.UserRepo.UpdateAvatar(ctx, userID, url); err != nil {
		return "", err
	}

	if user.AvatarPath != nil {
		if key := utils.S3KeyFromURL(*user.AvatarPath); key != "" {
			if err := utils.DeleteFileFromS3(key); err != nil {
				log.Printf("delete replaced avatar for user %d: %v", userID, err)
			}
		}
	}
	return url, nil
}

func (s *UserService) RegisterFCMToken(ctx context.Context, userID int, token string) error {
	if userID == 0 || token == "" {
		return models.ErrValidation
	}
	return s.UserRepo.SaveFCMToken(ctx, userID, token)
}
