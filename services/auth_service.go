package services

import (
	"context"
	"errors"
	"time"

	"affiliate-hub/models"
	"affiliate-hub/repositories"
	"affiliate-hub/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	users     *repositories.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users *repositories.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

// Login verifies the credentials and issues a signed token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}
