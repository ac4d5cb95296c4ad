package services

import (
	"errors"
	"fmt"

	"advertapp/internal/models"
	"advertapp/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user is not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// AuthService verifies credential headers against stored users.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Authenticate resolves a login/password pair to the matching user.
// An unknown login is reported as not found; a wrong password as invalid
// credentials. bcrypt comparison is constant-time.
func (s *AuthService) Authenticate(login, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
