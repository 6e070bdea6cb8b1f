package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"todoapi/internal/auth"
	apperrors "todoapi/internal/errors"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

const bcryptCost = 10

// AuthService turns submitted credentials into either a new account or a
// signed access token.
type AuthService interface {
	Register(ctx context.Context, email, password string) (accessToken string, err error)
	Login(ctx context.Context, email, password string) (accessToken string, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register hashes the password and creates the user in a single insert. The
// unique email index decides conflicts, so a losing concurrent register
// leaves no partial state behind.
func (s *authService) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperrors.ErrCredentialsTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	return s.jwtService.SignToken(user.ID, user.Email)
}

// Login verifies the submitted password against the stored hash. Unknown
// email and wrong password return the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.jwtService.SignToken(user.ID, user.Email)
}
