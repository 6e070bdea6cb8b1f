package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"todoapi/internal/auth"
	apperrors "todoapi/internal/errors"
	"todoapi/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.User).ID = 1
					}).
					Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			email:    "existing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrCredentialsTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(repo, jwtService)

			token, err := svc.Register(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				// Issued token must validate and carry the new user's identity.
				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, tt.email, claims.Email)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)

	var stored *model.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.User)
			stored.ID = 1
		}).
		Return(nil)

	svc := NewAuthService(repo, auth.NewJWTService("test-secret"))
	_, err := svc.Register(context.Background(), "test@example.com", "s3cret-pass")
	assert.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcryptCost)
	assert.NoError(t, err)

	knownUser := &model.User{ID: 5, Email: "known@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "known@example.com",
			password: "correct-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "known@example.com").Return(knownUser, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "correct-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "known@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "known@example.com").Return(knownUser, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(repo, jwtService)

			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				userID, err := claims.UserID()
				assert.NoError(t, err)
				assert.Equal(t, knownUser.ID, userID)
			}
			repo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_LoginErrorDoesNotLeakCause(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcryptCost)
	assert.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindByEmail", mock.Anything, "known@example.com").
		Return(&model.User{ID: 5, Email: "known@example.com", PasswordHash: string(hash)}, nil)

	svc := NewAuthService(repo, auth.NewJWTService("test-secret"))

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "correct-password")
	_, errWrongPw := svc.Login(context.Background(), "known@example.com", "wrong-password")

	assert.Equal(t, errUnknown, errWrongPw)
}
