package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "todoapi/internal/errors"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockAuthService)
		expectedCode int
		bodyContains string
	}{
		{
			name: "valid registration",
			body: `{"email":"test@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "test@example.com", "password123").Return("signed.jwt.token", nil)
			},
			expectedCode: http.StatusCreated,
			bodyContains: "access_token",
		},
		{
			name: "email already taken",
			body: `{"email":"taken@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "taken@example.com", "password123").
					Return("", apperrors.ErrCredentialsTaken)
			},
			expectedCode: http.StatusForbidden,
			bodyContains: "error",
		},
		{
			name:         "missing email",
			body:         `{"email":"","password":"password123"}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
			bodyContains: "error",
		},
		{
			name:         "missing password",
			body:         `{"email":"test@example.com","password":""}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
			bodyContains: "error",
		},
		{
			name:         "no body",
			body:         `{}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
			bodyContains: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			tt.setupMock(svc)
			h := NewAuthHandler(svc)

			c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", tt.body)

			assert.NoError(t, h.Register(c))
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.bodyContains)
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockAuthService)
		expectedCode int
		bodyContains string
	}{
		{
			name: "valid login",
			body: `{"email":"test@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "test@example.com", "password123").Return("signed.jwt.token", nil)
			},
			expectedCode: http.StatusOK,
			bodyContains: "access_token",
		},
		{
			name: "bad credentials",
			body: `{"email":"test@example.com","password":"nope"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "test@example.com", "nope").
					Return("", apperrors.ErrInvalidCredentials)
			},
			expectedCode: http.StatusForbidden,
			bodyContains: "INVALID_CREDENTIALS",
		},
		{
			name:         "malformed email",
			body:         `{"email":"not-an-email","password":"password123"}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
			bodyContains: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			tt.setupMock(svc)
			h := NewAuthHandler(svc)

			c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", tt.body)

			assert.NoError(t, h.Login(c))
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.bodyContains)
			svc.AssertExpectations(t)
		})
	}
}
