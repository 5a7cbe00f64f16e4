package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful registration",
			body: `{"email":"test@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "test@example.com", "password123").
					Return(&model.User{ID: primitive.NewObjectID(), Email: "test@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "duplicate email",
			body: `{"email":"taken@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "taken@example.com", "password123").
					Return(nil, apperrors.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "malformed email",
			body:           `{"email":"not-an-email","password":"password123"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           `{"email":"test@example.com","password":"abc"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)
			h := NewAuthHandler(mockSvc)

			c, rec := newTestContext(http.MethodPost, "/users", tt.body)
			err := h.Register(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				he, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedStatus, he.Code)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful login",
			body: `{"email":"test@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "test@example.com", "password123").Return("signed-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing password",
			body:           `{"email":"test@example.com"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "ghost@example.com", "password123").Return("", apperrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "wrong password",
			body: `{"email":"test@example.com","password":"nope-nope"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "test@example.com", "nope-nope").Return("", apperrors.ErrInvalidPassword)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)
			h := NewAuthHandler(mockSvc)

			c, rec := newTestContext(http.MethodPost, "/login", tt.body)
			err := h.Login(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)

				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "signed-token", resp.AccessToken)
			} else {
				he, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedStatus, he.Code)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}
