package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "spudhouse/internal/errors"
	"spudhouse/internal/model"
	"spudhouse/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
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

func (m *MockUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error) {
	args := m.Called(ctx, email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsOtherWithEmailOrUsername(ctx context.Context, id uint, email, username string) (bool, error) {
	args := m.Called(ctx, id, email, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTransaction runs the callback against the mock itself, so expectations
// set on the mock cover in-transaction calls too.
func (m *MockUserRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.UserRepository) error) error {
	return fn(ctx, m)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "spudfan",
			email:    "spud@example.com",
			password: "Potato123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmailOrUsername", mock.Anything, "spud@example.com", "spudfan").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "password too short",
			username:      "spudfan",
			email:         "spud@example.com",
			password:      "Pot1",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrWeakPassword,
		},
		{
			name:          "password missing uppercase",
			username:      "spudfan",
			email:         "spud@example.com",
			password:      "potato12345",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrWeakPassword,
		},
		{
			name:          "password missing digit",
			username:      "spudfan",
			email:         "spud@example.com",
			password:      "PotatoPotato",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrWeakPassword,
		},
		{
			name:     "user already exists",
			username: "spudfan",
			email:    "taken@example.com",
			password: "Potato123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmailOrUsername", mock.Anything, "taken@example.com", "spudfan").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo)
			user, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.username, user.Username)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Potato123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "spud@example.com",
			password: "Potato123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "spud@example.com").Return(&model.User{
					ID:           1,
					Username:     "spudfan",
					Email:        "spud@example.com",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "Potato123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "spud@example.com",
			password: "WrongPass1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "spud@example.com").Return(&model.User{
					ID:           1,
					Email:        "spud@example.com",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo)
			user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				// Unknown email and wrong password must be indistinguishable.
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Current123"), 10)

	tests := []struct {
		name          string
		current       string
		newPassword   string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:        "successful change",
			current:     "Current123",
			newPassword: "Fresher456",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, PasswordHash: string(hashed)}, nil)
				m.On("UpdatePassword", mock.Anything, uint(1), mock.AnythingOfType("string")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:        "wrong current password",
			current:     "Nope12345",
			newPassword: "Fresher456",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, PasswordHash: string(hashed)}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:        "weak new password",
			current:     "Current123",
			newPassword: "short",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, PasswordHash: string(hashed)}, nil)
			},
			expectedError: apperrors.ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo)
			err := svc.ChangePassword(context.Background(), 1, tt.current, tt.newPassword)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
