package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pressroom/internal/auth"
	"pressroom/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
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

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
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

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		nameField     string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:      "successful registration",
			email:     "test@example.com",
			password:  "password123",
			nameField: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "user already exists",
			email:     "existing@example.com",
			password:  "password123",
			nameField: "Existing User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewAuthService(repo, auth.NewJWTService("test-secret"), new(MockTokenStore))
			user, err := svc.Register(context.Background(), tt.email, tt.password, tt.nameField)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, model.RoleUser, user.Role, "self-registration always yields the user role")
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	assert.NoError(t, err)
	stored := &model.User{
		ID:           1,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}

	t.Run("successful login", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)

		tokenStore := new(MockTokenStore)
		tokenStore.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"), uint(1), "test@example.com", auth.RefreshTokenExpiry).Return(nil)

		svc := NewAuthService(repo, auth.NewJWTService("test-secret"), tokenStore)
		accessToken, refreshToken, user, err := svc.Login(context.Background(), "test@example.com", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, stored.Email, user.Email)
		tokenStore.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)

		svc := NewAuthService(repo, auth.NewJWTService("test-secret"), new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "test@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(repo, auth.NewJWTService("test-secret"), new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	stored := &model.User{ID: 1, Email: "test@example.com", Role: model.RoleUser}

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(stored)
	assert.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)

		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "test@example.com", nil)

		svc := NewAuthService(repo, jwtService, tokenStore)
		accessToken, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("refresh token missing from store", func(t *testing.T) {
		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", ErrInvalidRefreshToken)

		svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
		_, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-token")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	stored := &model.User{ID: 1, Email: "test@example.com", Role: model.RoleUser}

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(stored)
	assert.NoError(t, err)
	accessToken, err := jwtService.GenerateAccessToken(stored)
	assert.NoError(t, err)

	tokenStore := new(MockTokenStore)
	tokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)
	tokenStore.On("BlacklistAccessToken", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(nil)

	svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
	err = svc.Logout(context.Background(), refreshToken, accessToken)

	assert.NoError(t, err)
	tokenStore.AssertExpectations(t)
}
