package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"pressroom/internal/errors"
	"pressroom/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	t.Run("creates admin with parsed role", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "samir@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(repo)
		user, err := svc.CreateUser(context.Background(), UserInput{
			Name:     "Admin User",
			Email:    "samir@example.com",
			Password: "secret123",
			Role:     "admin",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown role label", func(t *testing.T) {
		repo := new(MockUserRepository)

		svc := NewUserService(repo)
		_, err := svc.CreateUser(context.Background(), UserInput{
			Name:     "X",
			Email:    "x@example.com",
			Password: "secret123",
			Role:     "superuser",
		})

		assert.ErrorIs(t, err, errors.ErrUnknownRole)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)

		svc := NewUserService(repo)
		_, err := svc.CreateUser(context.Background(), UserInput{
			Name:     "X",
			Email:    "taken@example.com",
			Password: "secret123",
			Role:     "user",
		})

		assert.ErrorIs(t, err, errors.ErrEmailTaken)
	})
}

func TestUserService_UpdateUser_KeepsPasswordWhenBlank(t *testing.T) {
	stored := &model.User{
		ID:           5,
		Name:         "Old Name",
		Email:        "old@example.com",
		PasswordHash: "existing-hash",
		Role:         model.RoleUser,
	}

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
	repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewUserService(repo)
	updated, err := svc.UpdateUser(context.Background(), 5, UserInput{
		Name:  "New Name",
		Email: "new@example.com",
		Role:  "admin",
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.Equal(t, "existing-hash", updated.PasswordHash)
	repo.AssertExpectations(t)
}
