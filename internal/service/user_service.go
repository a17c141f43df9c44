package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// UserInput carries the fields an admin may set on a user. Password is
// optional on update, Role must parse into the enumeration.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserService exposes the users resource.
type UserService interface {
	CreateUser(ctx context.Context, in UserInput) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, in UserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over the repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, in UserInput) (*model.User, error) {
	role, err := model.ParseRole(in.Role)
	if err != nil {
		return nil, errors.ErrUnknownRole
	}

	if existing, err := s.repo.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id uint, in UserInput) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	role, err := model.ParseRole(in.Role)
	if err != nil {
		return nil, errors.ErrUnknownRole
	}

	if in.Email != user.Email {
		if existing, err := s.repo.FindByEmail(ctx, in.Email); err == nil && existing != nil {
			return nil, errors.ErrEmailTaken
		} else if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check email: %w", err)
		}
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Role = role
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
