package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// CategoryService exposes the categories resource.
type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	GetCategory(ctx context.Context, id uint) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id uint, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, name string) (*model.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// DeleteCategory refuses to delete a category that still has articles, the
// article side of the relation is restrict, not cascade.
func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	inUse, err := s.repo.ArticleCount(ctx, id)
	if err != nil {
		return fmt.Errorf("count category articles: %w", err)
	}
	if inUse > 0 {
		return errors.ErrCategoryInUse
	}
	return s.repo.Delete(ctx, id)
}
