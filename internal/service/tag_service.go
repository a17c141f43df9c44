package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// TagService exposes the tags resource.
type TagService interface {
	CreateTag(ctx context.Context, name string) (*model.Tag, error)
	GetTag(ctx context.Context, id uint) (*model.Tag, error)
	ListTags(ctx context.Context) ([]model.Tag, error)
	UpdateTag(ctx context.Context, id uint, name string) (*model.Tag, error)
	DeleteTag(ctx context.Context, id uint) error
}

type tagService struct {
	repo repository.TagRepository
}

// NewTagService creates a new tag service.
func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	tag := &model.Tag{Name: name}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

func (s *tagService) GetTag(ctx context.Context, id uint) (*model.Tag, error) {
	tag, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.repo.List(ctx)
}

func (s *tagService) UpdateTag(ctx context.Context, id uint, name string) (*model.Tag, error) {
	tag, err := s.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	tag.Name = name
	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return tag, nil
}

// DeleteTag removes the tag, the repository clears its pivot rows with it.
func (s *tagService) DeleteTag(ctx context.Context, id uint) error {
	if _, err := s.GetTag(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
