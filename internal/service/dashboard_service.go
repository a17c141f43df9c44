package service

import (
	"context"
	"fmt"

	"pressroom/internal/repository"
)

// DashboardSummary holds the entity counts shown on the dashboard.
type DashboardSummary struct {
	Articles   int64 `json:"articles"`
	Categories int64 `json:"categories"`
	Tags       int64 `json:"tags"`
	Users      int64 `json:"users"`
}

// DashboardService aggregates counts for the dashboard, which is also the
// destination denied requests are redirected to.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	userRepo     repository.UserRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	articleRepo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	userRepo repository.UserRepository,
) DashboardService {
	return &dashboardService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	var err error

	if summary.Articles, err = s.articleRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	if summary.Categories, err = s.categoryRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if summary.Tags, err = s.tagRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count tags: %w", err)
	}
	if summary.Users, err = s.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	return &summary, nil
}
