package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pressroom/internal/cache"
	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

const articleCacheTTL = 5 * time.Minute

// ArticleInput carries the writable article fields. TagIDs is the complete
// desired tag set, reconciled against the pivot on every write.
type ArticleInput struct {
	Title      string
	Body       string
	CategoryID uint
	TagIDs     []uint
}

// ArticleService exposes the articles resource.
type ArticleService interface {
	CreateArticle(ctx context.Context, in ArticleInput) (*model.Article, error)
	GetArticle(ctx context.Context, id uint) (*model.Article, error)
	ListArticles(ctx context.Context) ([]model.Article, error)
	UpdateArticle(ctx context.Context, id uint, in ArticleInput) (*model.Article, error)
	DeleteArticle(ctx context.Context, id uint) error
}

type articleService struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	cache        *cache.Client
}

// NewArticleService creates a new article service.
func NewArticleService(
	articleRepo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	cache *cache.Client,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		cache:        cache,
	}
}

func (s *articleService) cacheKey(id uint) string {
	return fmt.Sprintf("article:%d", id)
}

// validateInput checks the referenced category and tags exist before writing.
func (s *articleService) validateInput(ctx context.Context, in ArticleInput) error {
	if _, err := s.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("check category: %w", err)
	}

	if len(in.TagIDs) == 0 {
		return nil
	}
	tags, err := s.tagRepo.FindByIDs(ctx, in.TagIDs)
	if err != nil {
		return fmt.Errorf("check tags: %w", err)
	}
	found := make(map[uint]struct{}, len(tags))
	for _, t := range tags {
		found[t.ID] = struct{}{}
	}
	for _, id := range in.TagIDs {
		if _, ok := found[id]; !ok {
			return errors.ErrTagNotFound
		}
	}
	return nil
}

func (s *articleService) CreateArticle(ctx context.Context, in ArticleInput) (*model.Article, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	article := &model.Article{
		Title:      in.Title,
		Body:       in.Body,
		CategoryID: in.CategoryID,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	if err := s.articleRepo.ReplaceTags(ctx, article.ID, in.TagIDs); err != nil {
		return nil, fmt.Errorf("attach tags: %w", err)
	}

	return s.articleRepo.FindByID(ctx, article.ID)
}

// GetArticle retrieves an article by ID with caching.
func (s *articleService) GetArticle(ctx context.Context, id uint) (*model.Article, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Article
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrArticleNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(article); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, articleCacheTTL)
	}
	return article, nil
}

func (s *articleService) ListArticles(ctx context.Context) ([]model.Article, error) {
	return s.articleRepo.List(ctx)
}

func (s *articleService) UpdateArticle(ctx context.Context, id uint, in ArticleInput) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrArticleNotFound
		}
		return nil, err
	}

	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	article.Title = in.Title
	article.Body = in.Body
	article.CategoryID = in.CategoryID
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	if err := s.articleRepo.ReplaceTags(ctx, article.ID, in.TagIDs); err != nil {
		return nil, fmt.Errorf("reconcile tags: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return s.articleRepo.FindByID(ctx, article.ID)
}

func (s *articleService) DeleteArticle(ctx context.Context, id uint) error {
	if _, err := s.articleRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrArticleNotFound
		}
		return err
	}
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
