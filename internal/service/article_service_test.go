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

// MockArticleRepository is a mock implementation of repository.ArticleRepository.
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) List(ctx context.Context) ([]model.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockArticleRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) TagIDs(ctx context.Context, articleID uint) ([]uint, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockArticleRepository) ReplaceTags(ctx context.Context, articleID uint, tagIDs []uint) error {
	args := m.Called(ctx, articleID, tagIDs)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) ArticleCount(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTagRepository is a mock implementation of repository.TagRepository.
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Update(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uint) (*model.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newArticleServiceForTest(articles *MockArticleRepository, categories *MockCategoryRepository, tags *MockTagRepository) ArticleService {
	// nil cache degrades to a cache that always misses
	return NewArticleService(articles, categories, tags, nil)
}

func TestArticleService_CreateArticle(t *testing.T) {
	input := ArticleInput{
		Title:      "Go at the newsdesk",
		Body:       "body",
		CategoryID: 3,
		TagIDs:     []uint{1, 2},
	}

	t.Run("creates and attaches tags", func(t *testing.T) {
		articles := new(MockArticleRepository)
		categories := new(MockCategoryRepository)
		tags := new(MockTagRepository)

		categories.On("FindByID", mock.Anything, uint(3)).Return(&model.Category{ID: 3, Name: "Tech"}, nil)
		tags.On("FindByIDs", mock.Anything, []uint{1, 2}).Return([]model.Tag{{ID: 1}, {ID: 2}}, nil)
		articles.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Article).ID = 10
		}).Return(nil)
		articles.On("ReplaceTags", mock.Anything, uint(10), []uint{1, 2}).Return(nil)
		articles.On("FindByID", mock.Anything, uint(10)).Return(&model.Article{ID: 10, Title: input.Title}, nil)

		svc := newArticleServiceForTest(articles, categories, tags)
		created, err := svc.CreateArticle(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, uint(10), created.ID)
		articles.AssertExpectations(t)
	})

	t.Run("unknown category", func(t *testing.T) {
		articles := new(MockArticleRepository)
		categories := new(MockCategoryRepository)
		tags := new(MockTagRepository)

		categories.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		svc := newArticleServiceForTest(articles, categories, tags)
		_, err := svc.CreateArticle(context.Background(), input)

		assert.ErrorIs(t, err, errors.ErrCategoryNotFound)
		articles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown tag", func(t *testing.T) {
		articles := new(MockArticleRepository)
		categories := new(MockCategoryRepository)
		tags := new(MockTagRepository)

		categories.On("FindByID", mock.Anything, uint(3)).Return(&model.Category{ID: 3}, nil)
		tags.On("FindByIDs", mock.Anything, []uint{1, 2}).Return([]model.Tag{{ID: 1}}, nil)

		svc := newArticleServiceForTest(articles, categories, tags)
		_, err := svc.CreateArticle(context.Background(), input)

		assert.ErrorIs(t, err, errors.ErrTagNotFound)
		articles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestArticleService_UpdateArticle_ReconcilesTagSet(t *testing.T) {
	articles := new(MockArticleRepository)
	categories := new(MockCategoryRepository)
	tags := new(MockTagRepository)

	existing := &model.Article{ID: 10, Title: "old", Body: "old", CategoryID: 3}
	articles.On("FindByID", mock.Anything, uint(10)).Return(existing, nil)
	categories.On("FindByID", mock.Anything, uint(3)).Return(&model.Category{ID: 3}, nil)
	tags.On("FindByIDs", mock.Anything, []uint{2, 3, 4}).Return([]model.Tag{{ID: 2}, {ID: 3}, {ID: 4}}, nil)
	articles.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)
	articles.On("ReplaceTags", mock.Anything, uint(10), []uint{2, 3, 4}).Return(nil)

	svc := newArticleServiceForTest(articles, categories, tags)
	updated, err := svc.UpdateArticle(context.Background(), 10, ArticleInput{
		Title:      "new",
		Body:       "new body",
		CategoryID: 3,
		TagIDs:     []uint{2, 3, 4},
	})

	assert.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	articles.AssertExpectations(t)
}

func TestArticleService_UpdateArticle_NotFound(t *testing.T) {
	articles := new(MockArticleRepository)
	articles.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := newArticleServiceForTest(articles, new(MockCategoryRepository), new(MockTagRepository))
	_, err := svc.UpdateArticle(context.Background(), 99, ArticleInput{CategoryID: 1})

	assert.ErrorIs(t, err, errors.ErrArticleNotFound)
}

func TestArticleService_DeleteArticle(t *testing.T) {
	articles := new(MockArticleRepository)
	articles.On("FindByID", mock.Anything, uint(10)).Return(&model.Article{ID: 10}, nil)
	articles.On("Delete", mock.Anything, uint(10)).Return(nil)

	svc := newArticleServiceForTest(articles, new(MockCategoryRepository), new(MockTagRepository))
	err := svc.DeleteArticle(context.Background(), 10)

	assert.NoError(t, err)
	articles.AssertExpectations(t)
}
