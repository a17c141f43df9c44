package repository

import (
	"context"

	"gorm.io/gorm"

	"pressroom/internal/model"
)

// ArticleRepository defines article persistence operations, including
// reconciliation of the article_tag pivot.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	Count(ctx context.Context) (int64, error)
	TagIDs(ctx context.Context, articleID uint) ([]uint, error)
	ReplaceTags(ctx context.Context, articleID uint, tagIDs []uint) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	// Omit associations: the pivot is managed explicitly via ReplaceTags.
	return r.db.WithContext(ctx).Omit("Tags", "Category").Create(article).Error
}

func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Omit("Tags", "Category").Save(article).Error
}

// Delete removes the article and its pivot rows in one transaction. The
// foreign keys cascade as well, the explicit delete keeps the invariant even
// on schemas migrated without constraint support.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&model.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Article{}, id).Error
	})
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Preload("Category").Preload("Tags").First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.WithContext(ctx).Preload("Category").Preload("Tags").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Article{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TagIDs returns the tag ids currently associated with the article.
func (r *articleRepository) TagIDs(ctx context.Context, articleID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.ArticleTag{}).
		Where("article_id = ?", articleID).
		Pluck("tag_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceTags reconciles the pivot against the desired tag set: associations
// missing from storage are inserted, associations absent from the new set are
// removed, and the intersection is left untouched so surviving pivot rows
// keep their timestamps. Submitting the same set twice performs no writes.
func (r *articleRepository) ReplaceTags(ctx context.Context, articleID uint, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []uint
		if err := tx.Model(&model.ArticleTag{}).
			Where("article_id = ?", articleID).
			Pluck("tag_id", &current).Error; err != nil {
			return err
		}

		toAdd, toRemove := ReconcileTagIDs(current, tagIDs)

		if len(toRemove) > 0 {
			if err := tx.Where("article_id = ? AND tag_id IN ?", articleID, toRemove).
				Delete(&model.ArticleTag{}).Error; err != nil {
				return err
			}
		}

		for _, tagID := range toAdd {
			pivot := model.ArticleTag{ArticleID: articleID, TagID: tagID}
			if err := tx.Create(&pivot).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReconcileTagIDs computes the set difference between the stored and desired
// tag ids. Duplicates in either input collapse, order is not significant.
func ReconcileTagIDs(current, desired []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	desiredSet := make(map[uint]struct{}, len(desired))
	for _, id := range desired {
		desiredSet[id] = struct{}{}
	}

	for _, id := range desired {
		if _, held := currentSet[id]; held {
			continue
		}
		if _, seen := desiredSet[id]; seen {
			toAdd = append(toAdd, id)
			delete(desiredSet, id)
		}
	}
	for _, id := range current {
		if _, held := currentSet[id]; !held {
			continue
		}
		delete(currentSet, id)
		if _, wanted := desiredSet[id]; !wanted {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}
