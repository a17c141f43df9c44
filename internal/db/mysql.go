package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"pressroom/internal/model"
)

// NewMySQL returns a connected GORM DB instance with the article_tag pivot
// registered as the join table for Article.Tags.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := db.SetupJoinTable(&model.Article{}, "Tags", &model.ArticleTag{}); err != nil {
		return nil, fmt.Errorf("setup article_tag join table: %w", err)
	}
	return db, nil
}
