package model

import "time"

// Article is the central content entity, belonging to one category and
// carrying any number of tags.
type Article struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Tags     []Tag    `json:"tags,omitempty" gorm:"many2many:article_tag;constraint:OnDelete:CASCADE"`
}

// ArticleTag is the Article<->Tag pivot row. It is registered as the join
// table for Article.Tags so pivot rows keep their own timestamps, and both
// foreign keys cascade on delete so no orphan rows survive a parent delete.
type ArticleTag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ArticleID uint      `json:"article_id" gorm:"not null;index"`
	TagID     uint      `json:"tag_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the pivot to the singular name used by the schema.
func (ArticleTag) TableName() string {
	return "article_tag"
}
