package model

import "time"

// Category groups articles. Deleting a category with articles attached is
// rejected at the storage layer.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:CategoryID"`
}
