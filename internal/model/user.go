package model

import "time"

// User represents an authenticated user in the system.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role          Role      `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	RememberToken string    `json:"-" gorm:"size:100"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasRole reports whether the user's role membership includes required.
// The schema holds a single role column, so membership is equality.
func (u *User) HasRole(required Role) bool {
	return u.Role == required
}
