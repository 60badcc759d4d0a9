// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Hoot categories. A hoot must belong to exactly one.
const (
	CategoryNews       = "News"
	CategorySports     = "Sports"
	CategoryGames      = "Games"
	CategoryMovies     = "Movies"
	CategoryMusic      = "Music"
	CategoryTelevision = "Television"
)

// Categories lists every valid hoot category.
var Categories = []string{
	CategoryNews,
	CategorySports,
	CategoryGames,
	CategoryMovies,
	CategoryMusic,
	CategoryTelevision,
}

// ValidCategory reports whether c is a known hoot category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Hoot represents a user-authored post in the Hootline application.
// AuthorID is assigned by the server at creation and is never writable
// through the API.
type Hoot struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Category  string         `gorm:"not null;index" json:"category"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"author"`
	Comments  []Comment      `gorm:"foreignKey:HootID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
