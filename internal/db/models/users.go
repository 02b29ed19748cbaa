package models

import (
	"gorm.io/gorm"
)

// User represents a registered user in the marketplace
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null;unique"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Bio      string `json:"bio" gorm:"size:500"`
	// Rating is the running average, always equal to
	// TotalRatingScore / RatingsCount while RatingsCount > 0.
	Rating           float64 `json:"rating" gorm:"not null;default:0"`
	RatingsCount     int     `json:"ratings_count" gorm:"not null;default:0"`
	TotalRatingScore int64   `json:"-" gorm:"not null;default:0"`
}

// PublicUser is the subset of User fields safe to embed in other responses
type PublicUser struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Bio          string  `json:"bio,omitempty"`
	Rating       float64 `json:"rating"`
	RatingsCount int     `json:"ratings_count"`
}

// Public returns the embeddable view of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Bio:          u.Bio,
		Rating:       u.Rating,
		RatingsCount: u.RatingsCount,
	}
}
