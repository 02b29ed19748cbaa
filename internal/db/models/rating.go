package models

import (
	"time"

	"gorm.io/gorm"
)

// Rating score bounds
const (
	// MinRating is the lowest score a rater can give
	MinRating = 1
	// MaxRating is the highest score a rater can give
	MaxRating = 5
)

// AggregateRating folds a new score into a user's running rating total.
// The running sum and count are persisted alongside the average so the
// average is always exactly reconstructible instead of drifting across
// incremental float re-averaging.
func AggregateRating(totalScore int64, count int, rating int) (newTotal int64, newCount int, average float64) {
	newTotal = totalScore + int64(rating)
	newCount = count + 1
	average = float64(newTotal) / float64(newCount)
	return newTotal, newCount, average
}

// Rating is a terminal, append-only record tied 1:1 to a completed job.
// The (job_id, rater_id) pair is unique: one rating per job per rater.
type Rating struct {
	gorm.Model
	JobID       uint      `json:"job_id" gorm:"not null;uniqueIndex:idx_ratings_job_rater"`
	Job         *Job      `json:"job,omitempty" gorm:"foreignKey:JobID"`
	RaterID     uint      `json:"rater_id" gorm:"not null;uniqueIndex:idx_ratings_job_rater"`
	Rater       *User     `json:"rater,omitempty" gorm:"foreignKey:RaterID"`
	RatedUserID uint      `json:"rated_user_id" gorm:"not null;index"`
	RatedUser   *User     `json:"rated_user,omitempty" gorm:"foreignKey:RatedUserID"`
	Rating      int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment     string    `json:"comment" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
