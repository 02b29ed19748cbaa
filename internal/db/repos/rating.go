package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusgig/campusgig/internal/db/models"
)

// RatingRepository provides access to rating-related database operations
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository instance
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// CreateForJob records a rating in one transaction: the job's
// completed -> rated transition is a conditional update so only one rating
// can ever be attached, the rating row is inserted, and the rated user's
// running total, count, and average are recomputed from the stored sum.
// Returns ErrStateConflict if the job was not in the completed state.
func (r *RatingRepository) CreateForJob(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Job{}).
			Where("id = ? AND status = ?", rating.JobID, models.JobStatusCompleted).
			Update("status", models.JobStatusRated)
		if res.Error != nil {
			return fmt.Errorf("failed to update job: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrStateConflict
		}

		if err := tx.Create(rating).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, rating.RatedUserID).Error; err != nil {
			return fmt.Errorf("failed to get rated user: %w", err)
		}
		total, count, average := models.AggregateRating(user.TotalRatingScore, user.RatingsCount, rating.Rating)
		return tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]interface{}{
				"total_rating_score": total,
				"ratings_count":      count,
				"rating":             average,
			}).Error
	})
}

// GetByID retrieves a rating by its ID with the rated user populated
func (r *RatingRepository) GetByID(ctx context.Context, id uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Preload("RatedUser").
		First(&rating, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return &rating, nil
}

// ListByRatedUser returns the ratings received by a user, newest first,
// with rater and job populated
func (r *RatingRepository) ListByRatedUser(ctx context.Context, ratedUserID uint, opts *models.ListOptions) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("rated_user_id = ?", ratedUserID).
		Preload("Rater").Preload("Job").
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.CreatedAtField + " DESC").
		Find(&ratings).Error
	return ratings, err
}
