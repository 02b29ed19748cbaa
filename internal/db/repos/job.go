package repos

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/campusgig/campusgig/internal/db/models"
)

// JobRepository provides access to job-related database operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job in the database
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID retrieves a job by its ID with poster and accepter populated
func (r *JobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Poster").Preload("Accepter").
		First(&job, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// ListOpen returns jobs still accepting applications, newest first
func (r *JobRepository) ListOpen(ctx context.Context, opts *models.ListOptions) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("status = ?", models.JobStatusOpen).
		Preload("Poster").
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.CreatedAtField + " DESC").
		Find(&jobs).Error
	return jobs, err
}

// ListByPoster returns jobs created by the given user, newest first
func (r *JobRepository) ListByPoster(ctx context.Context, posterID uint, opts *models.ListOptions) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("poster_id = ?", posterID).
		Preload("Accepter").
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.CreatedAtField + " DESC").
		Find(&jobs).Error
	return jobs, err
}

// ListByAccepter returns jobs the given user was accepted for, newest first
func (r *JobRepository) ListByAccepter(ctx context.Context, accepterID uint, opts *models.ListOptions) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("accepter_id = ?", accepterID).
		Preload("Poster").
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.CreatedAtField + " DESC").
		Find(&jobs).Error
	return jobs, err
}

// ListCompletedByAccepter returns the given user's completed jobs, newest first
func (r *JobRepository) ListCompletedByAccepter(ctx context.Context, accepterID uint, opts *models.ListOptions) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("accepter_id = ? AND status IN ?", accepterID,
			[]models.JobStatus{models.JobStatusCompleted, models.JobStatusRated}).
		Preload("Poster").
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.CreatedAtField + " DESC").
		Find(&jobs).Error
	return jobs, err
}

// ListToRate returns the poster's completed-but-unrated jobs, newest first
func (r *JobRepository) ListToRate(ctx context.Context, posterID uint, opts *models.ListOptions) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("poster_id = ? AND status = ?", posterID, models.JobStatusCompleted).
		Preload("Accepter").
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.CreatedAtField + " DESC").
		Find(&jobs).Error
	return jobs, err
}

// MarkCompleted performs the accepted -> completed transition as a single
// conditional update. Returns ErrStateConflict if another caller changed the
// job state first.
func (r *JobRepository) MarkCompleted(ctx context.Context, jobID uint, completedAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, models.JobStatusAccepted).
		Updates(map[string]interface{}{
			"status":       models.JobStatusCompleted,
			"completed_at": completedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to complete job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStateConflict
	}
	return nil
}
