package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusgig/campusgig/internal/db/models"
)

// ApplicationRepository provides access to application-related database operations
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository instance
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application and increments the parent job's counter in
// one transaction. A duplicate-apply race surfaces as a unique-index
// violation on (job_id, applicant_id); callers translate it into a Conflict.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).
			Where("id = ?", app.JobID).
			UpdateColumn("applications_count", gorm.Expr("applications_count + ?", 1)).
			Error
	})
}

// GetByID retrieves an application by its ID with job and applicant populated
func (r *ApplicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Applicant").
		First(&app, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// GetByJobAndApplicant retrieves the application a user submitted for a job, if any
func (r *ApplicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&app).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// ListByJob returns the applications for a job, newest first, with applicants populated
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uint, opts *models.ListOptions) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_id = ?", jobID).
		Preload("Applicant").
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.CreatedAtField + " DESC").
		Find(&apps).Error
	return apps, err
}

// ListByApplicant returns a user's applications, newest first, with jobs and posters populated
func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uint, opts *models.ListOptions) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("applicant_id = ?", applicantID).
		Preload("Job").Preload("Job.Poster").
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.CreatedAtField + " DESC").
		Find(&apps).Error
	return apps, err
}

// Accept performs the acceptance as one transaction: the job's
// open -> accepted transition is a conditional update so only one caller can
// win it, the chosen application becomes accepted, and every still-pending
// sibling becomes rejected. Applications already rejected are left unchanged.
// Returns ErrStateConflict if the job was no longer open.
func (r *ApplicationRepository) Accept(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Job{}).
			Where("id = ? AND status = ? AND accepter_id IS NULL", app.JobID, models.JobStatusOpen).
			Updates(map[string]interface{}{
				"status":      models.JobStatusAccepted,
				"accepter_id": app.ApplicantID,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update job: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrStateConflict
		}

		if err := tx.Model(&models.Application{}).
			Where("id = ?", app.ID).
			Update("status", models.ApplicationStatusAccepted).Error; err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}

		return tx.Model(&models.Application{}).
			Where("job_id = ? AND id <> ? AND status = ?",
				app.JobID, app.ID, models.ApplicationStatusPending).
			Update("status", models.ApplicationStatusRejected).Error
	})
}
