package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusgig/campusgig/internal/apperr"
	"github.com/campusgig/campusgig/internal/db/models"
	"github.com/campusgig/campusgig/internal/db/repos"
)

// Job provides business logic for job posting and lifecycle operations
type Job struct {
	repo     *repos.JobRepository
	notifier *Notification
}

// NewJobService creates a new job service instance
func NewJobService(repo *repos.JobRepository, notifier *Notification) *Job {
	return &Job{repo: repo, notifier: notifier}
}

// Create posts a new job for the given poster
func (s *Job) Create(ctx context.Context, posterID uint, title, description, payment string) (*models.Job, error) {
	job := &models.Job{
		Title:       title,
		Description: description,
		Payment:     payment,
		PosterID:    posterID,
		Status:      models.JobStatusOpen,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, job.ID)
}

// GetByID retrieves a job by its ID
func (s *Job) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("job not found")
	}
	return job, nil
}

// ListOpen returns jobs still accepting applications
func (s *Job) ListOpen(ctx context.Context, opts *models.ListOptions) ([]models.Job, error) {
	return s.repo.ListOpen(ctx, opts)
}

// ListPosted returns the caller's posted jobs
func (s *Job) ListPosted(ctx context.Context, posterID uint, opts *models.ListOptions) ([]models.Job, error) {
	return s.repo.ListByPoster(ctx, posterID, opts)
}

// ListAccepted returns the jobs the caller was accepted for
func (s *Job) ListAccepted(ctx context.Context, accepterID uint, opts *models.ListOptions) ([]models.Job, error) {
	return s.repo.ListByAccepter(ctx, accepterID, opts)
}

// ListCompleted returns the caller's completed jobs as accepter
func (s *Job) ListCompleted(ctx context.Context, accepterID uint, opts *models.ListOptions) ([]models.Job, error) {
	return s.repo.ListCompletedByAccepter(ctx, accepterID, opts)
}

// ListToRate returns the caller's completed-but-unrated posted jobs
func (s *Job) ListToRate(ctx context.Context, posterID uint, opts *models.ListOptions) ([]models.Job, error) {
	return s.repo.ListToRate(ctx, posterID, opts)
}

// Complete marks a job as completed. Only the poster may complete, the job
// must have an accepter, and it must not already be completed. The
// accepted -> completed transition is a conditional write; if it is lost to
// a concurrent caller the state is re-read and re-validated once before the
// failure is surfaced.
func (s *Job) Complete(ctx context.Context, jobID, callerID uint) (*models.Job, error) {
	for attempt := 0; attempt < 2; attempt++ {
		job, err := s.repo.GetByID(ctx, jobID)
		if err != nil {
			return nil, apperr.NotFound("job not found")
		}
		if job.PosterID != callerID {
			return nil, apperr.Forbidden("only the job poster can complete the job")
		}
		if !job.Status.CanTransition(models.JobStatusCompleted) {
			if job.IsCompleted() {
				return nil, apperr.Conflict("job has already been completed")
			}
			return nil, apperr.InvalidOperation("job must be accepted before it can be completed")
		}

		err = s.repo.MarkCompleted(ctx, jobID, time.Now().UTC())
		if err == nil {
			job, err = s.repo.GetByID(ctx, jobID)
			if err != nil {
				return nil, fmt.Errorf("failed to reload job: %w", err)
			}
			if job.AccepterID != nil {
				s.notifier.Notify(ctx, *job.AccepterID,
					fmt.Sprintf("The job %q has been marked as completed.", job.Title),
					models.NotificationTypeGeneral, &job.ID)
			}
			return job, nil
		}
		if !errors.Is(err, repos.ErrStateConflict) {
			return nil, err
		}
	}
	return nil, apperr.Conflict("job has already been completed")
}
