package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusgig/campusgig/internal/apperr"
	"github.com/campusgig/campusgig/internal/db"
	"github.com/campusgig/campusgig/internal/db/models"
	"github.com/campusgig/campusgig/internal/db/repos"
)

// Application provides business logic for application operations,
// including the apply and accept steps of the job lifecycle
type Application struct {
	repo     *repos.ApplicationRepository
	jobs     *repos.JobRepository
	users    *repos.UserRepository
	notifier *Notification
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	repo *repos.ApplicationRepository,
	jobs *repos.JobRepository,
	users *repos.UserRepository,
	notifier *Notification,
) *Application {
	return &Application{repo: repo, jobs: jobs, users: users, notifier: notifier}
}

// Apply submits an application for a job. The job must exist and still be
// open, the applicant must not be the poster, and a user may apply to a job
// at most once. The unique index on (job_id, applicant_id) backstops the
// duplicate-apply race; a violation is surfaced as the same Conflict as the
// pre-check.
func (s *Application) Apply(ctx context.Context, jobID, applicantID uint, reason string) (*models.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperr.NotFound("job not found")
	}
	if job.AccepterID != nil {
		return nil, apperr.Conflict("this job has already been accepted by someone")
	}
	if job.PosterID == applicantID {
		return nil, apperr.InvalidOperation("you cannot apply to your own job")
	}
	if _, err := s.repo.GetByJobAndApplicant(ctx, jobID, applicantID); err == nil {
		return nil, apperr.Conflict("you have already applied to this job")
	}

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Reason:      reason,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		if db.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("you have already applied to this job")
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	// Reload with applicant and job populated for the response
	app, err = s.repo.GetByID(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload application: %w", err)
	}

	applicant := app.Applicant
	if applicant == nil {
		applicant, err = s.users.GetByID(ctx, applicantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get applicant: %w", err)
		}
	}
	s.notifier.Notify(ctx, job.PosterID,
		fmt.Sprintf("%s has applied for your job %q.", applicant.Name, job.Title),
		models.NotificationTypeJobAccepted, &job.ID)

	return app, nil
}

// ListByJob returns the applications for a job. Only the poster may see them.
func (s *Application) ListByJob(ctx context.Context, jobID, callerID uint, opts *models.ListOptions) ([]models.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperr.NotFound("job not found")
	}
	if job.PosterID != callerID {
		return nil, apperr.Forbidden("not authorized to view these applications")
	}
	return s.repo.ListByJob(ctx, jobID, opts)
}

// ListMine returns the caller's own applications
func (s *Application) ListMine(ctx context.Context, applicantID uint, opts *models.ListOptions) ([]models.Application, error) {
	return s.repo.ListByApplicant(ctx, applicantID, opts)
}

// Accept chooses an application for a job. Only the poster may accept, and
// only while the job has no accepter. The job's open -> accepted transition,
// the application update, and the rejection of still-pending siblings happen
// in one transaction; losing the accept race is a terminal Conflict.
func (s *Application) Accept(ctx context.Context, applicationID, callerID uint) (*models.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperr.NotFound("application not found")
	}
	job := app.Job
	if job == nil {
		return nil, apperr.NotFound("job not found")
	}
	if job.PosterID != callerID {
		return nil, apperr.Forbidden("not authorized to accept this application")
	}
	if job.AccepterID != nil {
		return nil, apperr.Conflict("this job has already been accepted by someone")
	}

	if err := s.repo.Accept(ctx, app); err != nil {
		if errors.Is(err, repos.ErrStateConflict) {
			return nil, apperr.Conflict("this job has already been accepted by someone")
		}
		return nil, err
	}

	s.notifier.Notify(ctx, app.ApplicantID,
		fmt.Sprintf("Congratulations! Your application for %q has been accepted.", job.Title),
		models.NotificationTypeJobAccepted, &job.ID)

	return s.repo.GetByID(ctx, applicationID)
}
