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

// Rating provides business logic for rating operations
type Rating struct {
	repo     *repos.RatingRepository
	jobs     *repos.JobRepository
	notifier *Notification
}

// NewRatingService creates a new rating service instance
func NewRatingService(repo *repos.RatingRepository, jobs *repos.JobRepository, notifier *Notification) *Rating {
	return &Rating{repo: repo, jobs: jobs, notifier: notifier}
}

// Rate records the poster's rating of the accepter for a completed job and
// folds the score into the rated user's running average. Only the poster may
// rate, only the accepter may be rated, the job must be completed and not
// yet rated, and the score must be 1-5. The completed -> rated transition is
// a conditional write; if it is lost to a concurrent caller the state is
// re-read and re-validated once before the failure is surfaced.
func (s *Rating) Rate(ctx context.Context, jobID, callerID, ratedUserID uint, score int, comment string) (*models.Rating, error) {
	for attempt := 0; attempt < 2; attempt++ {
		job, err := s.jobs.GetByID(ctx, jobID)
		if err != nil {
			return nil, apperr.NotFound("job not found")
		}
		if job.PosterID != callerID {
			return nil, apperr.Forbidden("only the job poster can rate")
		}
		if job.AccepterID == nil || *job.AccepterID != ratedUserID {
			return nil, apperr.InvalidOperation("you can only rate the person who accepted your job")
		}
		if !job.IsCompleted() {
			return nil, apperr.InvalidOperation("job must be completed before rating")
		}
		if job.IsRated() {
			return nil, apperr.Conflict("you have already rated this user for this job")
		}
		if score < models.MinRating || score > models.MaxRating {
			return nil, apperr.Validation("rating must be between 1 and 5")
		}

		rating := &models.Rating{
			JobID:       jobID,
			RaterID:     callerID,
			RatedUserID: ratedUserID,
			Rating:      score,
			Comment:     comment,
		}
		err = s.repo.CreateForJob(ctx, rating)
		if err == nil {
			posterName := ""
			if job.Poster != nil {
				posterName = job.Poster.Name
			}
			s.notifier.Notify(ctx, ratedUserID,
				fmt.Sprintf("%s rated you %d stars for completing %q.", posterName, score, job.Title),
				models.NotificationTypeGeneral, &job.ID)
			return s.repo.GetByID(ctx, rating.ID)
		}
		if db.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("you have already rated this user for this job")
		}
		if !errors.Is(err, repos.ErrStateConflict) {
			return nil, err
		}
	}
	return nil, apperr.Conflict("you have already rated this user for this job")
}

// ListForUser returns the ratings a user has received
func (s *Rating) ListForUser(ctx context.Context, ratedUserID uint, opts *models.ListOptions) ([]models.Rating, error) {
	return s.repo.ListByRatedUser(ctx, ratedUserID, opts)
}
