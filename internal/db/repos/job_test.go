package repos

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campusgig/campusgig/internal/db"
	"github.com/campusgig/campusgig/internal/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "repos_test.db")
	gormDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}

func seedUser(t *testing.T, gormDB *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test", Email: email, Password: "x"}
	require.NoError(t, gormDB.Create(user).Error)
	return user
}

func seedJob(t *testing.T, gormDB *gorm.DB, posterID uint, status models.JobStatus) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       "Move a couch",
		Description: "Two flights",
		Payment:     "$20",
		PosterID:    posterID,
		Status:      status,
	}
	require.NoError(t, gormDB.Create(job).Error)
	return job
}

func TestMarkCompletedIsConditionalOnStatus(t *testing.T) {
	gormDB := openTestDB(t)
	ctx := context.Background()
	repo := NewJobRepository(gormDB)
	poster := seedUser(t, gormDB, "poster@example.com")

	// The update only fires while the job is in the accepted state; any
	// other state means a concurrent caller got there first.
	open := seedJob(t, gormDB, poster.ID, models.JobStatusOpen)
	err := repo.MarkCompleted(ctx, open.ID, time.Now().UTC())
	require.ErrorIs(t, err, ErrStateConflict)

	accepted := seedJob(t, gormDB, poster.ID, models.JobStatusAccepted)
	require.NoError(t, repo.MarkCompleted(ctx, accepted.ID, time.Now().UTC()))

	reloaded, err := repo.GetByID(ctx, accepted.ID)
	require.NoError(t, err)
	require.Equal(t, models.JobStatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.CompletedAt)

	// A second completion of the same job loses the conditional write
	err = repo.MarkCompleted(ctx, accepted.ID, time.Now().UTC())
	require.ErrorIs(t, err, ErrStateConflict)
}

func TestAcceptIsConditionalOnOpenJob(t *testing.T) {
	gormDB := openTestDB(t)
	ctx := context.Background()
	jobRepo := NewJobRepository(gormDB)
	appRepo := NewApplicationRepository(gormDB)
	poster := seedUser(t, gormDB, "poster@example.com")
	alex := seedUser(t, gormDB, "alex@example.com")
	blake := seedUser(t, gormDB, "blake@example.com")
	job := seedJob(t, gormDB, poster.ID, models.JobStatusOpen)

	alexApp := &models.Application{JobID: job.ID, ApplicantID: alex.ID, Reason: "pick me", Status: models.ApplicationStatusPending}
	require.NoError(t, appRepo.Create(ctx, alexApp))
	blakeApp := &models.Application{JobID: job.ID, ApplicantID: blake.ID, Reason: "me too", Status: models.ApplicationStatusPending}
	require.NoError(t, appRepo.Create(ctx, blakeApp))

	require.NoError(t, appRepo.Accept(ctx, alexApp))

	// The whole transaction rolls back for the loser: Blake's application
	// stays rejected, not accepted, and the accepter is unchanged.
	err := appRepo.Accept(ctx, blakeApp)
	require.ErrorIs(t, err, ErrStateConflict)

	reloaded, err := jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, models.JobStatusAccepted, reloaded.Status)
	require.NotNil(t, reloaded.AccepterID)
	require.Equal(t, alex.ID, *reloaded.AccepterID)

	loser, err := appRepo.GetByID(ctx, blakeApp.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusRejected, loser.Status)
}

func TestRatingCreateForJobConditionalTransition(t *testing.T) {
	gormDB := openTestDB(t)
	ctx := context.Background()
	ratingRepo := NewRatingRepository(gormDB)
	userRepo := NewUserRepository(gormDB)
	poster := seedUser(t, gormDB, "poster@example.com")
	alex := seedUser(t, gormDB, "alex@example.com")

	job := seedJob(t, gormDB, poster.ID, models.JobStatusCompleted)
	require.NoError(t, gormDB.Model(job).Update("accepter_id", alex.ID).Error)

	rating := &models.Rating{JobID: job.ID, RaterID: poster.ID, RatedUserID: alex.ID, Rating: 4}
	require.NoError(t, ratingRepo.CreateForJob(ctx, rating))

	rated, err := userRepo.GetByID(ctx, alex.ID)
	require.NoError(t, err)
	require.Equal(t, int64(4), rated.TotalRatingScore)
	require.Equal(t, 1, rated.RatingsCount)
	require.Equal(t, 4.0, rated.Rating)

	// The completed -> rated transition already happened, so a second
	// rating attempt loses the conditional write and nothing is recorded.
	second := &models.Rating{JobID: job.ID, RaterID: poster.ID, RatedUserID: alex.ID, Rating: 1}
	err = ratingRepo.CreateForJob(ctx, second)
	require.ErrorIs(t, err, ErrStateConflict)

	rated, err = userRepo.GetByID(ctx, alex.ID)
	require.NoError(t, err)
	require.Equal(t, 1, rated.RatingsCount)
}
