package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campusgig/campusgig/internal/db"
	"github.com/campusgig/campusgig/internal/db/models"
	"github.com/campusgig/campusgig/internal/db/repos"
)

// env bundles the services under test with direct repo access for assertions
type env struct {
	DB            *gorm.DB
	Users         *User
	Jobs          *Job
	Applications  *Application
	Ratings       *Rating
	Messages      *Message
	Notifications *Notification

	UserRepo *repos.UserRepository
	JobRepo  *repos.JobRepository
}

// newTestEnv creates a file-based SQLite database and wires the full service
// stack on top of it
func newTestEnv(t *testing.T) *env {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "campusgig_test.db")
	gormDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.Migrate(gormDB), "failed to run migrations")

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
		_ = os.RemoveAll(tmpDir)
	})

	userRepo := repos.NewUserRepository(gormDB)
	jobRepo := repos.NewJobRepository(gormDB)
	applicationRepo := repos.NewApplicationRepository(gormDB)
	ratingRepo := repos.NewRatingRepository(gormDB)
	notificationRepo := repos.NewNotificationRepository(gormDB)
	messageRepo := repos.NewMessageRepository(gormDB)

	notifications := NewNotificationService(notificationRepo)

	return &env{
		DB:            gormDB,
		Users:         NewUserService(userRepo, []byte("test-secret")),
		Jobs:          NewJobService(jobRepo, notifications),
		Applications:  NewApplicationService(applicationRepo, jobRepo, userRepo, notifications),
		Ratings:       NewRatingService(ratingRepo, jobRepo, notifications),
		Messages:      NewMessageService(messageRepo, userRepo),
		Notifications: notifications,
		UserRepo:      userRepo,
		JobRepo:       jobRepo,
	}
}

// createUser inserts a user directly and returns it
func (e *env) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: "not-a-real-hash",
	}
	require.NoError(t, e.DB.Create(user).Error)
	return user
}

// createJob posts a job through the service and returns it
func (e *env) createJob(t *testing.T, posterID uint) *models.Job {
	t.Helper()
	job, err := e.Jobs.Create(context.Background(), posterID, "Move a couch", "Need help moving a couch up two flights", "$20")
	require.NoError(t, err)
	return job
}
