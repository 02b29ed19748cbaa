package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusgig/campusgig/internal/apperr"
	"github.com/campusgig/campusgig/internal/auth"
	"github.com/campusgig/campusgig/internal/db/models"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	user, token, err := e.Users.Register(ctx, "Priya", "priya@example.com", "hunter22")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEmpty(t, token)
	require.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")

	claims, err := auth.ParseToken(token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "priya@example.com", claims.Email)

	_, token, err = e.Users.Login(ctx, "priya@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Wrong password and unknown email both fail the same way
	_, _, err = e.Users.Login(ctx, "priya@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = e.Users.Login(ctx, "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	// Password too short
	_, _, err := e.Users.Register(ctx, "Priya", "priya@example.com", "short")
	require.True(t, apperr.IsKind(err, apperr.KindValidation), "got: %v", err)

	// Duplicate email
	_, _, err = e.Users.Register(ctx, "Priya", "priya@example.com", "hunter22")
	require.NoError(t, err)
	_, _, err = e.Users.Register(ctx, "Impostor", "priya@example.com", "hunter23")
	require.True(t, apperr.IsKind(err, apperr.KindConflict), "got: %v", err)
}

func TestUpdateBio(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	user := e.createUser(t, "Priya", "priya@example.com")

	updated, err := e.Users.UpdateBio(ctx, user.ID, "CS senior, fast with furniture")
	require.NoError(t, err)
	require.Equal(t, "CS senior, fast with furniture", updated.Bio)

	_, err = e.Users.UpdateBio(ctx, 9999, "ghost")
	require.True(t, apperr.IsKind(err, apperr.KindNotFound), "got: %v", err)
}

func TestListUsersBestRatedFirst(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	low := e.createUser(t, "Low", "low@example.com")
	high := e.createUser(t, "High", "high@example.com")
	require.NoError(t, e.DB.Model(low).Updates(map[string]interface{}{
		"rating": 2.0, "ratings_count": 1, "total_rating_score": 2,
	}).Error)
	require.NoError(t, e.DB.Model(high).Updates(map[string]interface{}{
		"rating": 4.5, "ratings_count": 2, "total_rating_score": 9,
	}).Error)

	users, err := e.Users.List(ctx, &models.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, high.ID, users[0].ID)
	require.Equal(t, low.ID, users[1].ID)
}

func TestNotificationReadFlow(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	user := e.createUser(t, "Priya", "priya@example.com")
	other := e.createUser(t, "Alex", "alex@example.com")

	e.Notifications.Notify(ctx, user.ID, "first", models.NotificationTypeGeneral, nil)
	e.Notifications.Notify(ctx, user.ID, "second", models.NotificationTypeGeneral, nil)
	e.Notifications.Notify(ctx, other.ID, "not yours", models.NotificationTypeGeneral, nil)

	unread, err := e.Notifications.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), unread)

	notifications, err := e.Notifications.List(ctx, user.ID, &models.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	// Marking someone else's notification is a NotFound, not a silent no-op
	err = e.Notifications.MarkRead(ctx, notifications[0].ID, other.ID)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound), "got: %v", err)

	require.NoError(t, e.Notifications.MarkRead(ctx, notifications[0].ID, user.ID))
	unread, err = e.Notifications.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), unread)

	require.NoError(t, e.Notifications.MarkAllRead(ctx, user.ID))
	unread, err = e.Notifications.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), unread)
}
