package routes

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name        string
		routeName   string
		params      map[string]string
		queryParams url.Values
		want        string
	}{
		{
			name:      "health check",
			routeName: HealthCheck,
			want:      "/health",
		},
		{
			name:      "register",
			routeName: RegisterUser,
			want:      "/api/v1/users/register",
		},
		{
			name:      "list jobs trims trailing slash",
			routeName: GetJobs,
			want:      "/api/v1/jobs",
		},
		{
			name:        "list jobs with page",
			routeName:   GetJobs,
			queryParams: url.Values{"page": []string{"2"}},
			want:        "/api/v1/jobs?page=2",
		},
		{
			name:      "get job by id",
			routeName: GetJob,
			params:    map[string]string{"id": "42"},
			want:      "/api/v1/jobs/42",
		},
		{
			name:      "complete job",
			routeName: CompleteJob,
			params:    map[string]string{"id": "42"},
			want:      "/api/v1/jobs/42/complete",
		},
		{
			name:      "posted jobs",
			routeName: GetPostedJobs,
			want:      "/api/v1/jobs/user/posted",
		},
		{
			name:      "job applications",
			routeName: GetJobApplications,
			params:    map[string]string{"jobId": "42"},
			want:      "/api/v1/applications/job/42",
		},
		{
			name:      "accept application",
			routeName: AcceptApplication,
			params:    map[string]string{"id": "7"},
			want:      "/api/v1/applications/7/accept",
		},
		{
			name:      "user ratings",
			routeName: GetUserRatings,
			params:    map[string]string{"userId": "3"},
			want:      "/api/v1/ratings/user/3",
		},
		{
			name:      "conversation",
			routeName: GetConversation,
			params:    map[string]string{"userId": "3"},
			want:      "/api/v1/messages/conversation/3",
		},
		{
			name:      "mark notification read",
			routeName: MarkNotificationRead,
			params:    map[string]string{"id": "5"},
			want:      "/api/v1/notifications/5/read",
		},
		{
			name:      "unknown route",
			routeName: "NoSuchRoute",
			want:      "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildURL(tt.routeName, tt.params, tt.queryParams))
		})
	}
}

func TestURLHelpers(t *testing.T) {
	assert.Equal(t, "/health", HealthCheckURL())
	assert.Equal(t, "/api/v1/users/register", RegisterUserURL())
	assert.Equal(t, "/api/v1/users/login", LoginUserURL())
	assert.Equal(t, "/api/v1/users/7", GetUserByIDURL("7"))
	assert.Equal(t, "/api/v1/jobs/42", GetJobURL("42"))
	assert.Equal(t, "/api/v1/jobs", CreateJobURL())
	assert.Equal(t, "/api/v1/jobs/42/complete", CompleteJobURL("42"))
	assert.Equal(t, "/api/v1/applications", ApplyURL())
	assert.Equal(t, "/api/v1/applications/7/accept", AcceptApplicationURL("7"))
	assert.Equal(t, "/api/v1/ratings", RateUserURL())
	assert.Equal(t, "/api/v1/ratings/user/3", GetUserRatingsURL("3"))
}

func TestEveryNamedRouteIsCached(t *testing.T) {
	names := []string{
		HealthCheck,
		RegisterUser, LoginUser, GetUsers, GetProfile, UpdateBio, GetUserByID,
		GetPostedJobs, GetAcceptedJobs, GetCompletedJobs, GetJobsToRate,
		GetJobs, CreateJob, GetJob, CompleteJob,
		Apply, GetMyApplications, GetJobApplications, AcceptApplication,
		RateUser, GetUserRatings,
		SendMessage, GetConversations, GetUnreadMessageCount, GetConversation,
		GetNotifications, GetUnreadNotifCount, MarkAllNotificationsRead, MarkNotificationRead,
	}
	for _, name := range names {
		assert.NotEmpty(t, GetRoute(name), "route %s not registered", name)
	}
}
