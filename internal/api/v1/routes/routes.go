// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/api/v1/handlers"
	"github.com/campusgig/campusgig/internal/api/v1/middleware"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// User routes
	RegisterUser = "RegisterUser"
	LoginUser    = "LoginUser"
	GetUsers     = "GetUsers"
	GetProfile   = "GetProfile"
	UpdateBio    = "UpdateBio"
	GetUserByID  = "GetUserByID"

	// Job routes
	GetPostedJobs    = "GetPostedJobs"
	GetAcceptedJobs  = "GetAcceptedJobs"
	GetCompletedJobs = "GetCompletedJobs"
	GetJobsToRate    = "GetJobsToRate"
	GetJobs          = "GetJobs"
	CreateJob        = "CreateJob"
	GetJob           = "GetJob"
	CompleteJob      = "CompleteJob"

	// Application routes
	Apply              = "Apply"
	GetMyApplications  = "GetMyApplications"
	GetJobApplications = "GetJobApplications"
	AcceptApplication  = "AcceptApplication"

	// Rating routes
	RateUser       = "RateUser"
	GetUserRatings = "GetUserRatings"

	// Message routes
	SendMessage           = "SendMessage"
	GetConversations      = "GetConversations"
	GetUnreadMessageCount = "GetUnreadMessageCount"
	GetConversation       = "GetConversation"

	// Notification routes
	GetNotifications         = "GetNotifications"
	GetUnreadNotifCount      = "GetUnreadNotifCount"
	MarkAllNotificationsRead = "MarkAllNotificationsRead"
	MarkNotificationRead     = "MarkNotificationRead"
)

// routeCache stores extracted routes for use prior to compilation
var (
	routeCache     map[string]string
	routeCacheMu   sync.RWMutex
	routeCacheInit sync.Once
)

// RegisterRoutes configures all the v1 routes.
//
// NOTE: route ordering is important because routes match in registration
// order; specific paths must come before parameterized ones or fiber will
// interpret the slug as the param.
func RegisterRoutes(
	app *fiber.App,
	userHandler *handlers.UserHandler,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	ratingHandler *handlers.RatingHandler,
	messageHandler *handlers.MessageHandler,
	notificationHandler *handlers.NotificationHandler,
	jwtSecret []byte,
) {
	protect := middleware.Protect(jwtSecret)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	v1 := app.Group(APIv1Prefix)

	// User endpoints
	users := v1.Group("/users")
	users.Post("/register", userHandler.Register).Name(RegisterUser)
	users.Post("/login", userHandler.Login).Name(LoginUser)
	users.Get("/", protect, userHandler.GetUsers).Name(GetUsers)
	users.Get("/profile", protect, userHandler.GetProfile).Name(GetProfile)
	users.Put("/bio", protect, userHandler.UpdateBio).Name(UpdateBio)
	users.Get("/:id", protect, userHandler.GetUserByID).Name(GetUserByID)

	// Job endpoints
	jobs := v1.Group("/jobs")
	jobs.Get("/user/posted", protect, jobHandler.GetPostedJobs).Name(GetPostedJobs)
	jobs.Get("/user/accepted", protect, jobHandler.GetAcceptedJobs).Name(GetAcceptedJobs)
	jobs.Get("/user/completed", protect, jobHandler.GetCompletedJobs).Name(GetCompletedJobs)
	jobs.Get("/user/to-rate", protect, jobHandler.GetJobsToRate).Name(GetJobsToRate)
	jobs.Get("/", jobHandler.GetJobs).Name(GetJobs)
	jobs.Post("/", protect, jobHandler.CreateJob).Name(CreateJob)
	jobs.Get("/:id", jobHandler.GetJobByID).Name(GetJob)
	jobs.Put("/:id/complete", protect, jobHandler.CompleteJob).Name(CompleteJob)

	// Application endpoints
	applications := v1.Group("/applications")
	applications.Post("/", protect, applicationHandler.Apply).Name(Apply)
	applications.Get("/my-applications", protect, applicationHandler.GetMyApplications).Name(GetMyApplications)
	applications.Get("/job/:jobId", protect, applicationHandler.GetJobApplications).Name(GetJobApplications)
	applications.Put("/:id/accept", protect, applicationHandler.AcceptApplication).Name(AcceptApplication)

	// Rating endpoints
	ratings := v1.Group("/ratings")
	ratings.Post("/", protect, ratingHandler.RateUser).Name(RateUser)
	ratings.Get("/user/:userId", ratingHandler.GetUserRatings).Name(GetUserRatings)

	// Message endpoints
	messages := v1.Group("/messages")
	messages.Post("/", protect, messageHandler.SendMessage).Name(SendMessage)
	messages.Get("/conversations", protect, messageHandler.GetConversations).Name(GetConversations)
	messages.Get("/unread-count", protect, messageHandler.GetUnreadCount).Name(GetUnreadMessageCount)
	messages.Get("/conversation/:userId", protect, messageHandler.GetConversation).Name(GetConversation)

	// Notification endpoints
	notifications := v1.Group("/notifications")
	notifications.Get("/", protect, notificationHandler.GetNotifications).Name(GetNotifications)
	notifications.Get("/unread-count", protect, notificationHandler.GetUnreadCount).Name(GetUnreadNotifCount)
	notifications.Put("/read-all", protect, notificationHandler.MarkAllRead).Name(MarkAllNotificationsRead)
	notifications.Put("/:id/read", protect, notificationHandler.MarkRead).Name(MarkNotificationRead)
}

// initRouteCache initializes the route cache by creating a mock app and extracting routes
func initRouteCache() {
	routeCacheInit.Do(func() {
		routeCache = make(map[string]string)

		app := fiber.New()
		RegisterRoutes(app,
			&handlers.UserHandler{},
			&handlers.JobHandler{},
			&handlers.ApplicationHandler{},
			&handlers.RatingHandler{},
			&handlers.MessageHandler{},
			&handlers.NotificationHandler{},
			nil,
		)

		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				routeCache[route.Name] = route.Path
			}
		}
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	initRouteCache()
	routeCacheMu.RLock()
	defer routeCacheMu.RUnlock()
	return routeCache[name]
}

// BuildURL builds a URL for the given route name and parameters
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	route := GetRoute(routeName)
	if route == "" {
		return ""
	}

	for param, value := range params {
		route = strings.ReplaceAll(route, ":"+param, value)
	}

	// Remove trailing slash if it's a base endpoint with no parameters
	if strings.HasSuffix(route, "/") && !strings.Contains(route, ":") {
		route = strings.TrimSuffix(route, "/")
	}

	if len(queryParams) > 0 {
		route = fmt.Sprintf("%s?%s", route, queryParams.Encode())
	}

	return route
}

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// RegisterUserURL returns the URL for registering a user
func RegisterUserURL() string {
	return BuildURL(RegisterUser, nil, nil)
}

// LoginUserURL returns the URL for logging in
func LoginUserURL() string {
	return BuildURL(LoginUser, nil, nil)
}

// GetUsersURL returns the URL for listing users
func GetUsersURL(queryParams url.Values) string {
	return BuildURL(GetUsers, nil, queryParams)
}

// GetUserByIDURL returns the URL for getting a user by ID
func GetUserByIDURL(id string) string {
	return BuildURL(GetUserByID, map[string]string{"id": id}, nil)
}

// GetJobsURL returns the URL for listing open jobs
func GetJobsURL(queryParams url.Values) string {
	return BuildURL(GetJobs, nil, queryParams)
}

// GetJobURL returns the URL for getting a job by ID
func GetJobURL(id string) string {
	return BuildURL(GetJob, map[string]string{"id": id}, nil)
}

// CreateJobURL returns the URL for creating a job
func CreateJobURL() string {
	return BuildURL(CreateJob, nil, nil)
}

// CompleteJobURL returns the URL for completing a job
func CompleteJobURL(id string) string {
	return BuildURL(CompleteJob, map[string]string{"id": id}, nil)
}

// GetPostedJobsURL returns the URL for the caller's posted jobs
func GetPostedJobsURL(queryParams url.Values) string {
	return BuildURL(GetPostedJobs, nil, queryParams)
}

// ApplyURL returns the URL for submitting an application
func ApplyURL() string {
	return BuildURL(Apply, nil, nil)
}

// GetJobApplicationsURL returns the URL for listing a job's applications
func GetJobApplicationsURL(jobID string) string {
	return BuildURL(GetJobApplications, map[string]string{"jobId": jobID}, nil)
}

// AcceptApplicationURL returns the URL for accepting an application
func AcceptApplicationURL(id string) string {
	return BuildURL(AcceptApplication, map[string]string{"id": id}, nil)
}

// RateUserURL returns the URL for rating a user
func RateUserURL() string {
	return BuildURL(RateUser, nil, nil)
}

// GetUserRatingsURL returns the URL for listing a user's ratings
func GetUserRatingsURL(userID string) string {
	return BuildURL(GetUserRatings, map[string]string{"userId": userID}, nil)
}
