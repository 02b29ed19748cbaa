// Package client provides the API client for interacting with the CampusGig API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/api/v1/routes"
	"github.com/campusgig/campusgig/internal/db/models"
	"github.com/campusgig/campusgig/internal/types"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for the API client
type Client interface {
	// Health check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// User endpoints
	Register(ctx context.Context, req types.RegisterRequest) (types.AuthResponse, error)
	Login(ctx context.Context, req types.LoginRequest) (types.AuthResponse, error)
	GetUsers(ctx context.Context, page int) ([]models.User, error)
	GetUserByID(ctx context.Context, id uint) (models.User, error)

	// Job endpoints
	GetJobs(ctx context.Context, page int) ([]models.Job, error)
	GetJob(ctx context.Context, id uint) (models.Job, error)
	CreateJob(ctx context.Context, req types.CreateJobRequest) (models.Job, error)
	CompleteJob(ctx context.Context, id uint) (models.Job, error)
	GetPostedJobs(ctx context.Context, page int) ([]models.Job, error)

	// Application endpoints
	Apply(ctx context.Context, req types.ApplyRequest) (models.Application, error)
	GetJobApplications(ctx context.Context, jobID uint) ([]models.Application, error)
	AcceptApplication(ctx context.Context, id uint) (models.Application, error)

	// Rating endpoints
	RateUser(ctx context.Context, req types.RateUserRequest) (models.Rating, error)
	GetUserRatings(ctx context.Context, userID uint) ([]models.Rating, error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// AuthToken is the bearer token sent with authenticated requests
	AuthToken string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL   string
	timeout   time.Duration
	AuthToken string
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &APIClient{
		baseURL:   opts.BaseURL,
		timeout:   opts.Timeout,
		AuthToken: opts.AuthToken,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")
	if c.AuthToken != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.AuthToken)
	}

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the HTTP request and decodes the response into v
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		var errResp types.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("request failed (%d): %s", statusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d", statusCode)
	}

	if v == nil {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

func (c *APIClient) get(ctx context.Context, endpoint string, v interface{}) error {
	agent, err := c.createAgent(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return c.doRequest(agent, v)
}

func (c *APIClient) post(ctx context.Context, endpoint string, body, v interface{}) error {
	agent, err := c.createAgent(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	return c.doRequest(agent, v)
}

func (c *APIClient) put(ctx context.Context, endpoint string, body, v interface{}) error {
	agent, err := c.createAgent(ctx, http.MethodPut, endpoint, body)
	if err != nil {
		return err
	}
	return c.doRequest(agent, v)
}

func pageQuery(page int) url.Values {
	if page <= 1 {
		return nil
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return q
}

// HealthCheck checks the API health endpoint
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var resp map[string]string
	err := c.get(ctx, routes.HealthCheckURL(), &resp)
	return resp, err
}

// Register creates a new account
func (c *APIClient) Register(ctx context.Context, req types.RegisterRequest) (types.AuthResponse, error) {
	var resp types.AuthResponse
	err := c.post(ctx, routes.RegisterUserURL(), req, &resp)
	return resp, err
}

// Login authenticates and returns the user with a token
func (c *APIClient) Login(ctx context.Context, req types.LoginRequest) (types.AuthResponse, error) {
	var resp types.AuthResponse
	err := c.post(ctx, routes.LoginUserURL(), req, &resp)
	return resp, err
}

// GetUsers lists users, best rated first
func (c *APIClient) GetUsers(ctx context.Context, page int) ([]models.User, error) {
	var resp types.ListUsersResponse
	err := c.get(ctx, routes.GetUsersURL(pageQuery(page)), &resp)
	return resp.Users, err
}

// GetUserByID fetches a user by id
func (c *APIClient) GetUserByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := c.get(ctx, routes.GetUserByIDURL(strconv.FormatUint(uint64(id), 10)), &user)
	return user, err
}

// GetJobs lists open jobs
func (c *APIClient) GetJobs(ctx context.Context, page int) ([]models.Job, error) {
	var resp types.ListJobsResponse
	err := c.get(ctx, routes.GetJobsURL(pageQuery(page)), &resp)
	return resp.Jobs, err
}

// GetJob fetches a job by id
func (c *APIClient) GetJob(ctx context.Context, id uint) (models.Job, error) {
	var job models.Job
	err := c.get(ctx, routes.GetJobURL(strconv.FormatUint(uint64(id), 10)), &job)
	return job, err
}

// CreateJob posts a new job
func (c *APIClient) CreateJob(ctx context.Context, req types.CreateJobRequest) (models.Job, error) {
	var job models.Job
	err := c.post(ctx, routes.CreateJobURL(), req, &job)
	return job, err
}

// CompleteJob marks a job completed
func (c *APIClient) CompleteJob(ctx context.Context, id uint) (models.Job, error) {
	var job models.Job
	err := c.put(ctx, routes.CompleteJobURL(strconv.FormatUint(uint64(id), 10)), nil, &job)
	return job, err
}

// GetPostedJobs lists the caller's posted jobs
func (c *APIClient) GetPostedJobs(ctx context.Context, page int) ([]models.Job, error) {
	var resp types.ListJobsResponse
	err := c.get(ctx, routes.GetPostedJobsURL(pageQuery(page)), &resp)
	return resp.Jobs, err
}

// Apply submits an application for a job
func (c *APIClient) Apply(ctx context.Context, req types.ApplyRequest) (models.Application, error) {
	var app models.Application
	err := c.post(ctx, routes.ApplyURL(), req, &app)
	return app, err
}

// GetJobApplications lists a job's applications (poster only)
func (c *APIClient) GetJobApplications(ctx context.Context, jobID uint) ([]models.Application, error) {
	var resp types.ListApplicationsResponse
	err := c.get(ctx, routes.GetJobApplicationsURL(strconv.FormatUint(uint64(jobID), 10)), &resp)
	return resp.Applications, err
}

// AcceptApplication chooses an application for a job (poster only)
func (c *APIClient) AcceptApplication(ctx context.Context, id uint) (models.Application, error) {
	var app models.Application
	err := c.put(ctx, routes.AcceptApplicationURL(strconv.FormatUint(uint64(id), 10)), nil, &app)
	return app, err
}

// RateUser rates the accepter of a completed job
func (c *APIClient) RateUser(ctx context.Context, req types.RateUserRequest) (models.Rating, error) {
	var rating models.Rating
	err := c.post(ctx, routes.RateUserURL(), req, &rating)
	return rating, err
}

// GetUserRatings lists the ratings a user has received
func (c *APIClient) GetUserRatings(ctx context.Context, userID uint) ([]models.Rating, error) {
	var resp types.ListRatingsResponse
	err := c.get(ctx, routes.GetUserRatingsURL(strconv.FormatUint(uint64(userID), 10)), &resp)
	return resp.Ratings, err
}
