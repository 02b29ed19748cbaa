package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/api/v1/services"
	"github.com/campusgig/campusgig/internal/types"
)

// JobHandler handles HTTP requests for job operations
type JobHandler struct {
	service *services.Job
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(service *services.Job) *JobHandler {
	return &JobHandler{service: service}
}

// CreateJob posts a new job
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req types.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, ErrMsgInvalidReqBody)
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err.Error())
	}

	job, err := h.service.Create(c.Context(), callerID(c), req.Title, req.Description, req.Payment)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// GetJobs returns the jobs still accepting applications
func (h *JobHandler) GetJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListOpen(c.Context(), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListJobsResponse{Jobs: jobs})
}

// GetJobByID returns a job by id
func (h *JobHandler) GetJobByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondValidation(c, ErrMsgInvalidJobID)
	}

	job, err := h.service.GetByID(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}

// GetPostedJobs returns the caller's posted jobs
func (h *JobHandler) GetPostedJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListPosted(c.Context(), callerID(c), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListJobsResponse{Jobs: jobs})
}

// GetAcceptedJobs returns the jobs the caller was accepted for
func (h *JobHandler) GetAcceptedJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListAccepted(c.Context(), callerID(c), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListJobsResponse{Jobs: jobs})
}

// GetCompletedJobs returns the caller's completed jobs as accepter
func (h *JobHandler) GetCompletedJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListCompleted(c.Context(), callerID(c), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListJobsResponse{Jobs: jobs})
}

// GetJobsToRate returns the caller's completed-but-unrated posted jobs
func (h *JobHandler) GetJobsToRate(c *fiber.Ctx) error {
	jobs, err := h.service.ListToRate(c.Context(), callerID(c), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListJobsResponse{Jobs: jobs})
}

// CompleteJob marks a job completed
func (h *JobHandler) CompleteJob(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondValidation(c, ErrMsgInvalidJobID)
	}

	job, err := h.service.Complete(c.Context(), uint(id), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}
