package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusgig/campusgig/internal/api/v1/services"
	"github.com/campusgig/campusgig/internal/types"
)

// ApplicationHandler handles HTTP requests for application operations
type ApplicationHandler struct {
	service *services.Application
}

// NewApplicationHandler creates a new ApplicationHandler instance
func NewApplicationHandler(service *services.Application) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply submits an application for a job
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req types.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, ErrMsgInvalidReqBody)
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err.Error())
	}

	app, err := h.service.Apply(c.Context(), req.JobID, callerID(c), req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

// GetJobApplications returns the applications for a job (poster only)
func (h *ApplicationHandler) GetJobApplications(c *fiber.Ctx) error {
	jobID, err := c.ParamsInt("jobId")
	if err != nil || jobID < 1 {
		return respondValidation(c, ErrMsgInvalidJobID)
	}

	apps, err := h.service.ListByJob(c.Context(), uint(jobID), callerID(c), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListApplicationsResponse{Applications: apps})
}

// GetMyApplications returns the caller's own applications
func (h *ApplicationHandler) GetMyApplications(c *fiber.Ctx) error {
	apps, err := h.service.ListMine(c.Context(), callerID(c), getPaginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types.ListApplicationsResponse{Applications: apps})
}

// AcceptApplication chooses an application for a job (poster only)
func (h *ApplicationHandler) AcceptApplication(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondValidation(c, ErrMsgInvalidID)
	}

	app, err := h.service.Accept(c.Context(), uint(id), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(app)
}
