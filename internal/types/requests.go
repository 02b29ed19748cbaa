// Package types defines the request and response types of the HTTP API
package types

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/campusgig/campusgig/internal/db/models"
)

// validate is the shared validator instance for request DTOs
var validate = validator.New()

// RegisterRequest is the body of POST /api/v1/users/register
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate checks the request fields
func (r *RegisterRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return errors.New("please provide all fields")
	}
	if err := validate.Struct(r); err != nil {
		return errors.New("invalid user data")
	}
	return nil
}

// LoginRequest is the body of POST /api/v1/users/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the request fields
func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("please provide email and password")
	}
	return validate.Struct(r)
}

// UpdateBioRequest is the body of PUT /api/v1/users/bio
type UpdateBioRequest struct {
	Bio string `json:"bio" validate:"required,max=500"`
}

// Validate checks the request fields
func (r *UpdateBioRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errors.New("bio must be between 1 and 500 characters")
	}
	return nil
}

// CreateJobRequest is the body of POST /api/v1/jobs
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Payment     string `json:"payment" validate:"required"`
}

// Validate checks the request fields
func (r *CreateJobRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errors.New("please provide title, description and payment")
	}
	return nil
}

// ApplyRequest is the body of POST /api/v1/applications.
// Field names match the client wire format.
type ApplyRequest struct {
	JobID  uint   `json:"jobId" validate:"required"`
	Reason string `json:"reason" validate:"required,max=1000"`
}

// Validate checks the request fields
func (r *ApplyRequest) Validate() error {
	if r.JobID == 0 || r.Reason == "" {
		return errors.New("please provide job ID and reason")
	}
	if err := validate.Struct(r); err != nil {
		return errors.New("reason must be at most 1000 characters")
	}
	return nil
}

// RateUserRequest is the body of POST /api/v1/ratings
type RateUserRequest struct {
	JobID       uint   `json:"jobId" validate:"required"`
	RatedUserID uint   `json:"ratedUserId" validate:"required"`
	Rating      int    `json:"rating" validate:"required"`
	Comment     string `json:"comment" validate:"omitempty,max=500"`
}

// Validate checks the request fields
func (r *RateUserRequest) Validate() error {
	if r.JobID == 0 || r.RatedUserID == 0 || r.Rating == 0 {
		return errors.New("please provide all required fields")
	}
	if r.Rating < models.MinRating || r.Rating > models.MaxRating {
		return errors.New("rating must be between 1 and 5")
	}
	if err := validate.Struct(r); err != nil {
		return errors.New("comment must be at most 500 characters")
	}
	return nil
}

// SendMessageRequest is the body of POST /api/v1/messages
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId" validate:"required"`
	Message    string `json:"message" validate:"required,max=2000"`
}

// Validate checks the request fields
func (r *SendMessageRequest) Validate() error {
	if r.ReceiverID == 0 || r.Message == "" {
		return errors.New("please provide receiver and message")
	}
	if err := validate.Struct(r); err != nil {
		return errors.New("message must be at most 2000 characters")
	}
	return nil
}
