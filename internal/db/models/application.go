package models

import (
	"time"

	"gorm.io/gorm"
)

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

// Application status constants
const (
	// ApplicationStatusPending indicates the application awaits the poster's decision
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusAccepted indicates the poster chose this applicant
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	// ApplicationStatusRejected indicates another applicant was chosen
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application represents a bid by a user to be the accepter of a specific job.
// The (job_id, applicant_id) pair is unique: the index is the hard backstop
// against a duplicate-apply race.
type Application struct {
	gorm.Model
	JobID       uint              `json:"job_id" gorm:"not null;uniqueIndex:idx_applications_job_applicant"`
	Job         *Job              `json:"job,omitempty" gorm:"foreignKey:JobID"`
	ApplicantID uint              `json:"applicant_id" gorm:"not null;uniqueIndex:idx_applications_job_applicant"`
	Applicant   *User             `json:"applicant,omitempty" gorm:"foreignKey:ApplicantID"`
	Reason      string            `json:"reason" gorm:"not null;size:1000"`
	Status      ApplicationStatus `json:"status" gorm:"not null;default:'pending';index"`
	CreatedAt   time.Time         `json:"created_at" gorm:"index"`
}
