package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// JobStatus represents the current state of a job posting
type JobStatus int

// Job status constants
const (
	// JobStatusUnknown represents an unknown or invalid job status
	JobStatusUnknown JobStatus = iota
	// JobStatusOpen indicates the job is accepting applications
	JobStatusOpen
	// JobStatusAccepted indicates an applicant has been accepted
	JobStatusAccepted
	// JobStatusCompleted indicates the accepted work is done
	JobStatusCompleted
	// JobStatusRated indicates the poster has rated the accepter
	JobStatusRated
)

var jobStatusNames = []string{
	"unknown",
	"open",
	"accepted",
	"completed",
	"rated",
}

func (s JobStatus) String() string {
	if s < 0 || int(s) >= len(jobStatusNames) {
		return jobStatusNames[JobStatusUnknown]
	}
	return jobStatusNames[s]
}

// ParseJobStatus converts a string representation of a job status to JobStatus type
func ParseJobStatus(str string) (JobStatus, error) {
	for i, status := range jobStatusNames {
		if status == str {
			return JobStatus(i), nil
		}
	}
	return JobStatusUnknown, fmt.Errorf("invalid job status: %s", str)
}

// CanTransition reports whether the job lifecycle permits moving from s to next.
// The lifecycle is linear: open -> accepted -> completed -> rated.
func (s JobStatus) CanTransition(next JobStatus) bool {
	switch s {
	case JobStatusOpen:
		return next == JobStatusAccepted
	case JobStatusAccepted:
		return next == JobStatusCompleted
	case JobStatusCompleted:
		return next == JobStatusRated
	default:
		return false
	}
}

// MarshalJSON implements the json.Marshaler interface for JobStatus
func (s JobStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for JobStatus
func (s *JobStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	status, err := ParseJobStatus(str)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

// Job represents a task posted by one user, optionally accepted and completed by another
type Job struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null;type:text"`
	// Payment is free text, e.g. "$20" or "Free help"
	Payment  string `json:"payment" gorm:"not null"`
	PosterID uint   `json:"poster_id" gorm:"not null;index"`
	Poster   *User  `json:"poster,omitempty" gorm:"foreignKey:PosterID"`
	// AccepterID transitions null -> non-null exactly once and never back
	AccepterID        *uint      `json:"accepter_id" gorm:"index"`
	Accepter          *User      `json:"accepter,omitempty" gorm:"foreignKey:AccepterID"`
	Status            JobStatus  `json:"status" gorm:"not null;default:1;index"`
	CompletedAt       *time.Time `json:"completed_at"`
	ApplicationsCount int        `json:"applications_count" gorm:"not null;default:0"`
	CreatedAt         time.Time  `json:"created_at" gorm:"index"`
}

// IsCompleted reports whether the job has reached the completed state
func (j *Job) IsCompleted() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusRated
}

// IsRated reports whether the poster has rated the accepter
func (j *Job) IsRated() bool {
	return j.Status == JobStatusRated
}

// MarshalJSON implements the json.Marshaler interface for Job,
// adding the derived is_completed and is_rated fields clients key on
func (j Job) MarshalJSON() ([]byte, error) {
	type Alias Job // Create an alias to avoid infinite recursion
	return json.Marshal(struct {
		Alias
		IsCompleted bool `json:"is_completed"`
		IsRated     bool `json:"is_rated"`
	}{
		Alias:       Alias(j),
		IsCompleted: j.IsCompleted(),
		IsRated:     j.IsRated(),
	})
}
