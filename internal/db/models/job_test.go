package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatusString(t *testing.T) {
	tests := []struct {
		status JobStatus
		want   string
	}{
		{JobStatusUnknown, "unknown"},
		{JobStatusOpen, "open"},
		{JobStatusAccepted, "accepted"},
		{JobStatusCompleted, "completed"},
		{JobStatusRated, "rated"},
		{JobStatus(42), "unknown"},
		{JobStatus(-1), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestParseJobStatus(t *testing.T) {
	for _, status := range []JobStatus{JobStatusOpen, JobStatusAccepted, JobStatusCompleted, JobStatusRated} {
		parsed, err := ParseJobStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseJobStatus("pending")
	assert.Error(t, err)
}

func TestJobStatusCanTransition(t *testing.T) {
	tests := []struct {
		from JobStatus
		to   JobStatus
		want bool
	}{
		{JobStatusOpen, JobStatusAccepted, true},
		{JobStatusAccepted, JobStatusCompleted, true},
		{JobStatusCompleted, JobStatusRated, true},
		// The lifecycle never skips a step or moves backwards
		{JobStatusOpen, JobStatusCompleted, false},
		{JobStatusOpen, JobStatusRated, false},
		{JobStatusAccepted, JobStatusOpen, false},
		{JobStatusAccepted, JobStatusRated, false},
		{JobStatusCompleted, JobStatusOpen, false},
		{JobStatusRated, JobStatusCompleted, false},
		{JobStatusRated, JobStatusRated, false},
		{JobStatusUnknown, JobStatusOpen, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestJobStatusJSON(t *testing.T) {
	data, err := json.Marshal(JobStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, `"accepted"`, string(data))

	var status JobStatus
	require.NoError(t, json.Unmarshal([]byte(`"completed"`), &status))
	assert.Equal(t, JobStatusCompleted, status)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &status))
	assert.Error(t, json.Unmarshal([]byte(`3`), &status))
}

func TestJobMarshalDerivedFields(t *testing.T) {
	now := time.Now().UTC()
	job := Job{
		Title:       "Move a couch",
		Status:      JobStatusCompleted,
		CompletedAt: &now,
	}

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "completed", decoded["status"])
	assert.Equal(t, true, decoded["is_completed"])
	assert.Equal(t, false, decoded["is_rated"])

	job.Status = JobStatusRated
	data, err = json.Marshal(job)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, true, decoded["is_completed"])
	assert.Equal(t, true, decoded["is_rated"])
}

func TestAggregateRating(t *testing.T) {
	total, count, avg := AggregateRating(0, 0, 5)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, 1, count)
	assert.Equal(t, 5.0, avg)

	total, count, avg = AggregateRating(total, count, 4)
	assert.Equal(t, int64(9), total)
	assert.Equal(t, 2, count)
	assert.Equal(t, 4.5, avg)

	// The average is reconstructed from the running sum, so it does not
	// drift the way repeated float re-averaging would
	total, count = 0, 0
	for i := 0; i < 1000; i++ {
		total, count, avg = AggregateRating(total, count, 3)
	}
	assert.Equal(t, int64(3000), total)
	assert.Equal(t, 1000, count)
	assert.Equal(t, 3.0, avg)
}
