package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pickerClaimJob    *PickerClaimJob
	tripCompletionJob *TripCompletionJob
}

// NewJobManager creates a new job manager over the constructed jobs.
func NewJobManager(pickerClaimJob *PickerClaimJob, tripCompletionJob *TripCompletionJob) *JobManager {
	return &JobManager{
		pickerClaimJob:    pickerClaimJob,
		tripCompletionJob: tripCompletionJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pickerClaimJob.Start(); err != nil {
		return fmt.Errorf("failed to start picker claim job: %w", err)
	}

	if err := jm.tripCompletionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pickerClaimJob.Stop()
		return fmt.Errorf("failed to start trip completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pickerClaimJob.Stop()
	jm.tripCompletionJob.Stop()
}
