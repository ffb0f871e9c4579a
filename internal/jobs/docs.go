// Package jobs provides scheduled background tasks for the grocery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. PickerClaimJob - Runs every second to claim pending orders on behalf of registered pickers
// 2. TripCompletionJob - Sweeps active trips every five seconds and advances fully delivered ones
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pickerClaimJob, tripCompletionJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The claim job ignores expected business errors (nothing to claim, lost race)
// - The completion sweep logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
