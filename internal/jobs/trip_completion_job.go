package jobs

import (
	"context"
	"log/slog"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TripCompletionJob sweeps active trips and advances the fully delivered
// ones to pending store confirmation. The underlying completion check is
// idempotent, so re-sweeping a trip that has not changed is harmless.
type TripCompletionJob struct {
	handler commands.CheckTripCompletionCommandHandler
	trips   ports.TripRepository
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTripCompletionJob creates a new job for trip completion sweeps.
func NewTripCompletionJob(
	handler commands.CheckTripCompletionCommandHandler,
	trips ports.TripRepository,
	logger *slog.Logger,
) *TripCompletionJob {
	return &TripCompletionJob{
		handler: handler,
		trips:   trips,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "trip_completion_job"),
	}
}

// Start begins the completion sweep to run every five seconds.
func (j *TripCompletionJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		active, listErr := j.trips.GetAllActive(ctx)
		if listErr != nil {
			j.logger.ErrorContext(ctx, "Failed to list active trips", "error", listErr)
			return
		}

		for _, t := range active {
			cmd, cmdErr := commands.NewCheckTripCompletionCommand(t.ID())
			if cmdErr != nil {
				j.logger.ErrorContext(ctx, "Invalid trip for completion check", "trip_id", t.ID(), "error", cmdErr)
				continue
			}

			if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
				j.logger.ErrorContext(ctx, "Trip completion check failed", "trip_id", t.ID(), "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Trip completion job started (running every five seconds)")
	return nil
}

// Stop stops the completion sweep.
func (j *TripCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Trip completion job stopped")
}
