package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// ClaimCallback is invoked after a picker successfully claims an order.
type ClaimCallback func(pickerID kernel.UUID, claimed *order.Order)

// PickerClaimJob claims pending orders on behalf of registered pickers.
// Runs every second; each tick every idle registered picker attempts one
// claim. Losing the claim race is normal under concurrency and is not
// treated as a failure.
type PickerClaimJob struct {
	handler  commands.ClaimOrderCommandHandler
	callback ClaimCallback
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.RWMutex
	pickers []kernel.UUID
}

// NewPickerClaimJob creates a new job for claiming orders.
// The callback may be nil if nothing needs to observe successful claims.
func NewPickerClaimJob(
	handler commands.ClaimOrderCommandHandler,
	callback ClaimCallback,
	logger *slog.Logger,
) *PickerClaimJob {
	return &PickerClaimJob{
		handler:  handler,
		callback: callback,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "picker_claim_job"),
	}
}

// RegisterPicker adds a picker to the claim rotation. Registering the same
// picker twice is a no-op.
func (j *PickerClaimJob) RegisterPicker(pickerID kernel.UUID) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, existing := range j.pickers {
		if existing.IsEqual(pickerID) {
			return
		}
	}
	j.pickers = append(j.pickers, pickerID)
}

// UnregisterPicker removes a picker from the claim rotation.
func (j *PickerClaimJob) UnregisterPicker(pickerID kernel.UUID) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i, existing := range j.pickers {
		if existing.IsEqual(pickerID) {
			j.pickers = append(j.pickers[:i], j.pickers[i+1:]...)
			return
		}
	}
}

// claimRound lets every registered picker attempt one claim.
func (j *PickerClaimJob) claimRound(ctx context.Context) {
	j.mu.RLock()
	pickers := make([]kernel.UUID, len(j.pickers))
	copy(pickers, j.pickers)
	j.mu.RUnlock()

	for _, pickerID := range pickers {
		cmd, cmdErr := commands.NewClaimOrderCommand(pickerID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Invalid picker registration", "picker_id", pickerID, "error", cmdErr)
			continue
		}

		claimed, claimErr := j.handler.Handle(ctx, cmd)
		if claimErr != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(claimErr, commands.ErrNoOrderToClaim) && !errors.Is(claimErr, commands.ErrClaimConflict) {
				j.logger.ErrorContext(ctx, "Picker claim job failed", "picker_id", pickerID, "error", claimErr)
			}
			continue
		}

		if j.callback != nil {
			j.callback(pickerID, claimed)
		}
	}
}

// Start begins the claim job to run every second.
func (j *PickerClaimJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.claimRound(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Picker claim job started (running every second)")
	return nil
}

// Stop stops the claim job.
func (j *PickerClaimJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Picker claim job stopped")
}
