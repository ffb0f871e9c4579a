package commands

import (
	"context"
	"fmt"
	"time"

	"grocery/internal/core/ports"
)

// SetPartnerShiftCommandHandler persists a delivery partner's shift toggle.
type SetPartnerShiftCommandHandler struct {
	uowFactory PartnerUoWFactory
	audit      ports.AuditLog
}

// NewSetPartnerShiftCommandHandler creates a handler for shift toggles.
func NewSetPartnerShiftCommandHandler(uowFactory PartnerUoWFactory, audit ports.AuditLog) SetPartnerShiftCommandHandler {
	return SetPartnerShiftCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle loads the partner, applies the shift state and persists it.
func (h SetPartnerShiftCommandHandler) Handle(ctx context.Context, cmd SetPartnerShiftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	p, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	p.SetShift(cmd.ShiftOn())

	if err = partnerRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	state := "OFF"
	if cmd.ShiftOn() {
		state = "ON"
	}
	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.PartnerID().String(),
		Role:      "Delivery",
		Action:    "SHIFT_CHANGE",
		Reason:    fmt.Sprintf("Shift turned %s", state),
		Timestamp: time.Now().UTC(),
	})

	return nil
}
