package commands

import (
	"context"
	"fmt"
	"time"

	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
)

// CreateTripCommandHandler orchestrates trip creation: it loads the selected
// orders and the partner, runs the batching rules, and persists the trip,
// the re-labelled orders and the partner's busy flag in one transaction.
// A rejected batch therefore leaves zero side effects, and a crash cannot
// strand a half-created trip.
type CreateTripCommandHandler struct {
	uowFactory UoWFactory
	batcher    services.TripBatcher
	audit      ports.AuditLog
	notifier   ports.Notifier
}

// NewCreateTripCommandHandler creates a handler for trip creation.
func NewCreateTripCommandHandler(
	uowFactory UoWFactory,
	audit ports.AuditLog,
	notifier ports.Notifier,
) CreateTripCommandHandler {
	return CreateTripCommandHandler{
		uowFactory: uowFactory,
		batcher:    services.NewTripBatcher(),
		audit:      audit,
		notifier:   notifier,
	}
}

// Handle processes the trip creation command.
// Validation failures (oversized batch, mixed routes, busy or off-shift
// partner, non-packed order) surface synchronously with no partial write.
func (h CreateTripCommandHandler) Handle(ctx context.Context, cmd CreateTripCommand) error {
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

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()
	tripRepo := uow.TripRepository()

	orders, err := orderRepo.GetAllByIDs(ctx, cmd.OrderIDs())
	if err != nil {
		return err
	}

	deliveryPartner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	newTrip, err := h.batcher.Batch(orders, deliveryPartner)
	if err != nil {
		return err
	}

	if err = tripRepo.Add(ctx, newTrip); err != nil {
		return err
	}

	for _, o := range orders {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = partnerRepo.Update(ctx, deliveryPartner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.ActorID().String(),
		Role:      "Admin",
		Action:    "CREATE_TRIP",
		Reason:    fmt.Sprintf("Trip %s created for partner %s.", newTrip.ID(), deliveryPartner.ID()),
		Timestamp: time.Now().UTC(),
	})
	h.notifier.Notify(ctx, "Delivery",
		fmt.Sprintf("Trip %s with %d orders assigned on route %s.",
			newTrip.ID(), len(newTrip.OrderIDs()), newTrip.RouteKey()))

	return nil
}
