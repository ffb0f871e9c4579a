package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
)

var (
	// ErrInvalidReturnCode is returned when the presented code does not match
	// the configured store-return code byte for byte.
	ErrInvalidReturnCode = errors.New("store return code is invalid")
	// ErrTripNotOwnedByPartner is returned when a partner tries to close a
	// trip assigned to somebody else.
	ErrTripNotOwnedByPartner = errors.New("trip is not assigned to this partner")
)

// CloseTripCommandHandler validates the store-return code and closes the trip.
// The trip status change, the closure of every constituent order and the
// partner's busy-flag clear are one transaction: there is no window in which
// the trip is closed but the partner stays stuck busy.
type CloseTripCommandHandler struct {
	uowFactory  UoWFactory
	returnCodes ports.ReturnCodeStore
	audit       ports.AuditLog
}

// NewCloseTripCommandHandler creates a handler for trip closures.
func NewCloseTripCommandHandler(
	uowFactory UoWFactory,
	returnCodes ports.ReturnCodeStore,
	audit ports.AuditLog,
) CloseTripCommandHandler {
	return CloseTripCommandHandler{
		uowFactory:  uowFactory,
		returnCodes: returnCodes,
		audit:       audit,
	}
}

// Handle processes the trip closure command.
// A wrong code rejects the whole operation before any read or write of the
// trip; the partner's busy flag is untouched on every failure path.
func (h CloseTripCommandHandler) Handle(ctx context.Context, cmd CloseTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	expected, err := h.returnCodes.Get(ctx)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(cmd.ReturnCode())) != 1 {
		return ErrInvalidReturnCode
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tripRepo := uow.TripRepository()
	partnerRepo := uow.PartnerRepository()
	orderRepo := uow.OrderRepository()

	t, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return err
	}

	if !t.PartnerID().IsEqual(cmd.PartnerID()) {
		return ErrTripNotOwnedByPartner
	}

	if err = t.Close(); err != nil {
		return err
	}

	orders, err := orderRepo.GetAllByIDs(ctx, t.OrderIDs())
	if err != nil {
		return err
	}

	for _, o := range orders {
		if err = o.TransitionTo(order.Closed); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	deliveryPartner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	deliveryPartner.Free()

	if err = tripRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, deliveryPartner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.PartnerID().String(),
		Role:      "Delivery",
		Action:    "STORE_RETURN_CONFIRMED",
		Reason:    fmt.Sprintf("Store return confirmed for trip %s", t.ID()),
		Timestamp: time.Now().UTC(),
	})

	return nil
}
