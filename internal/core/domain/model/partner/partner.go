package partner

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// Domain errors for delivery partner operations.
var (
	// ErrNameIsRequired is returned when creating a partner without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	// ErrPartnerIsOffShift is returned when assigning work to a partner whose shift is off.
	ErrPartnerIsOffShift = errors.New("partner is not on shift")
	// ErrPartnerIsBusy is returned when assigning a trip to a partner already
	// executing one. A partner carries at most one non-closed trip at a time.
	ErrPartnerIsBusy = errors.New("partner is already busy with a trip")
)

// Partner represents a delivery partner who executes delivery trips.
// It is an aggregate root managing partner identity and availability.
//
// Business rules:
//   - A partner must be on shift before taking a trip
//   - A partner carries at most one active trip; the busy flag enforces this
//   - Only trip closure frees a busy partner
type Partner struct {
	// id uniquely identifies the partner
	id kernel.UUID
	// name is the partner's display name
	name string
	// email is the partner's contact address, may be empty
	email string
	// shiftOn reports whether the partner is currently on duty
	shiftOn bool
	// isBusy reports whether the partner is executing a trip
	isBusy bool
	// isConstructed ensures the partner was created via a constructor
	isConstructed bool
}

// NewPartner creates a new delivery partner, off shift and free.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - name: display name (non-empty)
//   - email: contact address, may be empty
func NewPartner(id kernel.UUID, name, email string) (*Partner, error) {
	p := &Partner{
		email:         email,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner reconstructs a Partner aggregate from persistent storage,
// including its shift and busy flags.
func RestorePartner(id kernel.UUID, name, email string, shiftOn, isBusy bool) (*Partner, error) {
	p, err := NewPartner(id, name, email)
	if err != nil {
		return nil, err
	}

	p.shiftOn = shiftOn
	p.isBusy = isBusy
	return p, nil
}

// Validate ensures the Partner instance was properly constructed.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's contact address.
func (p *Partner) Email() string {
	return p.email
}

// ShiftOn reports whether the partner is currently on duty.
func (p *Partner) ShiftOn() bool {
	return p.shiftOn
}

// IsBusy reports whether the partner is executing a trip.
func (p *Partner) IsBusy() bool {
	return p.isBusy
}

// IsAvailable reports whether the partner can take a new trip:
// on shift and not busy.
func (p *Partner) IsAvailable() bool {
	return p.shiftOn && !p.isBusy
}

// SetShift toggles the partner's on-duty flag.
// Turning the shift off while busy is allowed; the running trip still has
// to be closed before new work can be assigned.
func (p *Partner) SetShift(on bool) {
	p.shiftOn = on
}

// MarkBusy flags the partner as executing a trip.
//
// Returns:
//   - ErrPartnerIsOffShift when the partner's shift is off
//   - ErrPartnerIsBusy when a trip is already in progress
func (p *Partner) MarkBusy() error {
	if !p.shiftOn {
		return ErrPartnerIsOffShift
	}
	if p.isBusy {
		return ErrPartnerIsBusy
	}

	p.isBusy = true
	return nil
}

// Free clears the busy flag after trip closure, making the partner
// available for new batches. Freeing a free partner is a no-op.
func (p *Partner) Free() {
	p.isBusy = false
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
