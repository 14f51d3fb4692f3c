package reservation

import (
	"errors"
	"time"

	"booking-admission/internal/domain/interval"
	"booking-admission/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount = errors.New("guest count must be positive")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrNotCancellable    = errors.New("reservation cannot be cancelled in its current status")
)

// Reservation is an accepted (or in-flight) occupancy of one bookable unit.
// Status transitions past Pending are driven by the external approval
// workflow; the engine only mints Pending drafts.
type Reservation struct {
	id         uuid.UUID
	resourceID uuid.UUID
	level      resource.Level
	slot       interval.Interval
	status     Status
	guestCount int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(
	resourceID uuid.UUID,
	level resource.Level,
	slot interval.Interval,
	guestCount int,
	now time.Time,
) (*Reservation, error) {
	if !level.IsValid() {
		return nil, resource.ErrInvalidLevel
	}
	if slot.IsZero() {
		return nil, interval.ErrInvalidInterval
	}
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}

	return &Reservation{
		id:         uuid.New(),
		resourceID: resourceID,
		level:      level,
		slot:       slot,
		status:     StatusPending,
		guestCount: guestCount,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, resourceID uuid.UUID,
	level resource.Level,
	slot interval.Interval,
	status Status,
	guestCount int,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		resourceID: resourceID,
		level:      level,
		slot:       slot,
		status:     status,
		guestCount: guestCount,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) Occupies() bool {
	return r.status.Occupies()
}

func (r *Reservation) Cancel(now time.Time) error {
	if !r.status.Occupies() {
		return ErrNotCancellable
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) Confirm(now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidStatus
	}
	r.status = StatusConfirmed
	r.updatedAt = now
	return nil
}

func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.slot.End())
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) ResourceID() uuid.UUID   { return r.resourceID }
func (r *Reservation) Level() resource.Level   { return r.level }
func (r *Reservation) Slot() interval.Interval { return r.slot }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) GuestCount() int         { return r.guestCount }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
