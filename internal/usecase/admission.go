package usecase

import (
	"context"
	"time"

	"booking-admission/internal/domain/reservation"
	"booking-admission/internal/engine"
	"booking-admission/internal/pkg/clock"
	"booking-admission/internal/pkg/errs"
	"booking-admission/internal/pkg/metrics"

	"github.com/google/uuid"
)

type AdmitParams struct {
	ResourceID uuid.UUID
	Start      time.Time
	End        time.Time
	GuestCount int
}

// ReservationStatusWriter persists externally driven status transitions.
type ReservationStatusWriter interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status, now time.Time) error
}

type AdmissionUseCase interface {
	Admit(ctx context.Context, params AdmitParams) (engine.Decision, error)
	Release(ctx context.Context, reservationID uuid.UUID) error
}

type admissionUseCaseImpl struct {
	engine  *engine.Engine
	writer  ReservationStatusWriter
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewAdmissionUseCase(eng *engine.Engine, writer ReservationStatusWriter, clk clock.Clock, m *metrics.Metrics) AdmissionUseCase {
	return &admissionUseCaseImpl{
		engine:  eng,
		writer:  writer,
		clock:   clk,
		metrics: m,
	}
}

func (u *admissionUseCaseImpl) Admit(ctx context.Context, params AdmitParams) (engine.Decision, error) {
	decision, err := u.engine.Admit(ctx, engine.AdmissionRequest{
		ResourceID: params.ResourceID,
		Start:      params.Start,
		End:        params.End,
		GuestCount: params.GuestCount,
	}, u.clock.Now())
	if err != nil {
		return engine.Decision{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if u.metrics != nil {
		kind := ""
		if decision.Rejection != nil {
			kind = string(decision.Rejection.Kind)
		}
		u.metrics.ObserveAdmission(string(decision.Outcome), kind)
	}
	return decision, nil
}

// Release frees a reservation's slot and records the cancellation. The index
// update comes first so a persistence failure never leaves a phantom block.
func (u *admissionUseCaseImpl) Release(ctx context.Context, reservationID uuid.UUID) error {
	if err := u.engine.Release(reservationID); err != nil {
		if errs.Is(err, engine.ErrReservationNotFound) {
			return errs.ErrReservationNotFound
		}
		return err
	}

	if err := u.writer.UpdateStatus(ctx, reservationID, reservation.StatusCancelled, u.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
