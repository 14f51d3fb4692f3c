package pgstore

import (
	"context"
	"time"

	"booking-admission/internal/domain/interval"
	"booking-admission/internal/domain/reservation"
	"booking-admission/internal/domain/resource"
	"booking-admission/internal/infra"
	"booking-admission/internal/pkg/errs"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationStore persists accepted drafts and supplies the authoritative
// occupancy set for warm-start. It satisfies both engine.ReservationRepository
// and engine.ReservationSink.
type ReservationStore struct {
	pool *pgxpool.Pool
}

func NewReservationStore(pool *pgxpool.Pool) *ReservationStore {
	return &ReservationStore{pool: pool}
}

func (s *ReservationStore) ActiveReservations(ctx context.Context, resourceID uuid.UUID) ([]*reservation.Reservation, error) {
	query, args, err := psql.Select(
		"id",
		"resource_id",
		"level",
		"start_at",
		"end_at",
		"status",
		"guest_count",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{
			"resource_id": resourceID,
			"status":      []string{string(reservation.StatusPending), string(reservation.StatusConfirmed)},
		}).
		OrderBy("start_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("build reservation select", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("query active reservations", err)
	}
	defer rows.Close()

	var reservations []*reservation.Reservation
	for rows.Next() {
		var (
			id         uuid.UUID
			resID      uuid.UUID
			level      string
			startAt    time.Time
			endAt      time.Time
			status     string
			guestCount int
			createdAt  time.Time
			updatedAt  time.Time
		)
		if err := rows.Scan(&id, &resID, &level, &startAt, &endAt, &status, &guestCount, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("scan reservation row", err)
		}

		slot, err := interval.New(startAt, endAt)
		if err != nil {
			return nil, errs.Wrap(err, "stored reservation "+id.String()+" has an invalid interval")
		}

		reservations = append(reservations, reservation.ReconstructReservation(
			id,
			resID,
			resource.Level(level),
			slot,
			reservation.Status(status),
			guestCount,
			createdAt,
			updatedAt,
		))
	}
	return reservations, rows.Err()
}

func (s *ReservationStore) Save(ctx context.Context, res *reservation.Reservation) error {
	query, args, err := psql.Insert("reservations").
		Columns(
			"id",
			"resource_id",
			"level",
			"start_at",
			"end_at",
			"status",
			"guest_count",
			"created_at",
			"updated_at",
		).
		Values(
			res.ID(),
			res.ResourceID(),
			string(res.Level()),
			res.Slot().Start(),
			res.Slot().End(),
			string(res.Status()),
			res.GuestCount(),
			res.CreatedAt(),
			res.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("build reservation insert", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("insert reservation", err)
	}
	return nil
}

// UpdateStatus records an external status transition (confirm, cancel,
// reject) driven by the approval workflow.
func (s *ReservationStore) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status, now time.Time) error {
	query, args, err := psql.Update("reservations").
		Set("status", string(status)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("build reservation update", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
