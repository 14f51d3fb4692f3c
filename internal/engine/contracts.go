package engine

import (
	"context"

	"booking-admission/internal/domain/reservation"
	"booking-admission/internal/domain/resource"
	"booking-admission/internal/domain/rule"

	"github.com/google/uuid"
)

// ResourceRepository supplies the resource tree. Implementations return
// ErrResourceNotFound for unknown ids; inactive resources are returned as-is
// and rejected by the resolver.
type ResourceRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	Children(ctx context.Context, id uuid.UUID) ([]*resource.Resource, error)
}

// RuleRepository supplies active rules declared directly on one resource.
// Payloads are already parsed; a malformed stored payload must surface as an
// error here, never as a silently dropped rule.
type RuleRepository interface {
	ListActiveRules(ctx context.Context, resourceID uuid.UUID) ([]*rule.Rule, error)
}

// ReservationRepository supplies the authoritative occupancy set for index
// warm-start.
type ReservationRepository interface {
	ActiveReservations(ctx context.Context, resourceID uuid.UUID) ([]*reservation.Reservation, error)
}

// ReservationSink receives the draft minted on Accept. Persistence failures
// roll the draft back out of the conflict index.
type ReservationSink interface {
	Save(ctx context.Context, res *reservation.Reservation) error
}
