package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"booking-admission/internal/domain/interval"
	"booking-admission/internal/domain/reservation"
	"booking-admission/internal/domain/rule"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/pkg/errs"

	"github.com/google/uuid"
)

// Engine decides whether candidate reservations are admissible against the
// rule hierarchy and current occupancy. A decision is terminal after one
// pass: resolve hierarchy, gather rules, evaluate, check conflicts. Under an
// unchanged snapshot the same request always yields the same decision.
type Engine struct {
	resources    ResourceRepository
	rules        RuleRepository
	reservations ReservationRepository
	sink         ReservationSink
	index        *ConflictIndex
	locks        *propertyLocks
	leadTime     time.Duration
	fallbackLoc  *time.Location
	logger       *slog.Logger
}

func New(
	cfg config.EngineConfig,
	resources ResourceRepository,
	rules RuleRepository,
	reservations ReservationRepository,
	sink ReservationSink,
	logger *slog.Logger,
) (*Engine, error) {
	loc, err := time.LoadLocation(cfg.DefaultTimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid default time zone")
	}

	return &Engine{
		resources:    resources,
		rules:        rules,
		reservations: reservations,
		sink:         sink,
		index:        NewConflictIndex(),
		locks:        newPropertyLocks(),
		leadTime:     cfg.LeadTime,
		fallbackLoc:  loc,
		logger:       logger,
	}, nil
}

// Index exposes the conflict index for status-transition notifications and
// observability. External confirm is a no-op for indexing; cancel and reject
// go through Release.
func (e *Engine) Index() *ConflictIndex {
	return e.index
}

// WarmStart primes the conflict index with the authoritative occupancy of the
// given resources, typically at process start.
func (e *Engine) WarmStart(ctx context.Context, resourceIDs ...uuid.UUID) error {
	for _, id := range resourceIDs {
		active, err := e.reservations.ActiveReservations(ctx, id)
		if err != nil {
			return errs.Wrap(err, "warm-start load failed")
		}
		for _, res := range active {
			e.index.Insert(res)
		}
	}
	return nil
}

// Admit runs one admission pass. Rejections are normal decisions, not
// errors; the error return covers repository failures and configuration
// faults that prevented a decision from being reached at all.
func (e *Engine) Admit(ctx context.Context, req AdmissionRequest, asOf time.Time) (Decision, error) {
	iv, err := interval.New(req.Start, req.End)
	if err != nil {
		return validationRejection("interval end must be after start"), nil
	}
	if req.GuestCount <= 0 {
		return validationRejection("guest count must be positive"), nil
	}
	if e.leadTime > 0 && iv.Start().Before(asOf.Add(e.leadTime)) {
		return validationRejection(fmt.Sprintf("start must be at least %s after submission", e.leadTime)), nil
	}

	chain, err := ResolveChain(ctx, e.resources, req.ResourceID)
	if err != nil {
		if errs.Is(err, ErrResourceNotFound) {
			return validationRejection("resource not found or inactive"), nil
		}
		if errs.Is(err, ErrHierarchyDepth) {
			return configurationRejection("resource hierarchy is cyclic or too deep"), nil
		}
		return Decision{}, err
	}

	target := chain.Target()
	if !target.IsDirectlyBookable() {
		return validationRejection("resource is subdivided; book one of its children instead"), nil
	}
	if req.GuestCount > target.Capacity() {
		return validationRejection(fmt.Sprintf("guest count %d exceeds capacity %d", req.GuestCount, target.Capacity())), nil
	}

	loc, err := chain.Location(e.fallbackLoc)
	if err != nil {
		return configurationRejection("property declares an unknown time zone"), nil
	}

	unlock := e.locks.acquire(chain.Root().ID())
	defer unlock()

	ruleSet, err := GatherRules(ctx, e.rules, chain)
	if err != nil {
		if errs.Is(err, rule.ErrMalformedPayload) {
			return configurationRejection(err.Error()), nil
		}
		return Decision{}, err
	}

	violation, err := evaluate(iv, chain, ruleSet, loc)
	if err != nil {
		return configurationRejection(err.Error()), nil
	}
	if violation != nil {
		e.logDecision(req, "rejected", string(violation.Rule.RuleType()))
		return ruleRejection(violation), nil
	}

	scope, err := ConflictScope(ctx, e.resources, chain)
	if err != nil {
		return Decision{}, err
	}
	for _, resourceID := range scope {
		if blocking := e.index.AnyOverlap(resourceID, iv); blocking != nil {
			e.logDecision(req, "rejected", "conflict")
			return conflictRejection(blocking.ID()), nil
		}
	}

	draft, err := reservation.NewReservation(target.ID(), target.Level(), iv, req.GuestCount, asOf)
	if err != nil {
		return Decision{}, errs.Wrap(err, "minting reservation draft")
	}

	e.index.Insert(draft)
	if err := e.sink.Save(ctx, draft); err != nil {
		e.index.Remove(draft.ID())
		return Decision{}, errs.Wrap(err, "persisting accepted reservation")
	}

	e.logDecision(req, "accepted", "")
	return accepted(draft), nil
}

// Release removes a previously admitted interval from the conflict index, on
// cancellation or external rejection.
func (e *Engine) Release(reservationID uuid.UUID) error {
	if !e.index.Remove(reservationID) {
		return ErrReservationNotFound
	}
	return nil
}

func (e *Engine) logDecision(req AdmissionRequest, outcome, cause string) {
	if e.logger == nil {
		return
	}
	attrs := []any{
		slog.String("resource_id", req.ResourceID.String()),
		slog.Time("start", req.Start),
		slog.Time("end", req.End),
		slog.String("outcome", outcome),
	}
	if cause != "" {
		attrs = append(attrs, slog.String("cause", cause))
	}
	e.logger.Info("admission decided", attrs...)
}
