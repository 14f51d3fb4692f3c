package engine

import (
	"time"

	"booking-admission/internal/domain/reservation"
	"booking-admission/internal/domain/resource"
	"booking-admission/internal/domain/rule"

	"github.com/google/uuid"
)

// AdmissionRequest is a candidate reservation as submitted by the caller.
type AdmissionRequest struct {
	ResourceID uuid.UUID
	Start      time.Time
	End        time.Time
	GuestCount int
}

type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

// RejectionKind classifies why an admission was refused.
type RejectionKind string

const (
	// RejectConfiguration: malformed rule payload, broken hierarchy. Fatal,
	// never retried.
	RejectConfiguration RejectionKind = "configuration_error"
	// RejectValidation: malformed request, unknown or unbookable resource.
	RejectValidation RejectionKind = "validation_error"
	// RejectRule: a named rule denied the interval.
	RejectRule RejectionKind = "rule_violation"
	// RejectConflict: an existing reservation occupies the slot.
	RejectConflict RejectionKind = "conflict"
)

// Rejection names exactly what failed: the rule (type, level, id) for rule
// violations, the blocking reservation for conflicts. A generic "unavailable"
// is never produced.
type Rejection struct {
	Kind                  RejectionKind
	Reason                string
	RuleID                *uuid.UUID
	RuleType              rule.Type
	Level                 resource.Level
	BlockingReservationID *uuid.UUID
}

// Decision is the engine's terminal answer for one request. Accepted
// decisions carry the Pending draft already registered in the conflict index.
type Decision struct {
	Outcome   Outcome
	Draft     *reservation.Reservation
	Rejection *Rejection
}

func (d Decision) Accepted() bool {
	return d.Outcome == OutcomeAccepted
}

func accepted(draft *reservation.Reservation) Decision {
	return Decision{Outcome: OutcomeAccepted, Draft: draft}
}

func rejected(r Rejection) Decision {
	return Decision{Outcome: OutcomeRejected, Rejection: &r}
}

func ruleRejection(v *Violation) Decision {
	id := v.Rule.ID()
	return rejected(Rejection{
		Kind:     RejectRule,
		Reason:   v.Reason,
		RuleID:   &id,
		RuleType: v.Rule.RuleType(),
		Level:    v.Rule.Level(),
	})
}

func conflictRejection(blockingID uuid.UUID) Decision {
	return rejected(Rejection{
		Kind:                  RejectConflict,
		Reason:                "interval overlaps an existing reservation",
		BlockingReservationID: &blockingID,
	})
}

func validationRejection(reason string) Decision {
	return rejected(Rejection{Kind: RejectValidation, Reason: reason})
}

func configurationRejection(reason string) Decision {
	return rejected(Rejection{Kind: RejectConfiguration, Reason: reason})
}
