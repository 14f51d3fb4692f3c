package rule

import (
	"errors"
	"time"

	"booking-admission/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrInvalidType      = errors.New("invalid rule type")
	ErrInvalidRuleState = errors.New("invalid rule status")
	ErrPayloadTypeMatch = errors.New("payload does not match rule type")
	ErrInvalidWindow    = errors.New("applicability window end precedes start")
)

// Window optionally bounds the dates a rule is in force. Nil bounds are open.
type Window struct {
	From *time.Time
	To   *time.Time
}

// Contains compares civil dates, each read in its own location, so a bound
// stored at UTC midnight still covers the same calendar date evaluated in an
// east-of-UTC property zone. Both bounds are inclusive.
func (w Window) Contains(date time.Time) bool {
	if w.From != nil && civilBefore(date, *w.From) {
		return false
	}
	if w.To != nil && civilBefore(*w.To, date) {
		return false
	}
	return true
}

func civilBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// Rule binds a typed payload to one resource node. Rules are immutable during
// evaluation; the engine only ever sees a snapshot.
type Rule struct {
	id         uuid.UUID
	resourceID uuid.UUID
	level      resource.Level
	name       string
	ruleType   Type
	payload    Payload
	window     Window
	status     Status
}

func NewRule(
	id uuid.UUID,
	resourceID uuid.UUID,
	level resource.Level,
	name string,
	ruleType Type,
	payload Payload,
	window Window,
	status Status,
) (*Rule, error) {
	if !ruleType.IsValid() {
		return nil, ErrInvalidType
	}
	if !level.IsValid() {
		return nil, resource.ErrInvalidLevel
	}
	if !status.IsValid() {
		return nil, ErrInvalidRuleState
	}
	if payload == nil || payload.Type() != ruleType {
		return nil, ErrPayloadTypeMatch
	}
	if window.From != nil && window.To != nil && window.To.Before(*window.From) {
		return nil, ErrInvalidWindow
	}

	return &Rule{
		id:         id,
		resourceID: resourceID,
		level:      level,
		name:       name,
		ruleType:   ruleType,
		payload:    payload,
		window:     window,
		status:     status,
	}, nil
}

func (r *Rule) IsActive() bool {
	return r.status == StatusActive
}

// AppliesOn reports whether the rule is in force on the given civil date.
func (r *Rule) AppliesOn(date time.Time) bool {
	return r.status == StatusActive && r.window.Contains(date)
}

func (r *Rule) ID() uuid.UUID         { return r.id }
func (r *Rule) ResourceID() uuid.UUID { return r.resourceID }
func (r *Rule) Level() resource.Level { return r.level }
func (r *Rule) Name() string          { return r.name }
func (r *Rule) RuleType() Type        { return r.ruleType }
func (r *Rule) Payload() Payload      { return r.payload }
func (r *Rule) ApplyWindow() Window   { return r.window }
func (r *Rule) Status() Status        { return r.status }
