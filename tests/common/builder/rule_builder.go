//go:build unit

package builder

import (
	"fmt"
	"time"

	"booking-admission/internal/domain/resource"
	"booking-admission/internal/domain/rule"

	"github.com/google/uuid"
)

type RuleBuilder struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Level      resource.Level
	Name       string
	Payload    rule.Payload
	Window     rule.Window
	Status     rule.Status
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		ID:         uuid.New(),
		ResourceID: uuid.New(),
		Level:      resource.LevelProperty,
		Name:       "Test Rule",
		Payload:    OperatingHoursPayload("09:00", "17:00", time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
		Status:     rule.StatusActive,
	}
}

func (b *RuleBuilder) On(res *resource.Resource) *RuleBuilder {
	b.ResourceID = res.ID()
	b.Level = res.Level()
	return b
}

func (b *RuleBuilder) WithName(name string) *RuleBuilder {
	b.Name = name
	return b
}

func (b *RuleBuilder) WithPayload(p rule.Payload) *RuleBuilder {
	b.Payload = p
	return b
}

func (b *RuleBuilder) WithWindow(from, to *time.Time) *RuleBuilder {
	b.Window = rule.Window{From: from, To: to}
	return b
}

func (b *RuleBuilder) Inactive() *RuleBuilder {
	b.Status = rule.StatusInactive
	return b
}

func (b *RuleBuilder) Build() *rule.Rule {
	r, err := rule.NewRule(
		b.ID, b.ResourceID, b.Level, b.Name, b.Payload.Type(), b.Payload, b.Window, b.Status,
	)
	if err != nil {
		panic(fmt.Sprintf("RuleBuilder produced invalid rule: %v", err))
	}
	return r
}

// Payload shorthands for tests.

func OperatingHoursPayload(start, end string, days ...time.Weekday) rule.OperatingHours {
	s, err := rule.ParseClockTime(start)
	if err != nil {
		panic(err)
	}
	e, err := rule.ParseClockTime(end)
	if err != nil {
		panic(err)
	}
	return rule.OperatingHours{Start: s, End: e, Days: rule.NewDaySet(days...)}
}

func DaysOfWeekPayload(days ...time.Weekday) rule.DaysOfWeek {
	return rule.DaysOfWeek{Days: rule.NewDaySet(days...)}
}

func MinDurationPayload(value int, unit rule.DurationUnit) rule.MinDuration {
	return rule.MinDuration{DurationBound: rule.DurationBound{Value: value, Unit: unit}}
}

func MaxDurationPayload(value int, unit rule.DurationUnit) rule.MaxDuration {
	return rule.MaxDuration{DurationBound: rule.DurationBound{Value: value, Unit: unit}}
}

func BlackoutPayload(dates ...string) rule.BlackoutDates {
	parsed := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			panic(err)
		}
		parsed = append(parsed, d)
	}
	return rule.NewBlackoutDates(parsed)
}
