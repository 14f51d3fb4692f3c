package rule

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrMalformedPayload = errors.New("malformed rule payload")
	ErrInvalidClockTime = errors.New("invalid clock time, expected HH:MM")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
)

const (
	clockFormat = "15:04"
	dateFormat  = "2006-01-02"
)

// ClockTime is a local time of day as minutes from midnight. 1440 is a valid
// window end meaning end-of-day.
type ClockTime int

func ParseClockTime(s string) (ClockTime, error) {
	if s == "24:00" {
		return ClockTime(24 * 60), nil
	}
	t, err := time.Parse(clockFormat, s)
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func (c ClockTime) Minutes() int {
	return int(c)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Payload is the typed value of a rule, one variant per rule type. Raw stored
// values parse through ParsePayload at the repository boundary so evaluation
// never sees loosely-typed data.
type Payload interface {
	Type() Type
}

// OperatingHours limits the local clock window [Start, End) on the listed
// days.
type OperatingHours struct {
	Start ClockTime
	End   ClockTime
	Days  DaySet
}

func (OperatingHours) Type() Type { return TypeOperatingHours }

// DurationBound is a minimum or maximum duration with the unit the rule was
// authored in.
type DurationBound struct {
	Value int
	Unit  DurationUnit
}

type DurationUnit string

const (
	UnitHours DurationUnit = "hours"
	UnitDays  DurationUnit = "days"
)

func (b DurationBound) Hours() float64 {
	if b.Unit == UnitDays {
		return float64(b.Value) * 24
	}
	return float64(b.Value)
}

func (b DurationBound) String() string {
	return fmt.Sprintf("%d %s", b.Value, b.Unit)
}

// MinDuration and MaxDuration share the bound shape but stay distinct types
// so a payload can never be attached to the wrong rule type.
type MinDuration struct{ DurationBound }

func (MinDuration) Type() Type { return TypeMinDuration }

type MaxDuration struct{ DurationBound }

func (MaxDuration) Type() Type { return TypeMaxDuration }

// BlackoutDates lists civil dates on which no reservation may start or span.
type BlackoutDates struct {
	dates map[string]struct{}
}

func NewBlackoutDates(dates []time.Time) BlackoutDates {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d.Format(dateFormat)] = struct{}{}
	}
	return BlackoutDates{dates: set}
}

func (BlackoutDates) Type() Type { return TypeBlackoutDates }

func (b BlackoutDates) Contains(date time.Time) bool {
	_, ok := b.dates[date.Format(dateFormat)]
	return ok
}

func (b BlackoutDates) Dates() []string {
	out := make([]string, 0, len(b.dates))
	for d := range b.dates {
		out = append(out, d)
	}
	return out
}

// DaysOfWeek restricts bookable weekdays to the allowed set.
type DaysOfWeek struct {
	Days DaySet
}

func (DaysOfWeek) Type() Type { return TypeDaysOfWeek }

type operatingHoursJSON struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days"`
}

type durationBoundJSON struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type blackoutDatesJSON struct {
	Dates []string `json:"dates"`
}

type daysOfWeekJSON struct {
	Days []string `json:"days"`
}

// ParsePayload decodes a stored rule value into its typed variant. Any
// failure wraps ErrMalformedPayload; the caller surfaces it as a
// configuration error instead of skipping the rule.
func ParsePayload(t Type, raw []byte) (Payload, error) {
	switch t {
	case TypeOperatingHours:
		var v operatingHoursJSON
		if err := strictUnmarshal(raw, &v); err != nil {
			return nil, err
		}
		start, err := ParseClockTime(v.Start)
		if err != nil {
			return nil, malformed(err)
		}
		end, err := ParseClockTime(v.End)
		if err != nil {
			return nil, malformed(err)
		}
		if end <= start {
			return nil, malformed(errors.New("window end must be after start"))
		}
		days, err := ParseDaySet(v.Days)
		if err != nil {
			return nil, malformed(err)
		}
		if days.IsEmpty() {
			return nil, malformed(errors.New("day set cannot be empty"))
		}
		return OperatingHours{Start: start, End: end, Days: days}, nil

	case TypeMinDuration, TypeMaxDuration:
		var v durationBoundJSON
		if err := strictUnmarshal(raw, &v); err != nil {
			return nil, err
		}
		bound, err := parseDurationBound(v)
		if err != nil {
			return nil, err
		}
		if t == TypeMinDuration {
			return MinDuration{bound}, nil
		}
		return MaxDuration{bound}, nil

	case TypeBlackoutDates:
		var v blackoutDatesJSON
		if err := strictUnmarshal(raw, &v); err != nil {
			return nil, err
		}
		if len(v.Dates) == 0 {
			return nil, malformed(errors.New("blackout date list cannot be empty"))
		}
		dates := make([]time.Time, 0, len(v.Dates))
		for _, s := range v.Dates {
			d, err := time.Parse(dateFormat, s)
			if err != nil {
				return nil, malformed(ErrInvalidDate)
			}
			dates = append(dates, d)
		}
		return NewBlackoutDates(dates), nil

	case TypeDaysOfWeek:
		var v daysOfWeekJSON
		if err := strictUnmarshal(raw, &v); err != nil {
			return nil, err
		}
		days, err := ParseDaySet(v.Days)
		if err != nil {
			return nil, malformed(err)
		}
		if days.IsEmpty() {
			return nil, malformed(errors.New("day set cannot be empty"))
		}
		return DaysOfWeek{Days: days}, nil

	default:
		return nil, malformed(fmt.Errorf("unknown rule type %q", t))
	}
}

func parseDurationBound(v durationBoundJSON) (DurationBound, error) {
	if v.Value <= 0 {
		return DurationBound{}, malformed(errors.New("duration value must be positive"))
	}
	unit := DurationUnit(v.Unit)
	if unit != UnitHours && unit != UnitDays {
		return DurationBound{}, malformed(fmt.Errorf("unknown duration unit %q", v.Unit))
	}
	return DurationBound{Value: v.Value, Unit: unit}, nil
}

func strictUnmarshal(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return malformed(err)
	}
	return nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
}
