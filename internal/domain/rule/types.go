package rule

import (
	"errors"
	"strings"
	"time"
)

// Type enumerates the supported rule kinds. EvaluationOrder fixes the
// sequence the admission engine applies them in: structural checks first,
// date-enumerating checks last.
type Type string

const (
	TypeDaysOfWeek     Type = "days_of_week"
	TypeOperatingHours Type = "operating_hours"
	TypeMinDuration    Type = "min_duration"
	TypeMaxDuration    Type = "max_duration"
	TypeBlackoutDates  Type = "blackout_dates"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeDaysOfWeek, TypeOperatingHours, TypeMinDuration, TypeMaxDuration, TypeBlackoutDates:
		return true
	default:
		return false
	}
}

func EvaluationOrder() []Type {
	return []Type{
		TypeDaysOfWeek,
		TypeOperatingHours,
		TypeMinDuration,
		TypeMaxDuration,
		TypeBlackoutDates,
	}
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

var ErrInvalidDay = errors.New("invalid day of week")

// DaySet is a bitmask of weekdays, bit n = time.Weekday(n).
type DaySet uint8

var dayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

var dayAbbrev = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func NewDaySet(days ...time.Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// ParseDaySet accepts the stored day abbreviations ("Mon", "Tue", ...),
// case-insensitively.
func ParseDaySet(names []string) (DaySet, error) {
	var s DaySet
	for _, name := range names {
		d, ok := dayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, ErrInvalidDay
		}
		s |= 1 << uint(d)
	}
	return s, nil
}

func (s DaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s DaySet) IsEmpty() bool {
	return s == 0
}

func (s DaySet) Names() []string {
	var names []string
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			names = append(names, dayAbbrev[d])
		}
	}
	return names
}

func (s DaySet) String() string {
	return strings.Join(s.Names(), ",")
}
