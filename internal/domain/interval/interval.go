package interval

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval end must be after start")

// Interval is a half-open time span [start, end) over absolute instants.
// All instants are normalized to UTC at construction so comparisons never
// depend on the wall-clock representation of the inputs.
type Interval struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}

	return Interval{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

func (iv Interval) Hours() float64 {
	return iv.Duration().Hours()
}

func (iv Interval) IsZero() bool {
	return iv.start.IsZero() && iv.end.IsZero()
}

// Overlaps reports whether the two half-open spans share any instant.
// Touching endpoints ([a,b) and [b,c)) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

func (iv Interval) Contains(instant time.Time) bool {
	t := instant.UTC()
	return !t.Before(iv.start) && t.Before(iv.end)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}

// DatesIn returns every civil date the interval touches in the given
// location, in order. The end instant is exclusive, so an interval ending
// exactly at midnight does not touch the following date.
func (iv Interval) DatesIn(loc *time.Location) []time.Time {
	var dates []time.Time

	day := startOfDay(iv.start.In(loc))
	for day.Before(iv.end.In(loc)) {
		dates = append(dates, day)
		day = day.AddDate(0, 0, 1)
	}
	return dates
}

// ClockSpanOn returns the portion of the interval that falls on the given
// civil date, as wall-clock minutes on that date. Elapsed time would drift by
// an hour on DST transition days, so the minutes are read off the clock
// face instead. ok is false when the interval does not touch the date at all.
func (iv Interval) ClockSpanOn(date time.Time, loc *time.Location) (startMin, endMin int, ok bool) {
	dayStart := startOfDay(date.In(loc))
	dayEnd := dayStart.AddDate(0, 0, 1)

	from := iv.start.In(loc)
	to := iv.end.In(loc)
	if !from.Before(dayEnd) || !to.After(dayStart) {
		return 0, 0, false
	}

	if from.Before(dayStart) {
		from = dayStart
	}
	if to.After(dayEnd) {
		to = dayEnd
	}

	startMin = from.Hour()*60 + from.Minute()
	if to.Equal(dayEnd) {
		endMin = 24 * 60
	} else {
		endMin = to.Hour()*60 + to.Minute()
	}
	return startMin, endMin, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
