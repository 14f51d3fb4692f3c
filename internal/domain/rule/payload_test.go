//go:build unit

package rule_test

import (
	"testing"
	"time"

	"booking-admission/internal/domain/rule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		minutes int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", minutes: 0},
		{name: "morning", input: "09:30", minutes: 9*60 + 30},
		{name: "end of day", input: "24:00", minutes: 24 * 60},
		{name: "missing minutes", input: "09", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "garbage", input: "later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.ParseClockTime(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, rule.ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got.Minutes())
		})
	}
}

func TestParseDaySet(t *testing.T) {
	t.Run("accepts abbreviations case-insensitively", func(t *testing.T) {
		days, err := rule.ParseDaySet([]string{"mon", "TUE", " Wed "})
		require.NoError(t, err)
		assert.True(t, days.Has(time.Monday))
		assert.True(t, days.Has(time.Tuesday))
		assert.True(t, days.Has(time.Wednesday))
		assert.False(t, days.Has(time.Sunday))
	})

	t.Run("rejects unknown day", func(t *testing.T) {
		_, err := rule.ParseDaySet([]string{"Mon", "Someday"})
		assert.ErrorIs(t, err, rule.ErrInvalidDay)
	})
}

func TestParsePayload(t *testing.T) {
	t.Run("operating hours", func(t *testing.T) {
		raw := []byte(`{"start":"09:00","end":"17:00","days":["Mon","Tue","Wed","Thu","Fri"]}`)
		p, err := rule.ParsePayload(rule.TypeOperatingHours, raw)
		require.NoError(t, err)

		hours, ok := p.(rule.OperatingHours)
		require.True(t, ok)
		assert.Equal(t, 9*60, hours.Start.Minutes())
		assert.Equal(t, 17*60, hours.End.Minutes())
		assert.True(t, hours.Days.Has(time.Monday))
		assert.False(t, hours.Days.Has(time.Saturday))
	})

	t.Run("operating hours until end of day", func(t *testing.T) {
		raw := []byte(`{"start":"18:00","end":"24:00","days":["Sat"]}`)
		p, err := rule.ParsePayload(rule.TypeOperatingHours, raw)
		require.NoError(t, err)
		assert.Equal(t, 24*60, p.(rule.OperatingHours).End.Minutes())
	})

	t.Run("min duration in hours", func(t *testing.T) {
		p, err := rule.ParsePayload(rule.TypeMinDuration, []byte(`{"value":4,"unit":"hours"}`))
		require.NoError(t, err)
		assert.Equal(t, 4.0, p.(rule.MinDuration).Hours())
	})

	t.Run("max duration in days converts to hours", func(t *testing.T) {
		p, err := rule.ParsePayload(rule.TypeMaxDuration, []byte(`{"value":2,"unit":"days"}`))
		require.NoError(t, err)
		assert.Equal(t, 48.0, p.(rule.MaxDuration).Hours())
	})

	t.Run("blackout dates", func(t *testing.T) {
		p, err := rule.ParsePayload(rule.TypeBlackoutDates, []byte(`{"dates":["2030-12-24","2030-12-25"]}`))
		require.NoError(t, err)

		blackout := p.(rule.BlackoutDates)
		assert.True(t, blackout.Contains(time.Date(2030, 12, 25, 0, 0, 0, 0, time.UTC)))
		assert.False(t, blackout.Contains(time.Date(2030, 12, 26, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("days of week", func(t *testing.T) {
		p, err := rule.ParsePayload(rule.TypeDaysOfWeek, []byte(`{"days":["Sat","Sun"]}`))
		require.NoError(t, err)
		assert.True(t, p.(rule.DaysOfWeek).Days.Has(time.Saturday))
	})

	t.Run("malformed payloads", func(t *testing.T) {
		tests := []struct {
			name string
			typ  rule.Type
			raw  string
		}{
			{name: "invalid JSON", typ: rule.TypeDaysOfWeek, raw: `{`},
			{name: "window end before start", typ: rule.TypeOperatingHours, raw: `{"start":"17:00","end":"09:00","days":["Mon"]}`},
			{name: "empty day set", typ: rule.TypeOperatingHours, raw: `{"start":"09:00","end":"17:00","days":[]}`},
			{name: "unknown day name", typ: rule.TypeDaysOfWeek, raw: `{"days":["Funday"]}`},
			{name: "zero duration", typ: rule.TypeMinDuration, raw: `{"value":0,"unit":"hours"}`},
			{name: "negative duration", typ: rule.TypeMaxDuration, raw: `{"value":-1,"unit":"hours"}`},
			{name: "unknown duration unit", typ: rule.TypeMinDuration, raw: `{"value":1,"unit":"weeks"}`},
			{name: "empty blackout list", typ: rule.TypeBlackoutDates, raw: `{"dates":[]}`},
			{name: "bad blackout date", typ: rule.TypeBlackoutDates, raw: `{"dates":["24/12/2030"]}`},
			{name: "unknown rule type", typ: rule.Type("quiet_hours"), raw: `{}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := rule.ParsePayload(tt.typ, []byte(tt.raw))
				assert.ErrorIs(t, err, rule.ErrMalformedPayload)
			})
		}
	})
}

func TestRuleAppliesOn(t *testing.T) {
	from := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2030, 6, 30, 0, 0, 0, 0, time.UTC)

	payload, err := rule.ParsePayload(rule.TypeDaysOfWeek, []byte(`{"days":["Mon"]}`))
	require.NoError(t, err)

	newRule := func(window rule.Window, status rule.Status) *rule.Rule {
		r, err := rule.NewRule(
			uuid.New(), uuid.New(), "property", "June weekdays",
			rule.TypeDaysOfWeek, payload, window, status,
		)
		require.NoError(t, err)
		return r
	}

	t.Run("open window always applies", func(t *testing.T) {
		r := newRule(rule.Window{}, rule.StatusActive)
		assert.True(t, r.AppliesOn(time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("inside window", func(t *testing.T) {
		r := newRule(rule.Window{From: &from, To: &to}, rule.StatusActive)
		assert.True(t, r.AppliesOn(time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		r := newRule(rule.Window{From: &from, To: &to}, rule.StatusActive)
		assert.True(t, r.AppliesOn(from))
		assert.True(t, r.AppliesOn(to))
	})

	t.Run("bounds cover the same civil date ahead of UTC", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		r := newRule(rule.Window{From: &from, To: &to}, rule.StatusActive)

		// Tokyo midnight on June 1 is still May 31 in UTC instants, but the
		// civil date matches the From bound.
		assert.True(t, r.AppliesOn(time.Date(2030, 6, 1, 0, 0, 0, 0, tokyo)))
		assert.True(t, r.AppliesOn(time.Date(2030, 6, 30, 23, 0, 0, 0, tokyo)))
		assert.False(t, r.AppliesOn(time.Date(2030, 7, 1, 0, 0, 0, 0, tokyo)))
	})

	t.Run("outside window", func(t *testing.T) {
		r := newRule(rule.Window{From: &from, To: &to}, rule.StatusActive)
		assert.False(t, r.AppliesOn(time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("inactive rule never applies", func(t *testing.T) {
		r := newRule(rule.Window{}, rule.StatusInactive)
		assert.False(t, r.AppliesOn(time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)))
	})
}
