//go:build unit

package interval_test

import (
	"testing"
	"time"

	"booking-admission/internal/domain/interval"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end time.Time) interval.Interval {
	t.Helper()
	iv, err := interval.New(start, end)
	require.NoError(t, err)
	return iv
}

func TestNew(t *testing.T) {
	base := time.Date(2030, 6, 3, 10, 0, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		iv, err := interval.New(base, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, iv.Duration())
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := interval.New(base, base)
		assert.ErrorIs(t, err, interval.ErrInvalidInterval)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := interval.New(base, base.Add(-time.Hour))
		assert.ErrorIs(t, err, interval.ErrInvalidInterval)
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		iv := mustInterval(t, base.In(tokyo), base.Add(time.Hour).In(tokyo))
		assert.Equal(t, time.UTC, iv.Start().Location())
		assert.True(t, iv.Start().Equal(base))
	})
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2030, 6, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		a, b     interval.Interval
		overlaps bool
	}{
		{
			name:     "identical intervals",
			a:        mustInterval(t, base, base.Add(2*time.Hour)),
			b:        mustInterval(t, base, base.Add(2*time.Hour)),
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        mustInterval(t, base, base.Add(2*time.Hour)),
			b:        mustInterval(t, base.Add(time.Hour), base.Add(3*time.Hour)),
			overlaps: true,
		},
		{
			name:     "containment",
			a:        mustInterval(t, base, base.Add(4*time.Hour)),
			b:        mustInterval(t, base.Add(time.Hour), base.Add(2*time.Hour)),
			overlaps: true,
		},
		{
			name:     "touching endpoints do not overlap",
			a:        mustInterval(t, base, base.Add(time.Hour)),
			b:        mustInterval(t, base.Add(time.Hour), base.Add(2*time.Hour)),
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        mustInterval(t, base, base.Add(time.Hour)),
			b:        mustInterval(t, base.Add(3*time.Hour), base.Add(4*time.Hour)),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestContains(t *testing.T) {
	base := time.Date(2030, 6, 3, 10, 0, 0, 0, time.UTC)
	iv := mustInterval(t, base, base.Add(2*time.Hour))

	assert.True(t, iv.Contains(base), "start is inside")
	assert.True(t, iv.Contains(base.Add(time.Hour)))
	assert.False(t, iv.Contains(base.Add(2*time.Hour)), "end is exclusive")
	assert.False(t, iv.Contains(base.Add(-time.Second)))
}

func TestDatesIn(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		iv := mustInterval(t,
			time.Date(2030, 6, 3, 10, 0, 0, 0, time.UTC),
			time.Date(2030, 6, 3, 12, 0, 0, 0, time.UTC),
		)
		dates := iv.DatesIn(time.UTC)
		require.Len(t, dates, 1)
		assert.Equal(t, "2030-06-03", dates[0].Format("2006-01-02"))
	})

	t.Run("spans midnight", func(t *testing.T) {
		iv := mustInterval(t,
			time.Date(2030, 6, 3, 22, 0, 0, 0, time.UTC),
			time.Date(2030, 6, 5, 2, 0, 0, 0, time.UTC),
		)
		var got []string
		for _, d := range iv.DatesIn(time.UTC) {
			got = append(got, d.Format("2006-01-02"))
		}
		want := []string{"2030-06-03", "2030-06-04", "2030-06-05"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("dates mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("end at midnight excludes following date", func(t *testing.T) {
		iv := mustInterval(t,
			time.Date(2030, 6, 3, 20, 0, 0, 0, time.UTC),
			time.Date(2030, 6, 4, 0, 0, 0, 0, time.UTC),
		)
		dates := iv.DatesIn(time.UTC)
		require.Len(t, dates, 1)
		assert.Equal(t, "2030-06-03", dates[0].Format("2006-01-02"))
	})

	t.Run("location shifts the civil dates", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		// 22:00-23:00 UTC is 07:00-08:00 on the next day in Tokyo
		iv := mustInterval(t,
			time.Date(2030, 6, 3, 22, 0, 0, 0, time.UTC),
			time.Date(2030, 6, 3, 23, 0, 0, 0, time.UTC),
		)
		dates := iv.DatesIn(tokyo)
		require.Len(t, dates, 1)
		assert.Equal(t, "2030-06-04", dates[0].Format("2006-01-02"))
	})
}

func TestClockSpanOn(t *testing.T) {
	iv := mustInterval(t,
		time.Date(2030, 6, 3, 22, 0, 0, 0, time.UTC),
		time.Date(2030, 6, 4, 2, 30, 0, 0, time.UTC),
	)

	t.Run("first date holds the portion until midnight", func(t *testing.T) {
		start, end, ok := iv.ClockSpanOn(time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC), time.UTC)
		require.True(t, ok)
		assert.Equal(t, 22*60, start)
		assert.Equal(t, 24*60, end)
	})

	t.Run("second date holds the remainder", func(t *testing.T) {
		start, end, ok := iv.ClockSpanOn(time.Date(2030, 6, 4, 0, 0, 0, 0, time.UTC), time.UTC)
		require.True(t, ok)
		assert.Equal(t, 0, start)
		assert.Equal(t, 2*60+30, end)
	})

	t.Run("untouched date", func(t *testing.T) {
		_, _, ok := iv.ClockSpanOn(time.Date(2030, 6, 5, 0, 0, 0, 0, time.UTC), time.UTC)
		assert.False(t, ok)
	})

	t.Run("wall clock on a spring-forward day", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		// Clocks jump from 02:00 to 03:00 on 2030-03-10, so only nine hours
		// elapse before 10:00 local. The span must still read 10:00-12:00.
		dst := mustInterval(t,
			time.Date(2030, 3, 10, 10, 0, 0, 0, ny),
			time.Date(2030, 3, 10, 12, 0, 0, 0, ny),
		)

		start, end, ok := dst.ClockSpanOn(time.Date(2030, 3, 10, 0, 0, 0, 0, ny), ny)
		require.True(t, ok)
		assert.Equal(t, 10*60, start)
		assert.Equal(t, 12*60, end)
	})
}
