//go:build unit

package resource_test

import (
	"strings"
	"testing"

	"booking-admission/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resourceCase struct {
	name     string
	parentID *uuid.UUID
	level    resource.Level
	tweak    func(*args)
	errIs    error
}

type args struct {
	name        string
	granularity resource.Granularity
	capacity    int
	status      resource.Status
	timeZone    string
}

func TestNewResource(t *testing.T) {
	parentID := uuid.New()

	build := func(tc resourceCase) (*resource.Resource, error) {
		a := args{
			name:        "Seaside Hotel",
			granularity: resource.GranularityWhole,
			capacity:    10,
			status:      resource.StatusActive,
			timeZone:    "UTC",
		}
		if tc.level != resource.LevelProperty {
			a.timeZone = ""
		}
		if tc.tweak != nil {
			tc.tweak(&a)
		}
		return resource.NewResource(
			uuid.New(), tc.parentID, a.name, tc.level, a.granularity, a.capacity, a.status, a.timeZone,
		)
	}

	tests := []resourceCase{
		{
			name:  "valid property",
			level: resource.LevelProperty,
		},
		{
			name:     "valid room under parent",
			level:    resource.LevelRoom,
			parentID: &parentID,
		},
		{
			name:  "empty name",
			level: resource.LevelProperty,
			tweak: func(a *args) { a.name = "   " },
			errIs: resource.ErrEmptyResourceName,
		},
		{
			name:  "name too long",
			level: resource.LevelProperty,
			tweak: func(a *args) { a.name = strings.Repeat("x", resource.MaxResourceNameLength+1) },
			errIs: resource.ErrResourceNameTooLong,
		},
		{
			name:  "invalid level",
			level: resource.Level("floor"),
			errIs: resource.ErrInvalidLevel,
		},
		{
			name:  "invalid granularity",
			level: resource.LevelProperty,
			tweak: func(a *args) { a.granularity = resource.Granularity("partial") },
			errIs: resource.ErrInvalidGranularity,
		},
		{
			name:  "zero capacity",
			level: resource.LevelProperty,
			tweak: func(a *args) { a.capacity = 0 },
			errIs: resource.ErrInvalidCapacity,
		},
		{
			name:     "property with parent",
			level:    resource.LevelProperty,
			parentID: &parentID,
			errIs:    resource.ErrPropertyHasParent,
		},
		{
			name:  "property with unknown time zone",
			level: resource.LevelProperty,
			tweak: func(a *args) { a.timeZone = "Mars/Olympus" },
			errIs: resource.ErrUnknownTimeZone,
		},
		{
			name:  "building without parent",
			level: resource.LevelBuilding,
			errIs: resource.ErrMissingParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := build(tt)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, res.IsActive())
		})
	}
}

func TestIsDirectlyBookable(t *testing.T) {
	whole, err := resource.NewResource(
		uuid.New(), nil, "Hotel", resource.LevelProperty,
		resource.GranularityWhole, 10, resource.StatusActive, "UTC",
	)
	require.NoError(t, err)
	assert.True(t, whole.IsDirectlyBookable())

	subdivided, err := resource.NewResource(
		uuid.New(), nil, "Hotel", resource.LevelProperty,
		resource.GranularitySubdivided, 10, resource.StatusActive, "UTC",
	)
	require.NoError(t, err)
	assert.False(t, subdivided.IsDirectlyBookable())
}

func TestLocation(t *testing.T) {
	t.Run("declared time zone", func(t *testing.T) {
		res, err := resource.NewResource(
			uuid.New(), nil, "Tokyo Hotel", resource.LevelProperty,
			resource.GranularityWhole, 10, resource.StatusActive, "Asia/Tokyo",
		)
		require.NoError(t, err)

		loc, err := res.Location()
		require.NoError(t, err)
		assert.Equal(t, "Asia/Tokyo", loc.String())
	})

	t.Run("empty time zone falls back to UTC", func(t *testing.T) {
		parentID := uuid.New()
		res, err := resource.NewResource(
			uuid.New(), &parentID, "Room 101", resource.LevelRoom,
			resource.GranularityWhole, 2, resource.StatusActive, "",
		)
		require.NoError(t, err)

		loc, err := res.Location()
		require.NoError(t, err)
		assert.Equal(t, "UTC", loc.String())
	})
}
