package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidLevel        = errors.New("invalid resource level")
	ErrInvalidGranularity  = errors.New("invalid booking granularity")
	ErrInvalidStatus       = errors.New("invalid resource status")
	ErrInvalidCapacity     = errors.New("capacity must be positive")
	ErrMissingParent       = errors.New("non-property resource requires a parent")
	ErrPropertyHasParent   = errors.New("property cannot have a parent")
	ErrUnknownTimeZone     = errors.New("unknown time zone")
)

const MaxResourceNameLength = 255

// Resource is one node of the booking tree. Properties carry the time zone
// local-clock rules are evaluated in; buildings and rooms inherit it through
// their ancestor chain.
type Resource struct {
	id          uuid.UUID
	parentID    *uuid.UUID
	name        string
	level       Level
	granularity Granularity
	capacity    int
	status      Status
	timeZone    string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewResource(
	id uuid.UUID,
	parentID *uuid.UUID,
	name string,
	level Level,
	granularity Granularity,
	capacity int,
	status Status,
	timeZone string,
) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}
	if !level.IsValid() {
		return nil, ErrInvalidLevel
	}
	if !granularity.IsValid() {
		return nil, ErrInvalidGranularity
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	if level == LevelProperty {
		if parentID != nil {
			return nil, ErrPropertyHasParent
		}
		if _, err := time.LoadLocation(timeZone); err != nil {
			return nil, ErrUnknownTimeZone
		}
	} else if parentID == nil {
		return nil, ErrMissingParent
	}

	return &Resource{
		id:          id,
		parentID:    parentID,
		name:        name,
		level:       level,
		granularity: granularity,
		capacity:    capacity,
		status:      status,
		timeZone:    timeZone,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	parentID *uuid.UUID,
	name string,
	level Level,
	granularity Granularity,
	capacity int,
	status Status,
	timeZone string,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:          id,
		parentID:    parentID,
		name:        name,
		level:       level,
		granularity: granularity,
		capacity:    capacity,
		status:      status,
		timeZone:    timeZone,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Resource) IsActive() bool {
	return r.status == StatusActive
}

// IsDirectlyBookable reports whether reservations may target this resource
// itself. A subdivided resource only exposes its children as bookable units.
func (r *Resource) IsDirectlyBookable() bool {
	return r.granularity == GranularityWhole
}

// Location resolves the resource's declared time zone. Empty means UTC;
// non-property levels normally leave it empty and inherit from the property.
func (r *Resource) Location() (*time.Location, error) {
	if r.timeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(r.timeZone)
	if err != nil {
		return nil, ErrUnknownTimeZone
	}
	return loc, nil
}

func (r *Resource) ID() uuid.UUID            { return r.id }
func (r *Resource) ParentID() *uuid.UUID     { return r.parentID }
func (r *Resource) Name() string             { return r.name }
func (r *Resource) Level() Level             { return r.level }
func (r *Resource) Granularity() Granularity { return r.granularity }
func (r *Resource) Capacity() int            { return r.capacity }
func (r *Resource) Status() Status           { return r.status }
func (r *Resource) TimeZone() string         { return r.timeZone }
func (r *Resource) CreatedAt() time.Time     { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time     { return r.updatedAt }
