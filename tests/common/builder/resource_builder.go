//go:build unit

package builder

import (
	"fmt"
	"time"

	"booking-admission/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID          uuid.UUID
	ParentID    *uuid.UUID
	Name        string
	Level       resource.Level
	Granularity resource.Granularity
	Capacity    int
	Status      resource.Status
	TimeZone    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	now := time.Now().UTC()
	return &ResourceBuilder{
		ID:          uuid.New(),
		Name:        "Test Property",
		Level:       resource.LevelProperty,
		Granularity: resource.GranularityWhole,
		Capacity:    10,
		Status:      resource.StatusActive,
		TimeZone:    "UTC",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ResourceBuilder) WithID(id uuid.UUID) *ResourceBuilder {
	b.ID = id
	return b
}

func (b *ResourceBuilder) WithName(name string) *ResourceBuilder {
	b.Name = name
	return b
}

func (b *ResourceBuilder) WithCapacity(capacity int) *ResourceBuilder {
	b.Capacity = capacity
	return b
}

func (b *ResourceBuilder) WithTimeZone(tz string) *ResourceBuilder {
	b.TimeZone = tz
	return b
}

func (b *ResourceBuilder) WithStatus(status resource.Status) *ResourceBuilder {
	b.Status = status
	return b
}

func (b *ResourceBuilder) Subdivided() *ResourceBuilder {
	b.Granularity = resource.GranularitySubdivided
	return b
}

// AsBuildingOf moves the builder one level down, under the given parent.
func (b *ResourceBuilder) AsBuildingOf(parentID uuid.UUID) *ResourceBuilder {
	b.Level = resource.LevelBuilding
	b.ParentID = &parentID
	b.TimeZone = ""
	return b
}

func (b *ResourceBuilder) AsRoomOf(parentID uuid.UUID) *ResourceBuilder {
	b.Level = resource.LevelRoom
	b.ParentID = &parentID
	b.TimeZone = ""
	return b
}

func (b *ResourceBuilder) Build() *resource.Resource {
	res, err := resource.NewResource(
		b.ID, b.ParentID, b.Name, b.Level, b.Granularity, b.Capacity, b.Status, b.TimeZone,
	)
	if err != nil {
		panic(fmt.Sprintf("ResourceBuilder produced invalid resource: %v", err))
	}
	return res
}
