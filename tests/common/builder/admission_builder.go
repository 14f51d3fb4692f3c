//go:build unit

package builder

import (
	"time"

	"booking-admission/internal/engine"

	"github.com/google/uuid"
)

type AdmissionRequestBuilder struct {
	ResourceID uuid.UUID
	Start      time.Time
	End        time.Time
	GuestCount int
}

// NewAdmissionRequestBuilder defaults to a two-hour weekday-morning slot well
// in the future, which passes the default rules of the other builders.
func NewAdmissionRequestBuilder() *AdmissionRequestBuilder {
	// Monday 2030-06-03, 10:00-12:00 UTC
	start := time.Date(2030, 6, 3, 10, 0, 0, 0, time.UTC)
	return &AdmissionRequestBuilder{
		ResourceID: uuid.New(),
		Start:      start,
		End:        start.Add(2 * time.Hour),
		GuestCount: 2,
	}
}

func (b *AdmissionRequestBuilder) For(resourceID uuid.UUID) *AdmissionRequestBuilder {
	b.ResourceID = resourceID
	return b
}

func (b *AdmissionRequestBuilder) WithSlot(start, end time.Time) *AdmissionRequestBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *AdmissionRequestBuilder) WithGuests(n int) *AdmissionRequestBuilder {
	b.GuestCount = n
	return b
}

func (b *AdmissionRequestBuilder) Build() engine.AdmissionRequest {
	return engine.AdmissionRequest{
		ResourceID: b.ResourceID,
		Start:      b.Start,
		End:        b.End,
		GuestCount: b.GuestCount,
	}
}
