package request

import (
	"time"

	"booking-admission/internal/usecase"

	"github.com/google/uuid"
)

type AdmitReservationRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	GuestCount int       `json:"guest_count" binding:"required,min=1"`
}

func (r AdmitReservationRequest) ToParams() usecase.AdmitParams {
	return usecase.AdmitParams{
		ResourceID: r.ResourceID,
		Start:      r.StartTime,
		End:        r.EndTime,
		GuestCount: r.GuestCount,
	}
}
