package response

import (
	"time"

	"booking-admission/internal/engine"

	"github.com/google/uuid"
)

type AdmissionDecisionResponse struct {
	Outcome     string               `json:"outcome"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
	Rejection   *RejectionResponse   `json:"rejection,omitempty"`
}

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resourceId"`
	Level      string    `json:"level"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	GuestCount int       `json:"guestCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RejectionResponse struct {
	Kind                  string     `json:"kind"`
	Reason                string     `json:"reason"`
	RuleID                *uuid.UUID `json:"ruleId,omitempty"`
	RuleType              string     `json:"ruleType,omitempty"`
	Level                 string     `json:"level,omitempty"`
	BlockingReservationID *uuid.UUID `json:"blockingReservationId,omitempty"`
}

func FromDecision(d engine.Decision) AdmissionDecisionResponse {
	resp := AdmissionDecisionResponse{Outcome: string(d.Outcome)}

	if d.Draft != nil {
		resp.Reservation = &ReservationResponse{
			ID:         d.Draft.ID(),
			ResourceID: d.Draft.ResourceID(),
			Level:      d.Draft.Level().String(),
			StartTime:  d.Draft.Slot().Start(),
			EndTime:    d.Draft.Slot().End(),
			Status:     d.Draft.Status().String(),
			GuestCount: d.Draft.GuestCount(),
			CreatedAt:  d.Draft.CreatedAt(),
		}
	}

	if d.Rejection != nil {
		resp.Rejection = &RejectionResponse{
			Kind:                  string(d.Rejection.Kind),
			Reason:                d.Rejection.Reason,
			RuleID:                d.Rejection.RuleID,
			RuleType:              string(d.Rejection.RuleType),
			Level:                 string(d.Rejection.Level),
			BlockingReservationID: d.Rejection.BlockingReservationID,
		}
	}
	return resp
}
