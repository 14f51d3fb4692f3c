package api

import (
	"net/http"

	"booking-admission/internal/engine"
	reqdto "booking-admission/internal/handler/dto/request"
	resdto "booking-admission/internal/handler/dto/response"
	"booking-admission/internal/pkg/errs"
	"booking-admission/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdmissionHandler struct {
	admissionUseCase usecase.AdmissionUseCase
}

func NewAdmissionHandler(admissionUseCase usecase.AdmissionUseCase) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUseCase: admissionUseCase,
	}
}

// @Summary Admit reservation
// @Description Decide whether a candidate reservation is admissible and, if so, reserve the slot
// @Tags admissions
// @Accept json
// @Produce json
// @Param request body reqdto.AdmitReservationRequest true "Candidate reservation"
// @Success 201 {object} resdto.AdmissionDecisionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} resdto.AdmissionDecisionResponse
// @Failure 422 {object} resdto.AdmissionDecisionResponse
// @Router /admissions [post]
func (h *AdmissionHandler) AdmitReservation(c *gin.Context) {
	var req reqdto.AdmitReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	decision, err := h.admissionUseCase.Admit(c.Request.Context(), req.ToParams())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(statusForDecision(decision), resdto.FromDecision(decision))
}

// @Summary Release reservation
// @Description Remove a previously admitted reservation's interval on cancellation
// @Tags admissions
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *AdmissionHandler) ReleaseReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	if err := h.admissionUseCase.Release(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func statusForDecision(d engine.Decision) int {
	if d.Accepted() {
		return http.StatusCreated
	}

	switch d.Rejection.Kind {
	case engine.RejectValidation:
		return http.StatusBadRequest
	case engine.RejectConfiguration:
		return http.StatusUnprocessableEntity
	case engine.RejectRule:
		return http.StatusUnprocessableEntity
	case engine.RejectConflict:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}
