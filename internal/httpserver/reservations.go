package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eliozeb/dinner-sharing-app/internal/metrics"
	"github.com/eliozeb/dinner-sharing-app/internal/reservation"
)

// createReservationHandler validates and stores a reservation. A
// request that fails validation is answered with 422 and the full
// per-field error map so the form can mark every bad field at once.
func createReservationHandler(svc reservationService, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in reservation.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid reservation payload"})
			return
		}

		result, err := svc.Submit(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		if m != nil {
			m.ReservationOutcome(result.Valid)
		}

		if !result.Valid {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"valid":  false,
				"errors": result.Errors,
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"valid": true})
	}
}
