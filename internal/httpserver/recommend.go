package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eliozeb/dinner-sharing-app/internal/metrics"
)

func recommendationsHandler(engine recommender, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs, err := engine.Recommendations(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if m != nil {
			m.RecommendationRequest()
		}
		c.JSON(http.StatusOK, gin.H{
			"popular":     toAPIMenuItems(recs.Popular),
			"fromHistory": toAPIMenuItems(recs.FromHistory),
			"similar":     toAPIMenuItems(recs.Similar),
			"visible":     recs.Visible(),
		})
	}
}
