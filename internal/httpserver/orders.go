package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
)

// listOrdersHandler returns past orders, newest first. An optional
// ?date=YYYY-MM-DD narrows the list to that calendar day in the
// server's local zone.
func listOrdersHandler(history historyLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			orders []domain.CompletedOrder
			err    error
		)
		if raw := c.Query("date"); raw != "" {
			day, parseErr := time.ParseInLocation("2006-01-02", raw, time.Local)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "date must be YYYY-MM-DD"})
				return
			}
			orders, err = history.ListByDate(c.Request.Context(), day)
		} else {
			orders, err = history.List(c.Request.Context())
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orders": toAPIOrders(orders),
			"count":  len(orders),
		})
	}
}

// exportOrdersHandler streams the full history as a CSV attachment.
func exportOrdersHandler(history historyLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := fmt.Sprintf("order_history_%s.csv", time.Now().In(time.Local).Format("2006-01-02"))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if err := history.ExportCSV(c.Request.Context(), c.Writer, time.Local); err != nil {
			// Headers are already written; attach the error for gin's logger.
			_ = c.Error(err)
			c.Status(http.StatusInternalServerError)
		}
	}
}
