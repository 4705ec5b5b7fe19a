package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eliozeb/dinner-sharing-app/internal/catalog"
	"github.com/eliozeb/dinner-sharing-app/internal/metrics"
)

// listMenuHandler serves the filtered catalog. An empty result is a
// regular 200 with an empty list, never an error.
func listMenuHandler(store catalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.Items()
		if err != nil {
			respondError(c, err)
			return
		}

		category := c.DefaultQuery("category", catalog.CategoryAll)
		query := c.Query("q")
		filtered := catalog.Filter(items, category, query)

		c.JSON(http.StatusOK, gin.H{
			"items":    toAPIMenuItems(filtered),
			"count":    len(filtered),
			"category": category,
			"query":    query,
		})
	}
}

func listCategoriesHandler(store catalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.Categories()
		if err != nil {
			respondError(c, err)
			return
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// reloadMenuHandler schedules a debounced catalog reload. The fetch
// happens after the quiescence window, so the response is 202.
func reloadMenuHandler(store catalogStore, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.RequestReload()
		if m != nil {
			m.CatalogReload()
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "reload scheduled"})
	}
}
