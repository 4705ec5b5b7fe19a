package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eliozeb/dinner-sharing-app/internal/theme"
)

type setThemeRequest struct {
	Theme string `json:"theme"`
}

func getThemeHandler(svc themeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := svc.Get(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"theme": value})
	}
}

func setThemeHandler(svc themeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setThemeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid theme payload"})
			return
		}
		if err := svc.Set(c.Request.Context(), req.Theme); err != nil {
			if errors.Is(err, theme.ErrInvalidTheme) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "theme must be light or dark"})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
	}
}
