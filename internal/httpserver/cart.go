package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eliozeb/dinner-sharing-app/internal/metrics"
)

type addItemRequest struct {
	ItemID int `json:"itemId" binding:"required"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func getCartHandler(cart cartManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toAPICart(cart.Lines(), cart.TotalCents()))
	}
}

func addCartItemHandler(cart cartManager, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "itemId required"})
			return
		}
		if err := cart.Add(c.Request.Context(), req.ItemID); err != nil {
			respondError(c, err)
			return
		}
		if m != nil {
			m.CartMutation("add")
		}
		c.JSON(http.StatusOK, toAPICart(cart.Lines(), cart.TotalCents()))
	}
}

func setQuantityHandler(cart cartManager, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid item id"})
			return
		}
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity required"})
			return
		}
		if err := cart.SetQuantity(c.Request.Context(), itemID, *req.Quantity); err != nil {
			respondError(c, err)
			return
		}
		if m != nil {
			m.CartMutation("setQuantity")
		}
		c.JSON(http.StatusOK, toAPICart(cart.Lines(), cart.TotalCents()))
	}
}

func removeCartItemHandler(cart cartManager, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid item id"})
			return
		}
		if err := cart.Remove(c.Request.Context(), itemID); err != nil {
			respondError(c, err)
			return
		}
		if m != nil {
			m.CartMutation("remove")
		}
		c.JSON(http.StatusOK, toAPICart(cart.Lines(), cart.TotalCents()))
	}
}

func removeCartLineHandler(cart cartManager, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid line index"})
			return
		}
		if err := cart.RemoveAt(c.Request.Context(), index); err != nil {
			respondError(c, err)
			return
		}
		if m != nil {
			m.CartMutation("removeAt")
		}
		c.JSON(http.StatusOK, toAPICart(cart.Lines(), cart.TotalCents()))
	}
}

func clearCartHandler(cart cartManager, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cart.Clear(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		if m != nil {
			m.CartMutation("clear")
		}
		c.JSON(http.StatusOK, toAPICart(nil, 0))
	}
}

func checkoutHandler(svc checkoutService, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Checkout(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if m != nil {
			m.OrderCompleted()
		}
		c.JSON(http.StatusCreated, toAPIOrder(*order))
	}
}
