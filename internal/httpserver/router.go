package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
	"github.com/eliozeb/dinner-sharing-app/internal/metrics"
	"github.com/eliozeb/dinner-sharing-app/internal/recommend"
	"github.com/eliozeb/dinner-sharing-app/internal/reservation"
)

type catalogStore interface {
	Items() ([]domain.MenuItem, error)
	Categories() ([]string, error)
	RequestReload()
}

type cartManager interface {
	Lines() []domain.OrderLine
	TotalCents() int64
	Add(ctx context.Context, itemID int) error
	SetQuantity(ctx context.Context, itemID, n int) error
	Remove(ctx context.Context, itemID int) error
	RemoveAt(ctx context.Context, index int) error
	Clear(ctx context.Context) error
}

type checkoutService interface {
	Checkout(ctx context.Context) (*domain.CompletedOrder, error)
}

type reservationService interface {
	Submit(ctx context.Context, in reservation.Input) (reservation.Result, error)
}

type historyLog interface {
	List(ctx context.Context) ([]domain.CompletedOrder, error)
	ListByDate(ctx context.Context, day time.Time) ([]domain.CompletedOrder, error)
	ExportCSV(ctx context.Context, w io.Writer, loc *time.Location) error
}

type recommender interface {
	Recommendations(ctx context.Context) (recommend.Recommendations, error)
}

type themeService interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
}

// Deps carries the services the router exposes.
type Deps struct {
	Catalog      catalogStore
	Cart         cartManager
	Checkout     checkoutService
	Reservations reservationService
	History      historyLog
	Recommend    recommender
	Theme        themeService
	Metrics      *metrics.Metrics
}

// buildRouter wires routes for the ordering API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/menu", listMenuHandler(deps.Catalog))
		api.GET("/menu/categories", listCategoriesHandler(deps.Catalog))
		api.POST("/menu/reload", reloadMenuHandler(deps.Catalog, deps.Metrics))

		api.GET("/cart", getCartHandler(deps.Cart))
		api.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Metrics))
		api.PATCH("/cart/items/:id", setQuantityHandler(deps.Cart, deps.Metrics))
		api.DELETE("/cart/items/:id", removeCartItemHandler(deps.Cart, deps.Metrics))
		api.DELETE("/cart/lines/:index", removeCartLineHandler(deps.Cart, deps.Metrics))
		api.DELETE("/cart", clearCartHandler(deps.Cart, deps.Metrics))

		api.POST("/checkout", checkoutHandler(deps.Checkout, deps.Metrics))

		api.POST("/reservations", createReservationHandler(deps.Reservations, deps.Metrics))

		api.GET("/orders", listOrdersHandler(deps.History))
		api.GET("/orders/export", exportOrdersHandler(deps.History))

		api.GET("/recommendations", recommendationsHandler(deps.Recommend, deps.Metrics))

		api.GET("/theme", getThemeHandler(deps.Theme))
		api.PUT("/theme", setThemeHandler(deps.Theme))
	}

	return router, nil
}

func corsConfig(allowedOrigins string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// respondError maps domain errors to HTTP statuses. Nothing here is
// fatal; every failure carries a message the page can show.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "item not found"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"message": "Your order is empty."})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Failed to load menu items", "retryable": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
