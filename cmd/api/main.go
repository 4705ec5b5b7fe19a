package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/eliozeb/dinner-sharing-app/internal/cart"
	"github.com/eliozeb/dinner-sharing-app/internal/catalog"
	"github.com/eliozeb/dinner-sharing-app/internal/checkout"
	"github.com/eliozeb/dinner-sharing-app/internal/config"
	"github.com/eliozeb/dinner-sharing-app/internal/db"
	"github.com/eliozeb/dinner-sharing-app/internal/history"
	"github.com/eliozeb/dinner-sharing-app/internal/httpserver"
	"github.com/eliozeb/dinner-sharing-app/internal/kvstore"
	"github.com/eliozeb/dinner-sharing-app/internal/metrics"
	"github.com/eliozeb/dinner-sharing-app/internal/recommend"
	"github.com/eliozeb/dinner-sharing-app/internal/reservation"
	"github.com/eliozeb/dinner-sharing-app/internal/theme"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	store := kvstore.NewPostgres(dbpool, logger)

	catalogStore := catalog.NewStore(cfg.MenuSource, logger)
	if err := catalogStore.Load(ctx); err != nil {
		// Serve anyway; menu requests answer 503 until a reload succeeds.
		logger.Printf("initial catalog load failed: %v", err)
	}

	cartManager := cart.New(store, catalogStore, logger)
	if err := cartManager.Restore(ctx); err != nil {
		logger.Fatalf("restore cart: %v", err)
	}

	historyLog := history.New(store, logger)
	checkoutService := checkout.New(cartManager, historyLog, logger)
	reservationService := reservation.New(store, logger)
	recommendEngine := recommend.New(catalogStore, historyLog)
	themeService := theme.New(store)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:      catalogStore,
		Cart:         cartManager,
		Checkout:     checkoutService,
		Reservations: reservationService,
		History:      historyLog,
		Recommend:    recommendEngine,
		Theme:        themeService,
		Metrics:      metrics.New(),
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
