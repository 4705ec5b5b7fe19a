package main

import (
	"context"
	"log"
	"os"

	"github.com/eliozeb/dinner-sharing-app/internal/config"
	"github.com/eliozeb/dinner-sharing-app/internal/db"
	"github.com/eliozeb/dinner-sharing-app/internal/kvstore"
	"github.com/eliozeb/dinner-sharing-app/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	store := kvstore.NewPostgres(pool, logger)
	if err := seed.Apply(ctx, store, cfg.MenuSource); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
