package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/eliozeb/dinner-sharing-app/internal/config"
	"github.com/eliozeb/dinner-sharing-app/internal/imgpipe"
)

func main() {
	cfg := config.FromEnv()

	srcDir := flag.String("src", cfg.ImageSrcDir, "directory holding source jpg/jpeg/png images")
	outDir := flag.String("out", cfg.ImageOutDir, "directory receiving resized variants")
	flag.Parse()

	logger := log.New(os.Stdout, "[imgopt] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	start := time.Now()
	count, err := imgpipe.New(*srcDir, *outDir, logger).Run()
	if err != nil {
		logger.Fatalf("image pipeline: %v", err)
	}
	logger.Printf("processed %d images in %s", count, time.Since(start).Truncate(time.Millisecond))
}
