package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/yourname/ingest_lite/internal/app/ingesthttp"
	"github.com/yourname/ingest_lite/internal/config"
)

// main поднимает стаб ingestion API и гасит его по SIGINT/SIGTERM.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("STUB starting on %s (session ttl=%s, gc every=%s)", cfg.ListenAddr, cfg.SessionTTL, cfg.GCInterval)
	if err := ingesthttp.Run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
	log.Println("STUB stopped")
}
