package ingesthttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yourname/ingest_lite/internal/config"
	"github.com/yourname/ingest_lite/internal/repo"
)

const shutdownTimeout = 15 * time.Second

// Run поднимает стаб на cfg.ListenAddr вместе с фоновым GC и корректно гасит всё по отмене ctx.
func Run(ctx context.Context, cfg *config.Config) error {
	store := repo.NewSessionStore()
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: New(store, WithSessionTTL(cfg.SessionTTL)),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("ingest stub listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Сценарий graceful shutdown при отмене контекста или падении сервера.
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		RunGC(gctx, store, cfg.SessionTTL, cfg.GCInterval)
		return nil
	})

	return g.Wait()
}
