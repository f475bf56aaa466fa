package ingesthttp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/yourname/ingest_lite/internal/repo"
)

// gcOnce вручную убирает брошенные сессии.
func (a *Server) gcOnce(w http.ResponseWriter, _ *http.Request) {
	removed := a.store.Sweep(a.sessionTTL)
	slog.Info("manual session sweep", "removed", removed)
	w.WriteHeader(http.StatusNoContent)
}

// RunGC периодически удаляет сессии, в которые так и не пришёл материал. Блокируется до отмены ctx.
func RunGC(ctx context.Context, store *repo.SessionStore, ttl, every time.Duration) {
	if every <= 0 || ttl <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if removed := store.Sweep(ttl); removed > 0 {
				slog.Info("abandoned sessions removed", "count", removed)
			}
		case <-ctx.Done():
			return
		}
	}
}
