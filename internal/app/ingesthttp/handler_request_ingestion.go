package ingesthttp

import (
	"log/slog"
	"net/http"
)

// requestIngestion открывает новую сессию и возвращает её id.
func (a *Server) requestIngestion(w http.ResponseWriter, _ *http.Request) {
	sess := a.store.Open(a.newID())
	slog.Debug("ingestion session opened", "session_id", sess.ID)

	writeOK(w, sess.ID)
}
