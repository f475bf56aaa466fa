package ingesthttp

import "net/http"

// healthStats — payload ответа /health.
type healthStats struct {
	OK           bool `json:"ok"`
	OpenSessions int  `json:"open_sessions"`
	Ingested     int  `json:"ingested"`
}

// health отдаёт счётчики сессий.
func (a *Server) health(w http.ResponseWriter, _ *http.Request) {
	open, consumed := a.store.Stats()
	writeJSON(w, healthStats{
		OK:           true,
		OpenSessions: open,
		Ingested:     consumed,
	})
}
