package ingesthttp

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/httperrors"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

// writeOK оборачивает payload в успешный конверт.
func writeOK(w http.ResponseWriter, payload any) {
	env, err := models.OK(payload)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	writeJSON(w, env)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", ingestproto.ContentTypeJSON)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}
