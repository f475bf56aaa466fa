package ingesthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/ingest_lite/pkg/httperrors"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

// inspectSession отдаёт снимок сессии вместе с принятым материалом, если он есть.
func (a *Server) inspectSession(w http.ResponseWriter, r *http.Request) {
	sess, err := a.store.Get(chi.URLParam(r, ingestproto.IngestRequestIDParam))
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeOK(w, sess)
}
