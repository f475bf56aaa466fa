package integration

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/yourname/ingest_lite/internal/app/ingesthttp"
	"github.com/yourname/ingest_lite/internal/repo"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

// startStub поднимает стаб ingestion API и возвращает базовый URL рукопожатия.
func startStub(t *testing.T, opts ...ingesthttp.Option) (*repo.SessionStore, *httptest.Server) {
	t.Helper()

	store := repo.NewSessionStore()
	srv := httptest.NewServer(ingesthttp.New(store, opts...))
	t.Cleanup(srv.Close)

	return store, srv
}

func ingestURL(srv *httptest.Server) string {
	return srv.URL + ingestproto.IngestRequestsPath
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
