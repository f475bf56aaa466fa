package ingesthttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourname/ingest_lite/internal/repo"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

const (
	defaultSessionTTL = 24 * time.Hour
	maxTitleBytes     = 4 << 10
)

// Server serves the ingestion API on top of an in-memory session store.
type Server struct {
	store      *repo.SessionStore
	sessionTTL time.Duration
	newID      func() string
}

type Option func(*Server)

// WithSessionTTL задаёт возраст, после которого незавершённая сессия считается брошенной.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithIDGenerator подменяет генератор идентификаторов сессий и материалов.
func WithIDGenerator(gen func() string) Option {
	return func(s *Server) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New создаёт HTTP-обработчик стаба поверх хранилища сессий.
func New(store *repo.SessionStore, opts ...Option) http.Handler {
	srv := &Server{
		store:      store,
		sessionTTL: defaultSessionTTL,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(srv)
	}

	return srv.routes()
}

// routes регистрирует обработчики рукопожатия, списка, здоровья и GC.
func (a *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Post(ingestproto.IngestRequestsPath, a.requestIngestion)
	r.Route(ingestproto.IngestRequestPath, func(sr chi.Router) {
		sr.Post("/", a.ingest)
		sr.Get("/", a.inspectSession)
	})
	r.Post(ingestproto.MaterialListPath, a.listMaterials)

	r.Get("/health", a.health)
	r.Post("/admin/gc", a.gcOnce)

	return r
}
