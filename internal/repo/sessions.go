// Package repo хранит ingestion-сессии стаба в оперативной памяти.
package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/yourname/ingest_lite/internal/models"
)

// SessionStore держит сессии и принятые материалы; ничего не пишет на диск.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.IngestSession
	seq      uint64
	now      func() time.Time
}

// NewSessionStore создаёт пустое хранилище.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[string]models.IngestSession{},
		now:      time.Now,
	}
}

// Open регистрирует новую сессию под заданным id.
func (s *SessionStore) Open(id string) models.IngestSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := models.IngestSession{ID: id, CreatedAt: s.now()}
	s.sessions[id] = sess
	return sess
}

// Get возвращает копию сессии или ErrNotFound.
func (s *SessionStore) Get(id string) (models.IngestSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return models.IngestSession{}, models.ErrNotFound
	}
	return sess.Clone(), nil
}

// Consume привязывает материал к сессии. Сессия принимает материал ровно один раз.
func (s *SessionStore) Consume(id string, ing models.Ingestion) (models.IngestSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return models.IngestSession{}, models.ErrNotFound
	}
	if sess.Consumed {
		return models.IngestSession{}, models.ErrSessionConsumed
	}

	if ing.IngestedAt.IsZero() {
		ing.IngestedAt = s.now()
	}
	s.seq++
	ing.Seq = s.seq
	sess.Consumed = true
	sess.Ingestion = &ing
	s.sessions[id] = sess

	return sess.Clone(), nil
}

// Ingested возвращает все принятые материалы в порядке приёма.
func (s *SessionStore) Ingested() []models.Ingestion {
	s.mu.RLock()
	out := make([]models.Ingestion, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if sess.Ingestion != nil {
			out = append(out, *sess.Ingestion)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].IngestedAt.Equal(out[j].IngestedAt) {
			return out[i].IngestedAt.Before(out[j].IngestedAt)
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

// Stats — число открытых и принятых сессий для /health.
func (s *SessionStore) Stats() (open, consumed int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.Consumed {
			consumed++
		} else {
			open++
		}
	}
	return open, consumed
}

// Sweep удаляет незавершённые сессии старше ttl и возвращает их число.
func (s *SessionStore) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.Consumed || sess.CreatedAt.After(cutoff) {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	return removed
}
