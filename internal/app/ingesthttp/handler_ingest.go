package ingesthttp

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/httperrors"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

// ingest принимает multipart-форму в открытую сессию. Содержимое материала не сохраняется:
// считаются только размер и SHA-256.
func (a *Server) ingest(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, ingestproto.IngestRequestIDParam)

	// Проверяем сессию до чтения тела, чтобы не тянуть файл впустую.
	sess, err := a.store.Get(sessionID)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	if sess.Consumed {
		httperrors.Write(w, models.ErrSessionConsumed)
		return
	}

	ing, err := a.readIngestion(r)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	ing.ID = a.newID()

	if _, err = a.store.Consume(sessionID, ing); err != nil {
		httperrors.Write(w, err)
		return
	}

	slog.Info("material ingested", "session_id", sessionID, "title", ing.Title, "size", ing.Size)
	writeOK(w, nil)
}

// readIngestion читает части формы потоком: title как текст, material — через хешер.
func (a *Server) readIngestion(r *http.Request) (models.Ingestion, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return models.Ingestion{}, fmt.Errorf("%w: %v", models.ErrBadRequest, err)
	}

	var (
		ing         models.Ingestion
		hasTitle    bool
		hasMaterial bool
	)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return models.Ingestion{}, fmt.Errorf("%w: %v", models.ErrBadRequest, err)
		}

		switch part.FormName() {
		case ingestproto.FieldTitle:
			b, err := io.ReadAll(io.LimitReader(part, maxTitleBytes+1))
			if err != nil {
				return models.Ingestion{}, err
			}
			if len(b) > maxTitleBytes {
				return models.Ingestion{}, fmt.Errorf("%w: %s exceeds %d bytes", models.ErrBadRequest, ingestproto.FieldTitle, maxTitleBytes)
			}
			ing.Title = string(b)
			hasTitle = true
		case ingestproto.FieldMaterial:
			h := sha256.New()
			n, err := io.Copy(h, part)
			if err != nil {
				return models.Ingestion{}, err
			}
			ing.FileName = part.FileName()
			ing.ContentType = part.Header.Get("Content-Type")
			ing.Size = n
			ing.Sha256 = hex.EncodeToString(h.Sum(nil))
			hasMaterial = true
		}
		_ = part.Close()
	}

	if !hasTitle {
		return models.Ingestion{}, fmt.Errorf("%w: missing %s field", models.ErrBadRequest, ingestproto.FieldTitle)
	}
	if !hasMaterial {
		return models.Ingestion{}, fmt.Errorf("%w: missing %s field", models.ErrBadRequest, ingestproto.FieldMaterial)
	}

	return ing, nil
}
