package httperrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

// Write отдаёт ошибку в виде конверта {is_success:false, message, code} с подходящим статусом.
func Write(w http.ResponseWriter, err error) {
	code := StatusFor(err)
	WriteFail(w, err.Error(), code)
}

// WriteFail пишет конверт с логической ошибкой и заданным HTTP-статусом.
func WriteFail(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", ingestproto.ContentTypeJSON)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.Fail(message, code))
}

// StatusFor сопоставляет доменные ошибки HTTP-статусам.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrSessionConsumed):
		return http.StatusConflict
	case errors.Is(err, models.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
