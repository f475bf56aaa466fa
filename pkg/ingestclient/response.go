package ingestclient

import (
	"encoding/json"
	"bytes"
	"io"
	"net/http"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

// do отправляет запрос и разбирает ответ в конверт.
// Не-2xx превращается в TransportError, is_success != true — в APIError.
func (h *httpClient) do(req *http.Request) (models.APIResponse, error) {
	req.Header.Set("Accept", ingestproto.ContentTypeJSON)

	resp, err := h.c.Do(req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		return models.APIResponse{}, &models.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return models.APIResponse{}, &models.TransportError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.APIResponse{}, &models.TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	var env models.APIResponse
	if len(bytes.TrimSpace(b)) > 0 {
		if err = json.Unmarshal(b, &env); err != nil {
			return models.APIResponse{}, models.NewAPIError(looseMessage(b), 0)
		}
	}
	if !env.IsSuccess {
		return models.APIResponse{}, models.NewAPIError(env.Message, env.Code)
	}

	return env, nil
}

// looseMessage достаёт message из тела, которое не разобралось как конверт целиком.
func looseMessage(b []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return ""
	}
	return m.Message
}
