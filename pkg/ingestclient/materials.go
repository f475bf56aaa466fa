package ingestclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

// ListMaterials запрашивает страницу загруженных материалов.
func (h *httpClient) ListMaterials(ctx context.Context, page models.Pagination) ([]models.IDNameEntity, error) {
	b, err := json.Marshal(page)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.materialListURL(), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", ingestproto.ContentTypeJSON)

	env, err := h.do(req)
	if err != nil {
		return nil, err
	}

	var items []models.IDNameEntity
	if len(env.Payload) > 0 {
		if err = json.Unmarshal(env.Payload, &items); err != nil {
			return nil, models.NewAPIError("malformed material list", env.Code)
		}
	}

	return items, nil
}

// materialListURL выводит адрес списка из базового: меняет путь ingest-запросов на путь списка.
func (h *httpClient) materialListURL() string {
	if h.listURL != "" {
		return h.listURL
	}

	u, err := url.Parse(h.baseURL)
	if err != nil {
		return strings.TrimSuffix(h.baseURL, ingestproto.IngestRequestsPath) + ingestproto.MaterialListPath
	}
	u.Path = strings.TrimSuffix(u.Path, ingestproto.IngestRequestsPath) + ingestproto.MaterialListPath
	u.RawPath = ""

	return u.String()
}
