// Package ingestclient реализует HTTP-клиент ingestion API: открытие сессии,
// отправку материала в сессию и выборку списка загруженных материалов.
package ingestclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yourname/ingest_lite/internal/models"
)

// maxErrorBody ограничивает чтение тела не-2xx ответа.
const maxErrorBody = 64 << 10

type Client interface {
	// OpenSession Открыть сессию загрузки, вернуть её идентификатор
	OpenSession(ctx context.Context) (string, error)
	// SubmitContent Отправить название и материал в открытую сессию
	SubmitContent(ctx context.Context, sessionID, title string, material *models.Material) error
	// ListMaterials Получить страницу загруженных материалов
	ListMaterials(ctx context.Context, page models.Pagination) ([]models.IDNameEntity, error)
}

type Option func(*httpClient)

// WithHTTPClient подменяет транспорт, например, на клиент httptest-сервера.
func WithHTTPClient(c *http.Client) Option {
	return func(h *httpClient) {
		if c != nil {
			h.c = c
		}
	}
}

// WithTimeout задаёт таймаут запроса; ноль оставляет поведение http.Client по умолчанию.
func WithTimeout(d time.Duration) Option {
	return func(h *httpClient) {
		if d > 0 {
			h.c.Timeout = d
		}
	}
}

// WithMaterialListURL задаёт адрес выборки материалов, если он не выводится из базового.
func WithMaterialListURL(u string) Option {
	return func(h *httpClient) {
		h.listURL = strings.TrimRight(u, "/")
	}
}

type httpClient struct {
	c       *http.Client
	baseURL string
	listURL string
}

// New создаёт клиент поверх ingestion-эндпоинта вида {api_base_url}{api_ingest_path}.
func New(ingestURL string, opts ...Option) Client {
	h := &httpClient{
		c:       &http.Client{},
		baseURL: strings.TrimRight(ingestURL, "/"),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// OpenSession выполняет первый шаг рукопожатия: POST {base} без тела.
func (h *httpClient) OpenSession(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL, nil)
	if err != nil {
		return "", err
	}

	env, err := h.do(req)
	if err != nil {
		return "", err
	}

	sessionID, ok := env.PayloadString()
	if !ok {
		return "", models.NewAPIError("ingestion session id is empty", env.Code)
	}

	return sessionID, nil
}

// SubmitContent выполняет второй шаг: multipart POST в {base}/{session-id}.
func (h *httpClient) SubmitContent(ctx context.Context, sessionID, title string, material *models.Material) error {
	if strings.TrimSpace(sessionID) == "" {
		return errors.New("session id is empty")
	}

	body, contentType := newMaterialBody(title, material)
	defer body.Close()

	u := h.baseURL + "/" + url.PathEscape(sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	_, err = h.do(req)
	return err
}
