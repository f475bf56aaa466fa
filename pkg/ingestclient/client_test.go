package ingestclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, env models.APIResponse) {
	t.Helper()
	w.Header().Set("Content-Type", ingestproto.ContentTypeJSON)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

func newTestClient(t *testing.T, h http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(srv.URL+ingestproto.IngestRequestsPath, WithHTTPClient(srv.Client())), srv
}

func textMaterial(name, body string) *models.Material {
	return &models.Material{
		FileName:    name,
		ContentType: "text/plain",
		Size:        int64(len(body)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(body))), nil
		},
	}
}

func TestOpenSession_ReturnsPayload(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, ingestproto.IngestRequestsPath, r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)

		env, err := models.OK("abc123")
		require.NoError(t, err)
		writeEnvelope(t, w, env)
	})

	id, err := cli.OpenSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestOpenSession_TransportErrorUsesBodyText(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	})

	_, err := cli.OpenSession(context.Background())
	var te *models.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusBadGateway, te.StatusCode)
	assert.Equal(t, "backend down\n", te.Detail())
}

func TestOpenSession_TransportErrorFallsBackToStatus(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := cli.OpenSession(context.Background())
	var te *models.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "503", te.Detail())
}

func TestOpenSession_APIError(t *testing.T) {
	tests := []struct {
		name string
		env  models.APIResponse
		want string
	}{
		{name: "with message", env: models.Fail("quota exceeded", 429), want: "quota exceeded"},
		{name: "without message", env: models.APIResponse{IsSuccess: false}, want: models.MsgUnknownError},
		{name: "success without payload", env: models.APIResponse{IsSuccess: true}, want: "ingestion session id is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, tt.env)
			})

			_, err := cli.OpenSession(context.Background())
			var ae *models.APIError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.want, ae.Message)
		})
	}
}

func TestOpenSession_MalformedBodyIsAPIError(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := cli.OpenSession(context.Background())
	var ae *models.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, models.MsgUnknownError, ae.Message)
}

func TestOpenSession_LooseBodyKeepsServerMessage(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"is_success":"true","message":"quota exceeded"}`))
	})

	_, err := cli.OpenSession(context.Background())
	var ae *models.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "quota exceeded", ae.Message)
}

func TestOpenSession_BlankPayloadIsAPIError(t *testing.T) {
	for _, payload := range []string{"", "   ", "\t\n"} {
		t.Run(fmt.Sprintf("%q", payload), func(t *testing.T) {
			cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				env, err := models.OK(payload)
				require.NoError(t, err)
				writeEnvelope(t, w, env)
			})

			_, err := cli.OpenSession(context.Background())
			var ae *models.APIError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, "ingestion session id is empty", ae.Message)
		})
	}
}

func TestOpenSession_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := New(base).OpenSession(context.Background())
	var te *models.TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.StatusCode)
	assert.Error(t, te.Err)
}

func TestSubmitContent_PostsMultipartIntoSession(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ingestproto.IngestRequestsPath+"/abc123", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Quarterly brochure", r.FormValue(ingestproto.FieldTitle))

		f, hdr, err := r.FormFile(ingestproto.FieldMaterial)
		require.NoError(t, err)
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "hello", string(b))
		assert.Equal(t, "brochure.txt", hdr.Filename)
		assert.Equal(t, "text/plain", hdr.Header.Get("Content-Type"))

		env, _ := models.OK(nil)
		writeEnvelope(t, w, env)
	})

	err := cli.SubmitContent(context.Background(), "abc123", "Quarterly brochure", textMaterial("brochure.txt", "hello"))
	require.NoError(t, err)
}

func TestSubmitContent_NilMaterialSendsEmptyBlob(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile(ingestproto.FieldMaterial)
		require.NoError(t, err)
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Empty(t, b)
		assert.Equal(t, ingestproto.ContentTypeOctetStream, hdr.Header.Get("Content-Type"))

		env, _ := models.OK(nil)
		writeEnvelope(t, w, env)
	})

	require.NoError(t, cli.SubmitContent(context.Background(), "s1", "title", nil))
}

func TestSubmitContent_APIFailure(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		writeEnvelope(t, w, models.Fail("unsupported material", 415))
	})

	err := cli.SubmitContent(context.Background(), "s1", "title", textMaterial("a.txt", "x"))
	var ae *models.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "unsupported material", ae.Message)
	assert.Equal(t, 415, ae.Code)
}

func TestSubmitContent_PathEscapesSessionID(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ingestproto.IngestRequestsPath+"/a%2Fb", r.URL.EscapedPath())
		_, _ = io.Copy(io.Discard, r.Body)
		env, _ := models.OK(nil)
		writeEnvelope(t, w, env)
	})

	require.NoError(t, cli.SubmitContent(context.Background(), "a/b", "title", textMaterial("a.txt", "x")))
}

func TestListMaterials_DerivesListURL(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ingestproto.MaterialListPath, r.URL.Path)

		var page models.Pagination
		require.NoError(t, json.NewDecoder(r.Body).Decode(&page))
		assert.Equal(t, 10, page.PageSize)
		assert.Equal(t, models.SortDesc, page.Sorts[models.SortByName])

		env, err := models.OK([]models.IDNameEntity{{ID: "1", Name: "Brochure"}})
		require.NoError(t, err)
		writeEnvelope(t, w, env)
	})

	items, err := cli.ListMaterials(context.Background(), models.Pagination{
		PageSize: 10,
		PageNum:  0,
		Sorts:    map[models.SortField]models.SortDirection{models.SortByName: models.SortDesc},
	})
	require.NoError(t, err)
	assert.Equal(t, []models.IDNameEntity{{ID: "1", Name: "Brochure"}}, items)
}
