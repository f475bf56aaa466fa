package integration

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/ingest_lite/internal/app/terminalui"
	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/internal/usecase/uploadflow"
	"github.com/yourname/ingest_lite/pkg/httperrors"
	"github.com/yourname/ingest_lite/pkg/ingestclient"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

type formHandles struct {
	title  *terminalui.TextField
	file   *terminalui.FileField
	banner *terminalui.Banner
	out    *bytes.Buffer
	flow   *uploadflow.Flow
}

func newForm(baseURL string) *formHandles {
	f := &formHandles{
		title: &terminalui.TextField{},
		file:  &terminalui.FileField{},
		out:   &bytes.Buffer{},
	}
	f.banner = terminalui.NewBanner(f.out, false)
	f.flow = uploadflow.New(uploadflow.Deps{
		Client: ingestclient.New(baseURL),
		Title:  f.title,
		File:   f.file,
		Status: f.banner,
	})
	return f
}

func TestUploadFlow_EndToEnd(t *testing.T) {
	store, srv := startStub(t)

	payload := bytes.Repeat([]byte("0123456789abcdef"), 4096) // 64 KiB
	want := sha256.Sum256(payload)
	path := writeFile(t, "brochure.bin", payload)

	f := newForm(ingestURL(srv))
	f.title.Set("Product brochure")
	require.NoError(t, f.file.Select(path))

	out := f.flow.Submit(context.Background())
	require.True(t, out.OK(), "outcome: %+v", out)

	assert.Equal(t, "Upload successful!", f.banner.Text())
	assert.Equal(t, models.FeedbackSuccess, f.banner.State())
	assert.Empty(t, f.title.Value())
	assert.Nil(t, f.file.Selected())
	assert.Contains(t, f.out.String(), `Processing upload of "Product brochure"...`)

	got := store.Ingested()
	require.Len(t, got, 1)
	assert.Equal(t, "Product brochure", got[0].Title)
	assert.Equal(t, "brochure.bin", got[0].FileName)
	assert.Equal(t, int64(len(payload)), got[0].Size)
	assert.Equal(t, hex.EncodeToString(want[:]), got[0].Sha256)

	open, consumed := store.Stats()
	assert.Equal(t, 0, open)
	assert.Equal(t, 1, consumed)
}

func TestUploadFlow_ValidationNeverReachesServer(t *testing.T) {
	store, srv := startStub(t)
	path := writeFile(t, "a.txt", []byte("hello"))

	f := newForm(ingestURL(srv))
	require.NoError(t, f.file.Select(path))

	out := f.flow.Submit(context.Background())
	assert.Equal(t, uploadflow.Failed, out.Status)
	assert.Equal(t, "Please enter a valid content name.", f.banner.Text())
	assert.NotNil(t, f.file.Selected())

	f.title.Set("hello")
	f.file.Clear()
	out = f.flow.Submit(context.Background())
	assert.Equal(t, uploadflow.Failed, out.Status)
	assert.Equal(t, "Please select a file to upload.", f.banner.Text())
	assert.Equal(t, "hello", f.title.Value())

	open, consumed := store.Stats()
	assert.Zero(t, open+consumed)
}

func TestUploadFlow_ServerRejectsContent(t *testing.T) {
	var opened int
	r := chi.NewRouter()
	r.Post(ingestproto.IngestRequestsPath, func(w http.ResponseWriter, _ *http.Request) {
		opened++
		w.Header().Set("Content-Type", ingestproto.ContentTypeJSON)
		_, _ = w.Write([]byte(`{"is_success":true,"payload":"sess-1"}`))
	})
	r.Post(ingestproto.IngestRequestPath, func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteFail(w, "Material is too large", http.StatusRequestEntityTooLarge)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	path := writeFile(t, "big.bin", []byte("pretend this is big"))
	f := newForm(ingestURL(srv))
	f.title.Set("big")
	require.NoError(t, f.file.Select(path))

	out := f.flow.Submit(context.Background())
	assert.Equal(t, uploadflow.Failed, out.Status)
	assert.Equal(t, 1, opened)
	assert.Equal(t, models.FeedbackError, f.banner.State())
	assert.True(t, strings.HasPrefix(f.banner.Text(), "Upload failed"), f.banner.Text())
	assert.Equal(t, "big", f.title.Value())
	assert.NotNil(t, f.file.Selected())
}

func TestUploadFlow_StatusBodyShownVerbatim(t *testing.T) {
	r := chi.NewRouter()
	r.Post(ingestproto.IngestRequestsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("backend is down"))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	path := writeFile(t, "a.txt", []byte("x"))
	f := newForm(ingestURL(srv))
	f.title.Set("a")
	require.NoError(t, f.file.Select(path))

	out := f.flow.Submit(context.Background())
	assert.Equal(t, uploadflow.Failed, out.Status)
	assert.Equal(t, "Upload failed with status backend is down", f.banner.Text())
}

func TestUploadFlow_SecondSubmitOpensNewSession(t *testing.T) {
	store, srv := startStub(t)

	f := newForm(ingestURL(srv))
	for _, title := range []string{"first", "second"} {
		f.title.Set(title)
		require.NoError(t, f.file.Select(writeFile(t, title+".txt", []byte(title))))
		require.True(t, f.flow.Submit(context.Background()).OK())
	}

	got := store.Ingested()
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}
