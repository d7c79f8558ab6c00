package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/SDR_GO/internal/ingest"
	"github.com/AngelCh415/SDR_GO/internal/models"
	"github.com/AngelCh415/SDR_GO/internal/store"
	"github.com/AngelCh415/SDR_GO/internal/summary"
)

func newTestRouter(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	st := store.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(logger, st, summary.NewService(st), ingest.NewHTTPClient(2*time.Second))
	return r, st
}

func doRequest(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	assert.Equal(t, 200, doRequest(t, r, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, 200, doRequest(t, r, http.MethodGet, "/readyz", nil).Code)
}

func TestGenerateRequiresSeed(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doRequest(t, r, http.MethodPost, "/dataset/generate", nil)
	assert.Equal(t, 400, rec.Code)
}

func TestGenerateAndSummary(t *testing.T) {
	r, st := newTestRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/dataset/generate?seed=router-test", nil)
	require.Equal(t, 200, rec.Code)

	var info datasetInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "router-test", info.Seed)
	assert.GreaterOrEqual(t, info.Events, 2000)
	assert.Equal(t, info.Events, st.EventCount())

	rec = doRequest(t, r, http.MethodGet, "/summary", nil)
	require.Equal(t, 200, rec.Code)
	var sum models.DashboardSummaries
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, "router-test", sum.Seed)
	assert.Equal(t, info.Events, sum.Totals.Events)
	require.NotNil(t, sum.DialToConnect.Rate)
}

func TestGenerateIdempotentPerSeed(t *testing.T) {
	r, _ := newTestRouter(t)
	a := doRequest(t, r, http.MethodPost, "/dataset/generate?seed=twin", nil)
	b := doRequest(t, r, http.MethodPost, "/dataset/generate?seed=twin", nil)
	assert.Equal(t, a.Body.String(), b.Body.String())
}

func TestExportImportRoundTrip(t *testing.T) {
	r, st := newTestRouter(t)

	require.Equal(t, 200, doRequest(t, r, http.MethodPost, "/dataset/generate?seed=round", nil).Code)
	wantDS, _ := st.Snapshot()

	rec := doRequest(t, r, http.MethodGet, "/export/csv", nil)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	body := rec.Body.Bytes()

	// Wipe the store, then import the export back.
	st.Replace(models.GeneratedDataset{}, nil)
	rec = doRequest(t, r, http.MethodPost, "/import/csv", body)
	require.Equal(t, 200, rec.Code, rec.Body.String())

	gotDS, _ := st.Snapshot()
	assert.Equal(t, "round", gotDS.Seed)
	assert.Equal(t, wantDS.Events, gotDS.Events)
}

func TestImportBadCSVKeepsPriorDataset(t *testing.T) {
	r, st := newTestRouter(t)
	require.Equal(t, 200, doRequest(t, r, http.MethodPost, "/dataset/generate?seed=keep", nil).Code)
	before := st.EventCount()

	rec := doRequest(t, r, http.MethodPost, "/import/csv", []byte(`"event_id","lead_id"`))
	assert.Equal(t, 422, rec.Code)
	assert.Contains(t, rec.Body.String(), "timestamp")
	assert.Equal(t, before, st.EventCount(), "failed import must not replace the dataset")
}

func TestImportEmptyBody(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doRequest(t, r, http.MethodPost, "/import/csv", []byte{})
	assert.Equal(t, 422, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty file")
}

func TestImportFromURL(t *testing.T) {
	r, st := newTestRouter(t)
	require.Equal(t, 200, doRequest(t, r, http.MethodPost, "/dataset/generate?seed=remote", nil).Code)
	export := doRequest(t, r, http.MethodGet, "/export/csv", nil)
	require.Equal(t, 200, export.Code)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write(export.Body.Bytes())
	}))
	defer srv.Close()

	st.Replace(models.GeneratedDataset{}, nil)
	rec := doRequest(t, r, http.MethodPost, "/import/run?url="+srv.URL, nil)
	require.Equal(t, 200, rec.Code, rec.Body.String())
	assert.Equal(t, "remote", st.Seed())
}

func TestImportFromUnreachableURL(t *testing.T) {
	r, _ := newTestRouter(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := doRequest(t, r, http.MethodPost, "/import/run?url="+srv.URL, nil)
	assert.Equal(t, 502, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "non-2xx"))
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doRequest(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "sdr_datasets_generated_total")
}
