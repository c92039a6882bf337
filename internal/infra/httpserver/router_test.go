package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsnapshots "github.com/grahamrowe82/munger-snap/internal/application/snapshots"
	domain "github.com/grahamrowe82/munger-snap/internal/domain/thesis"
)

func newTestRouter() http.Handler {
	svc := &appsnapshots.Service{Clock: appsnapshots.SystemClock{}}
	return NewRouter(svc, []string{"*"}, 1200)
}

func TestHandleSnap_OK(t *testing.T) {
	router := newTestRouter()

	body := `{"thesis": "Founder-led business with network effects.", "pe": "10", "fcf_yield": "2"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/snap", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result appsnapshots.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.NotEmpty(t, result.ID)
	assert.Len(t, result.Snapshot.Filters, 4)
	assert.Len(t, result.Snapshot.BiasRisks, 3)
	// P/E guardrail wins even though the yield alone would fail.
	assert.Equal(t, domain.StatusPass, result.Snapshot.Filters[domain.FilterMarginOfSafety].Status)
	assert.Equal(t, domain.PostureGo, result.Snapshot.Posture)
}

func TestHandleSnap_EmptyThesis(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/snap", strings.NewReader(`{"thesis": "   "}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Add a brief 6–10 line thesis to score.\n", rec.Body.String())
}

func TestHandleSnap_ThesisTooLong(t *testing.T) {
	router := newTestRouter()

	long := strings.Repeat("a", 1201)
	req := httptest.NewRequest(http.MethodPost, "/v1/snap", strings.NewReader(`{"thesis": "`+long+`"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Trim input to 1,200 characters.\n", rec.Body.String())
}

func TestHandleSnap_BadJSON(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/snap", strings.NewReader(`{"thesis":`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSnapForm_RendersReport(t *testing.T) {
	router := newTestRouter()

	form := url.Values{}
	form.Set("thesis", "Strong brand, owner-operator at the helm.")
	form.Set("pe", "12")
	req := httptest.NewRequest(http.MethodPost, "/v1/snap/form", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Four-Filters Snapshot\n"))
	assert.Contains(t, rec.Body.String(), "Posture: ")
}

func TestHandleReport_QueryParams(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/report?thesis=Network+effects+moat&fcf_yield=8", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Moat: Pass — Network effects")
	assert.Contains(t, rec.Body.String(), "Margin of Safety: Pass — FCF yield 8.0% clears >=6% bar.")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var health struct {
		Status string `json:"status"`
		Checks map[string]struct {
			Status string `json:"status"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Checks["keyword_tables"].Status)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var metrics map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	assert.Contains(t, metrics, "analyses_total")
}
