package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/figchart-go/internal/config"
	"github.com/ukaji3/figchart-go/internal/logging"
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

const salesCSV = "month,sales,cost\nJan,10,4\nFeb,12,5\nMar,9,6\n"

func newTestServer(t *testing.T, mutate func(*config.ServerConfig)) http.Handler {
	t.Helper()
	cfg := config.Default().Server
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, models.DefaultSettings(), logging.NewNopLogger()).Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestDatasets(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/datasets?format=csv", salesCSV)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []interface{}{"month", "sales", "cost"}, body["headers"])
	assert.Len(t, body["rows"], 3)

	rec = do(t, h, http.MethodPost, "/api/v1/datasets?format=csv&transpose=true", salesCSV)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{"month", "Jan", "Feb", "Mar"}, decode(t, rec)["headers"])
}

func TestDatasets_Rejects(t *testing.T) {
	h := newTestServer(t, func(c *config.ServerConfig) { c.MaxBodyBytes = 16 })

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"missing format", "/api/v1/datasets", salesCSV, http.StatusBadRequest},
		{"unknown format", "/api/v1/datasets?format=pdf", salesCSV, http.StatusBadRequest},
		{"bad transpose", "/api/v1/datasets?format=csv&transpose=maybe", "a,b\n1,2\n", http.StatusBadRequest},
		{"header only", "/api/v1/datasets?format=csv", "a,b\n", http.StatusBadRequest},
		{"too large", "/api/v1/datasets?format=csv", salesCSV, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["error"])
		})
	}
}

func TestCharts(t *testing.T) {
	h := newTestServer(t, nil)
	body := `{
		"chartType": "bar",
		"settings": {"title": "Sales", "yColumns": ["sales"]},
		"dataset": {"headers": ["month", "sales"], "rows": [["Jan", 10], ["Feb", 12]]}
	}`

	rec := do(t, h, http.MethodPost, "/api/v1/charts", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	spec := decode(t, rec)

	title := spec["title"].(map[string]interface{})
	assert.Equal(t, "Sales", title["text"])
	series := spec["series"].([]interface{})
	// One real series plus its phantom.
	require.Len(t, series, 2)
	assert.Equal(t, "bar", series[0].(map[string]interface{})["type"])
}

func TestCharts_Errors(t *testing.T) {
	h := newTestServer(t, nil)
	dataset := `"dataset": {"headers": ["a", "b"], "rows": [[1, 2]]}`

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"chartType":`, http.StatusBadRequest},
		{"no dataset", `{"chartType": "line"}`, http.StatusBadRequest},
		{"bad settings", `{"settings": {"xColumn": 1.5}, ` + dataset + `}`, http.StatusBadRequest},
		{"unknown column", `{"settings": {"yColumns": ["missing"]}, ` + dataset + `}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/charts", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decode(t, rec)["error"])
		})
	}
}

func TestChartsFromFile(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/charts/from-file?format=csv&chartType=pie&title=Share", salesCSV)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	spec := decode(t, rec)

	assert.Equal(t, "Share", spec["title"].(map[string]interface{})["text"])
	series := spec["series"].([]interface{})
	require.Len(t, series, 1)
	assert.Equal(t, "pie", series[0].(map[string]interface{})["type"])
}

func TestCORS(t *testing.T) {
	h := newTestServer(t, func(c *config.ServerConfig) {
		c.AllowedOrigins = []string{"http://localhost:5173"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/charts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
