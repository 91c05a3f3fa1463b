package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantshow/assistant-gateway/pkg/config"
	"github.com/quantshow/assistant-gateway/pkg/tools"
)

func TestToolsHandler(t *testing.T) {
	s := newTestServer(&stubRunner{})

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ToolsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(tools.Catalog()), resp.Count)
	assert.Len(t, resp.Tools, resp.Count)

	names := make(map[string]bool, len(resp.Tools))
	for _, tool := range resp.Tools {
		names[tool.Function.Name] = true
	}
	assert.True(t, names["search_gmail"])
	assert.True(t, names["get_daily_briefing"])
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy with both secrets", func(t *testing.T) {
		s := newTestServer(&stubRunner{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "openai/gpt-4o-mini", resp.Model)
		assert.Equal(t, len(tools.Catalog()), resp.Tools)
	})

	t.Run("degraded without backend secret", func(t *testing.T) {
		cfg := &config.Config{
			Provider: config.ProviderConfig{Model: "openai/gpt-4o-mini", APIKey: "pk"},
		}
		s := NewServer(cfg, &stubRunner{}, tools.Catalog())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "healthy", resp.Checks["provider"].Status)
		assert.Equal(t, "degraded", resp.Checks["backend"].Status)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(&stubRunner{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
