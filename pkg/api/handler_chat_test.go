package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantshow/assistant-gateway/pkg/config"
	"github.com/quantshow/assistant-gateway/pkg/models"
	"github.com/quantshow/assistant-gateway/pkg/orchestrator"
	"github.com/quantshow/assistant-gateway/pkg/tools"
)

// stubRunner mimics the orchestrator's input contract: blank messages are
// rejected before any network traffic.
type stubRunner struct {
	outcome *models.TurnOutcome
	err     error
	lastIn  orchestrator.TurnInput
	calls   int
}

func (r *stubRunner) RunTurn(_ context.Context, in orchestrator.TurnInput) (*models.TurnOutcome, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, orchestrator.ErrEmptyMessage
	}
	r.calls++
	r.lastIn = in
	if r.err != nil {
		return nil, r.err
	}
	return r.outcome, nil
}

func newTestServer(runner TurnRunner) *Server {
	cfg := &config.Config{
		Provider: config.ProviderConfig{Model: "openai/gpt-4o-mini", APIKey: "pk"},
		Backend:  config.BackendConfig{APIKey: "bk"},
	}
	return NewServer(cfg, runner, tools.Catalog())
}

func postChat(s *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestChatHandler_Success(t *testing.T) {
	ts := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	runner := &stubRunner{outcome: &models.TurnOutcome{
		Response:          "Hej! Du har tre möten idag.",
		ShouldSaveInsight: true,
		ToolCallsUsed:     2,
		Timestamp:         ts,
	}}
	s := newTestServer(runner)

	rec := postChat(s, `{"message":"hur ser min dag ut?","context":"semestervecka","sessionId":"sess-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hej! Du har tre möten idag.", resp.Response)
	assert.True(t, resp.ShouldSaveInsight)
	assert.Equal(t, 2, resp.ToolCallsUsed)
	assert.Equal(t, "2025-09-01T12:00:00Z", resp.Timestamp)

	assert.Equal(t, "semestervecka", runner.lastIn.Context)
	assert.Equal(t, "sess-1", runner.lastIn.SessionID)
}

func TestChatHandler_HistoryPassedThrough(t *testing.T) {
	runner := &stubRunner{outcome: &models.TurnOutcome{Response: "ok"}}
	s := newTestServer(runner)

	rec := postChat(s, `{"message":"fortsätt","history":[{"role":"user","content":"hej"},{"role":"assistant","content":"hej själv"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, runner.lastIn.History, 2)
	assert.Equal(t, models.RoleUser, runner.lastIn.History[0].Role)
	assert.Equal(t, "hej själv", runner.lastIn.History[1].Content)
}

func TestChatHandler_EmptyMessage(t *testing.T) {
	runner := &stubRunner{}
	s := newTestServer(runner)

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`} {
		rec := postChat(s, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Message is required", resp.Error)
	}
	assert.Zero(t, runner.calls)
}

func TestChatHandler_MalformedBody(t *testing.T) {
	s := newTestServer(&stubRunner{})

	rec := postChat(s, `{"message":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_TurnFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"provider failure", fmt.Errorf("provider call: upstream 502")},
		{"iteration exhaustion", fmt.Errorf("turn did not converge: %w", orchestrator.ErrMaxIterations)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&stubRunner{err: tt.err})

			rec := postChat(s, `{"message":"hej"}`)
			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Internal server error", resp.Error)
			assert.Contains(t, resp.Details, tt.err.Error())
		})
	}
}
