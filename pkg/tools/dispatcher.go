// Package tools maps tool calls from the LLM onto the backend REST facade.
// Each tool name resolves through a lookup table to one HTTP call; the
// catalog in catalog.go is the provider-facing description of the same set.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/quantshow/assistant-gateway/pkg/config"
)

// Executor abstracts tool execution for the orchestrator.
type Executor interface {
	// Execute runs a single tool call and returns the backend's JSON body.
	// Failures come back as *UnknownToolError or *BackendError; the caller
	// decides how to degrade them.
	Execute(ctx context.Context, name string, args map[string]any) (json.RawMessage, error)
}

// Dispatcher is the Executor backed by the real backend proxy. It runs only
// server-side: every call carries the shared-secret x-api-key header, which
// must never be exposed to the browser.
type Dispatcher struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewDispatcher creates a dispatcher from backend configuration.
// Per-call timeouts are enforced by the caller via context.
func NewDispatcher(cfg config.BackendConfig) *Dispatcher {
	return &Dispatcher{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
	}
}

func (d *Dispatcher) Execute(ctx context.Context, name string, args map[string]any) (json.RawMessage, error) {
	rt, ok := routes[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	if args == nil {
		args = map[string]any{}
	}
	params := rt.project(args)

	// sessionId is injected by the orchestrator for correlation; projections
	// that filter keys must not strip it.
	if sid, ok := args["sessionId"]; ok {
		if _, present := params["sessionId"]; !present {
			params["sessionId"] = sid
		}
	}

	req, err := d.buildRequest(ctx, rt, params)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", name, err)
	}

	slog.Debug("Dispatching tool call", "tool", name, "method", rt.method, "path", rt.path)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tool %s: read response: %w", name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{
			Tool:       name,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	return body, nil
}

func (d *Dispatcher) buildRequest(ctx context.Context, rt route, params map[string]any) (*http.Request, error) {
	target := d.baseURL + rt.path

	var body io.Reader
	if rt.method == http.MethodGet {
		if qs := encodeQuery(params); qs != "" {
			target += "?" + qs
		}
	} else {
		jsonData, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, rt.method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", d.apiKey)
	return req, nil
}

// encodeQuery builds the query string for GET-mapped tools. Nil values are
// dropped: the backend treats an absent parameter differently from one
// explicitly set to an empty string.
func encodeQuery(params map[string]any) string {
	values := url.Values{}
	for k, v := range params {
		if v == nil {
			continue
		}
		values.Set(k, queryValue(v))
	}
	return values.Encode()
}

func queryValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		// Structured values are rare in query position; JSON is the least
		// surprising encoding for them.
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	}
}

// StubExecutor returns canned responses for testing orchestrator behavior
// without a backend. Safe for the orchestrator's concurrent fan-out.
type StubExecutor struct {
	// Responses maps tool name → canned payload. Missing names error.
	Responses map[string]json.RawMessage

	mu    sync.Mutex
	calls []StubCall
}

// StubCall is one recorded Execute invocation.
type StubCall struct {
	Name string
	Args map[string]any
}

func (s *StubExecutor) Execute(_ context.Context, name string, args map[string]any) (json.RawMessage, error) {
	s.mu.Lock()
	s.calls = append(s.calls, StubCall{Name: name, Args: args})
	s.mu.Unlock()

	if resp, ok := s.Responses[name]; ok {
		return resp, nil
	}
	return nil, &UnknownToolError{Name: name}
}

// Calls returns the recorded invocations.
func (s *StubExecutor) Calls() []StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StubCall(nil), s.calls...)
}
