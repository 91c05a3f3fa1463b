// Package orchestrator drives one user turn to completion: it builds the
// conversation, iterates chat-completion calls against the provider, fans out
// requested tool calls, and folds results back into the conversation until
// the model answers in plain text or the iteration budget runs out.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/quantshow/assistant-gateway/pkg/metrics"
	"github.com/quantshow/assistant-gateway/pkg/models"
	"github.com/quantshow/assistant-gateway/pkg/tools"
)

// Provider is the chat-completions client the orchestrator iterates against.
type Provider interface {
	Complete(ctx context.Context, messages []models.Message, catalog []models.ToolDefinition) (*models.Message, error)
}

// Options tune a turn. Zero values fall back to defaults.
type Options struct {
	// MaxIterations bounds provider round-trips per turn (default 5).
	MaxIterations int

	// LLMTimeout bounds each provider call (default 120s).
	LLMTimeout time.Duration

	// ToolTimeout bounds each tool call (default 30s).
	ToolTimeout time.Duration

	// Now supplies timestamps; overridable for deterministic tests.
	Now func() time.Time
}

const (
	defaultMaxIterations = 5
	defaultLLMTimeout    = 120 * time.Second
	defaultToolTimeout   = 30 * time.Second
)

// Orchestrator owns no cross-request state: each RunTurn call builds its own
// conversation and discards it when the turn ends.
type Orchestrator struct {
	provider Provider
	executor tools.Executor
	catalog  []models.ToolDefinition
	opts     Options
}

// New creates an orchestrator over a provider and a tool executor.
func New(provider Provider, executor tools.Executor, catalog []models.ToolDefinition, opts Options) *Orchestrator {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = defaultMaxIterations
	}
	if opts.LLMTimeout <= 0 {
		opts.LLMTimeout = defaultLLMTimeout
	}
	if opts.ToolTimeout <= 0 {
		opts.ToolTimeout = defaultToolTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Orchestrator{
		provider: provider,
		executor: executor,
		catalog:  catalog,
		opts:     opts,
	}
}

// TurnInput is one incoming user turn.
type TurnInput struct {
	// Message is the new user message; must be non-empty after trimming.
	Message string

	// Context is an optional free-text block spliced into the system prompt.
	Context string

	// History holds prior turns, tool messages included, supplied verbatim
	// by the caller. This component does not persist history.
	History []models.Message

	// SessionID is an opaque correlation token injected into every tool
	// call's arguments; never interpreted here.
	SessionID string
}

// RunTurn executes the iterate-call-execute-append cycle for one turn.
//
// Failure semantics: a provider failure or an exhausted iteration budget
// fails the whole turn; individual tool-call failures degrade to error-shaped
// tool results that the model sees on the next round-trip.
func (o *Orchestrator) RunTurn(ctx context.Context, in TurnInput) (*models.TurnOutcome, error) {
	if strings.TrimSpace(in.Message) == "" {
		metrics.TurnsTotal.WithLabelValues("invalid_input").Inc()
		return nil, ErrEmptyMessage
	}

	system := models.Message{
		Role:    models.RoleSystem,
		Content: buildSystemPrompt(o.opts.Now(), in.Context),
	}

	messages := make([]models.Message, 0, len(in.History)+2)
	messages = append(messages, system)
	messages = append(messages, in.History...)
	messages = append(messages, models.Message{Role: models.RoleUser, Content: in.Message})

	toolCallsUsed := 0

	for iteration := 1; iteration <= o.opts.MaxIterations; iteration++ {
		reply, err := o.callProvider(ctx, messages)
		if err != nil {
			metrics.TurnsTotal.WithLabelValues("provider_error").Inc()
			return nil, fmt.Errorf("provider call failed on iteration %d: %w", iteration, err)
		}

		if len(reply.ToolCalls) == 0 {
			// Final answer
			metrics.TurnsTotal.WithLabelValues("completed").Inc()
			return &models.TurnOutcome{
				Response:          reply.Content,
				ShouldSaveInsight: shouldSaveInsight(in.Message, reply.Content),
				ToolCallsUsed:     toolCallsUsed,
				Timestamp:         o.opts.Now(),
			}, nil
		}

		slog.Info("Model requested tool calls",
			"iteration", iteration, "count", len(reply.ToolCalls), "session_id", in.SessionID)

		// Append the assistant message as-is so every tool message below
		// pairs with a tool_calls entry the provider has seen.
		messages = append(messages, *reply)
		messages = append(messages, o.dispatchAll(ctx, reply.ToolCalls, in.SessionID)...)
		toolCallsUsed += len(reply.ToolCalls)
	}

	metrics.TurnsTotal.WithLabelValues("max_iterations").Inc()
	return nil, fmt.Errorf("%w after %d iterations", ErrMaxIterations, o.opts.MaxIterations)
}

func (o *Orchestrator) callProvider(ctx context.Context, messages []models.Message) (*models.Message, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.opts.LLMTimeout)
	defer cancel()

	metrics.ProviderCalls.Inc()
	start := time.Now()
	reply, err := o.provider.Complete(callCtx, messages, o.catalog)
	metrics.ProviderCallDuration.Observe(time.Since(start).Seconds())
	return reply, err
}

// dispatchAll executes the iteration's tool calls concurrently and returns
// one tool message per request, in request order. The next provider call must
// not start until every result is in; the WaitGroup is that barrier.
func (o *Orchestrator) dispatchAll(ctx context.Context, calls []models.ToolCall, sessionID string) []models.Message {
	results := make([]models.Message, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call models.ToolCall) {
			defer wg.Done()
			results[i] = o.dispatchOne(ctx, call, sessionID)
		}(i, call)
	}
	wg.Wait()

	return results
}

// dispatchOne runs a single tool call through decode, session injection, and
// execution. It always produces a tool message: failures become error-shaped
// payloads the model can react to.
func (o *Orchestrator) dispatchOne(ctx context.Context, call models.ToolCall, sessionID string) models.Message {
	args := tools.DecodeArguments(call.Function.Arguments)

	// Correlate every backend call with the originating conversation, but
	// never overwrite an argument the model supplied itself.
	if sessionID != "" {
		if _, ok := args["sessionId"]; !ok {
			args["sessionId"] = sessionID
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, o.opts.ToolTimeout)
	defer cancel()

	name := call.Function.Name
	payload, err := o.executor.Execute(callCtx, name, args)

	var content string
	if err != nil {
		slog.Warn("Tool call failed", "tool", name, "tool_call_id", call.ID, "error", err)
		metrics.ToolCalls.WithLabelValues(name, "error").Inc()
		content = errorPayload(err)
	} else {
		metrics.ToolCalls.WithLabelValues(name, "ok").Inc()
		content = string(payload)
	}

	return models.Message{
		Role:       models.RoleTool,
		Content:    content,
		ToolCallID: call.ID,
		Name:       name,
	}
}

// errorPayload serializes a tool failure as the tool's "answer" so the model
// can retry, apologize, or proceed without the data.
func errorPayload(err error) string {
	b, marshalErr := json.Marshal(map[string]any{
		"success": false,
		"error":   err.Error(),
	})
	if marshalErr != nil {
		return `{"success":false,"error":"tool execution failed"}`
	}
	return string(b)
}
