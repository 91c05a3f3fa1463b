// Package models holds the wire-level conversation types shared between the
// HTTP boundary, the LLM provider client, and the tool dispatcher.
package models

import (
	"encoding/json"
	"time"
)

// Message roles. The provider rejects conversations where a tool message's
// ToolCallID does not match a tool_calls entry emitted earlier.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one conversational turn in the OpenAI chat-completions format.
// Content may be empty on assistant messages that only carry tool calls
// (the provider sends JSON null, which decodes to the empty string).
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// ToolCall is the provider's request to execute one named tool.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type,omitempty"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the tool name and its raw argument payload.
// Arguments is kept raw because providers send either a JSON-encoded string
// or an already-parsed object; decoding happens at the dispatcher boundary.
type FunctionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ToolDefinition describes one tool in the static catalog passed verbatim to
// the provider on every call.
type ToolDefinition struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction is the function half of a ToolDefinition.
type ToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// TurnOutcome is the result of one completed user turn. It is returned to the
// caller and never persisted here; history persistence is the caller's job.
type TurnOutcome struct {
	Response          string
	ShouldSaveInsight bool
	ToolCallsUsed     int
	Timestamp         time.Time
}
