package tools

import "fmt"

// UnknownToolError is returned when the provider requests a tool that is not
// in the dispatch table. Recoverable at the per-call level: the orchestrator
// feeds it back to the model as that call's result.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// BackendError reports a non-success response from the backend proxy. Like
// UnknownToolError it degrades to a single error-shaped tool result; it never
// aborts sibling tool calls or the turn.
type BackendError struct {
	Tool       string
	StatusCode int
	Status     string
	Body       string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %s - %s", e.Status, e.Body)
}
