package orchestrator

import "errors"

var (
	// ErrEmptyMessage rejects a turn whose user message is empty after
	// trimming; no network call is made.
	ErrEmptyMessage = errors.New("message is required")

	// ErrMaxIterations fails a turn where the model never stopped
	// requesting tools within the iteration budget.
	ErrMaxIterations = errors.New("max tool iterations reached without a final response")
)
