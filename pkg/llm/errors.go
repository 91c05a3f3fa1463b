package llm

import "fmt"

// ProviderError reports a failed provider call: transport failure, non-2xx
// status, or an unusable response shape. Provider failures are fatal to the
// turn and are not retried.
type ProviderError struct {
	// StatusCode is 0 when the request never produced an HTTP response.
	StatusCode int
	Detail     string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("provider error: %s", e.Detail)
}
