package api

import "github.com/quantshow/assistant-gateway/pkg/models"

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ToolsResponse is returned by GET /api/tools.
type ToolsResponse struct {
	Tools []models.ToolDefinition `json:"tools"`
	Count int                     `json:"count"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Model   string                 `json:"model"`
	Tools   int                    `json:"tools"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
