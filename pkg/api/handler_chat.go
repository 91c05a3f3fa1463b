package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/quantshow/assistant-gateway/pkg/models"
	"github.com/quantshow/assistant-gateway/pkg/orchestrator"
)

// ChatRequest is the HTTP request body for POST /api/chat.
type ChatRequest struct {
	Message   string           `json:"message"`
	Context   string           `json:"context,omitempty"`
	History   []models.Message `json:"history,omitempty"`
	SessionID string           `json:"sessionId,omitempty"`
}

// ChatResponse is the HTTP response for POST /api/chat.
type ChatResponse struct {
	Response          string `json:"response"`
	ShouldSaveInsight bool   `json:"shouldSaveInsight"`
	ToolCallsUsed     int    `json:"toolCallsUsed"`
	Timestamp         string `json:"timestamp"`
}

// chatHandler handles POST /api/chat. Runs a full assistant turn: system
// prompt assembly, the provider loop, and any tool dispatches it requires.
func (s *Server) chatHandler(c *echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &ErrorResponse{Error: "Invalid request body"})
	}

	outcome, err := s.runner.RunTurn(c.Request().Context(), orchestrator.TurnInput{
		Message:   req.Message,
		Context:   req.Context,
		History:   req.History,
		SessionID: req.SessionID,
	})
	if err != nil {
		return mapTurnError(c, err)
	}

	return c.JSON(http.StatusOK, &ChatResponse{
		Response:          outcome.Response,
		ShouldSaveInsight: outcome.ShouldSaveInsight,
		ToolCallsUsed:     outcome.ToolCallsUsed,
		Timestamp:         outcome.Timestamp.Format(time.RFC3339),
	})
}

// mapTurnError maps orchestrator errors to HTTP error responses. Empty input
// is the caller's fault; everything else that escapes the turn is a server
// failure and must never surface as a panic trace.
func mapTurnError(c *echo.Context, err error) error {
	if errors.Is(err, orchestrator.ErrEmptyMessage) {
		return c.JSON(http.StatusBadRequest, &ErrorResponse{Error: "Message is required"})
	}

	slog.Error("Chat turn failed", "error", err)
	return c.JSON(http.StatusInternalServerError, &ErrorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}
