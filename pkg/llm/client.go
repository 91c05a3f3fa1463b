// Package llm implements the chat-completions client for the LLM provider.
// The provider is any OpenAI-compatible endpoint (OpenRouter in production);
// the gateway talks plain HTTP/JSON and never loads a vendor SDK.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/quantshow/assistant-gateway/pkg/config"
	"github.com/quantshow/assistant-gateway/pkg/models"
)

// Client calls the provider's chat-completions endpoint.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	referer     string
	title       string
	httpClient  *http.Client
}

// NewClient creates a provider client from configuration.
// Per-call timeouts are enforced by the caller via context, not here.
func NewClient(cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		referer:     cfg.Referer,
		title:       cfg.Title,
		httpClient:  &http.Client{},
	}
}

// chatRequest is the chat-completions request body.
type chatRequest struct {
	Model       string                  `json:"model"`
	Messages    []models.Message        `json:"messages"`
	Tools       []models.ToolDefinition `json:"tools,omitempty"`
	ToolChoice  string                  `json:"tool_choice,omitempty"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens,omitempty"`
}

// chatResponse is the subset of the chat-completions response the gateway
// consumes.
type chatResponse struct {
	Choices []struct {
		Message models.Message `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation and tool catalog to the provider and
// returns the assistant message. Any failure — transport, non-2xx status, or
// a response without choices — is a *ProviderError and fatal to the turn.
func (c *Client) Complete(ctx context.Context, messages []models.Message, tools []models.ToolDefinition) (*models.Message, error) {
	body := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	if len(tools) > 0 {
		body.Tools = tools
		body.ToolChoice = "auto"
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.Header.Set("X-Title", c.title)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &ProviderError{StatusCode: resp.StatusCode, Detail: string(detail)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Detail: fmt.Sprintf("decode response: %v", err)}
	}
	if len(parsed.Choices) == 0 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Detail: "response contained no choices"}
	}

	msg := parsed.Choices[0].Message
	return &msg, nil
}

const maxErrorBodyBytes = 4096
