// Package config loads and validates the gateway configuration.
// Values come from built-in defaults, an optional YAML file (with environment
// variables expanded), and API keys resolved from the environment.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize().
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Backend  BackendConfig  `yaml:"backend"`
	Turn     TurnConfig     `yaml:"turn"`
}

// ProviderConfig configures the OpenAI-compatible chat-completions provider.
type ProviderConfig struct {
	// Base URL of the chat-completions API (no trailing slash)
	BaseURL string `yaml:"base_url"`

	// Environment variable name holding the bearer token
	APIKeyEnv string `yaml:"api_key_env"`

	// Resolved at load time from APIKeyEnv; never read from YAML
	APIKey string `yaml:"-"`

	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`

	// Optional attribution headers (OpenRouter ranks traffic by these)
	Referer string `yaml:"referer"`
	Title   string `yaml:"title"`

	// Per-call timeout as a duration string ("120s")
	Timeout string `yaml:"timeout"`

	// Parsed form of Timeout
	CallTimeout time.Duration `yaml:"-"`
}

// BackendConfig configures the tool-execution backend proxy.
type BackendConfig struct {
	// Base URL of the backend REST facade (no trailing slash)
	BaseURL string `yaml:"base_url"`

	// Environment variable name holding the shared secret.
	// The secret is sent as x-api-key on every backend call and must
	// never reach the browser.
	APIKeyEnv string `yaml:"api_key_env"`

	// Resolved at load time from APIKeyEnv; never read from YAML
	APIKey string `yaml:"-"`

	// Per-tool-call timeout as a duration string ("30s")
	Timeout string `yaml:"timeout"`

	// Parsed form of Timeout
	CallTimeout time.Duration `yaml:"-"`
}

// TurnConfig bounds a single conversation turn.
type TurnConfig struct {
	// Maximum LLM round-trips before the turn fails
	MaxIterations int `yaml:"max_iterations"`
}

// defaults returns the built-in configuration. The YAML file overrides these
// field by field; API keys only ever come from the environment.
func defaults() *Config {
	return &Config{
		Provider: ProviderConfig{
			BaseURL:     "https://openrouter.ai/api/v1",
			APIKeyEnv:   "OPENROUTER_API_KEY",
			Model:       "openai/gpt-4o-mini",
			Temperature: 0.7,
			MaxTokens:   1000,
			Timeout:     "120s",
		},
		Backend: BackendConfig{
			APIKeyEnv: "BACKEND_API_KEY",
			Timeout:   "30s",
		},
		Turn: TurnConfig{
			MaxIterations: 5,
		},
	}
}
