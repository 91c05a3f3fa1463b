package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitialize_DefaultsOnly(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("BACKEND_API_KEY", "secret")

	cfg, err := Initialize(writeConfigFile(t, `
backend:
  base_url: http://backend.local
`))
	require.NoError(t, err)

	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.Provider.BaseURL)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.Provider.Model)
	assert.Equal(t, "sk-test", cfg.Provider.APIKey)
	assert.Equal(t, "secret", cfg.Backend.APIKey)
	assert.Equal(t, "http://backend.local", cfg.Backend.BaseURL)
	assert.Equal(t, 5, cfg.Turn.MaxIterations)
	assert.Equal(t, 120*time.Second, cfg.Provider.CallTimeout)
	assert.Equal(t, 30*time.Second, cfg.Backend.CallTimeout)
}

func TestInitialize_FileOverridesDefaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("BACKEND_API_KEY", "secret")

	cfg, err := Initialize(writeConfigFile(t, `
provider:
  model: anthropic/claude-sonnet-4
  max_tokens: 2000
  timeout: 60s
backend:
  base_url: http://backend.local
  timeout: 10s
turn:
  max_iterations: 3
`))
	require.NoError(t, err)

	assert.Equal(t, "anthropic/claude-sonnet-4", cfg.Provider.Model)
	assert.Equal(t, 2000, cfg.Provider.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.Provider.CallTimeout)
	assert.Equal(t, 10*time.Second, cfg.Backend.CallTimeout)
	assert.Equal(t, 3, cfg.Turn.MaxIterations)
	// Untouched fields keep their defaults
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.Provider.BaseURL)
}

func TestInitialize_EnvExpansionInFile(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("BACKEND_API_KEY", "secret")
	t.Setenv("BACKEND_URL", "https://api.internal.example")

	cfg, err := Initialize(writeConfigFile(t, `
backend:
  base_url: "{{.BACKEND_URL}}"
`))
	require.NoError(t, err)
	assert.Equal(t, "https://api.internal.example", cfg.Backend.BaseURL)
}

func TestInitialize_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		yaml      string
		wantField string
	}{
		{
			name:      "missing provider key",
			env:       map[string]string{"BACKEND_API_KEY": "secret"},
			yaml:      "backend:\n  base_url: http://backend.local\n",
			wantField: "api_key",
		},
		{
			name:      "missing backend base url",
			env:       map[string]string{"OPENROUTER_API_KEY": "sk", "BACKEND_API_KEY": "secret"},
			yaml:      "turn:\n  max_iterations: 5\n",
			wantField: "base_url",
		},
		{
			name:      "missing backend key",
			env:       map[string]string{"OPENROUTER_API_KEY": "sk"},
			yaml:      "backend:\n  base_url: http://backend.local\n",
			wantField: "api_key",
		},
		{
			name:      "bad timeout",
			env:       map[string]string{"OPENROUTER_API_KEY": "sk", "BACKEND_API_KEY": "secret"},
			yaml:      "backend:\n  base_url: http://backend.local\n  timeout: never\n",
			wantField: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENROUTER_API_KEY", "")
			t.Setenv("BACKEND_API_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Initialize(writeConfigFile(t, tt.yaml))
			require.Error(t, err)

			var validErr *ValidationError
			require.ErrorAs(t, err, &validErr)
			assert.Equal(t, tt.wantField, validErr.Field)
		})
	}
}

func TestInitialize_InvalidYAML(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk")
	t.Setenv("BACKEND_API_KEY", "secret")

	_, err := Initialize(writeConfigFile(t, "provider: [not a mapping"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize("/nonexistent/gateway.yaml")
	require.Error(t, err)
}
