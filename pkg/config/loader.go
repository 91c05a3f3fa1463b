package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Load the YAML file (if path is non-empty), expand env variables,
//     and merge it over the defaults
//  3. Resolve API keys from the environment
//  4. Parse duration strings
//  5. Validate
func Initialize(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		// File values win; defaults fill whatever the file leaves out.
		if err := mergo.Merge(loaded, cfg); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
		cfg = loaded
		slog.Info("Loaded configuration file", "path", path)
	}

	cfg.Provider.APIKey = os.Getenv(cfg.Provider.APIKeyEnv)
	cfg.Backend.APIKey = os.Getenv(cfg.Backend.APIKeyEnv)

	if err := parseDurations(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	slog.Info("Configuration initialized",
		"provider_base_url", cfg.Provider.BaseURL,
		"model", cfg.Provider.Model,
		"backend_base_url", cfg.Backend.BaseURL,
		"max_iterations", cfg.Turn.MaxIterations)

	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(ExpandEnv(data), &cfg); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}
	return &cfg, nil
}

func parseDurations(cfg *Config) error {
	var err error
	if cfg.Provider.CallTimeout, err = time.ParseDuration(cfg.Provider.Timeout); err != nil {
		return &ValidationError{Component: "provider", Field: "timeout", Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
	}
	if cfg.Backend.CallTimeout, err = time.ParseDuration(cfg.Backend.Timeout); err != nil {
		return &ValidationError{Component: "backend", Field: "timeout", Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Provider.BaseURL == "" {
		return &ValidationError{Component: "provider", Field: "base_url", Err: ErrMissingRequiredField}
	}
	if cfg.Provider.Model == "" {
		return &ValidationError{Component: "provider", Field: "model", Err: ErrMissingRequiredField}
	}
	if cfg.Provider.APIKey == "" {
		return &ValidationError{Component: "provider", Field: "api_key",
			Err: fmt.Errorf("%w: set %s", ErrMissingRequiredField, cfg.Provider.APIKeyEnv)}
	}
	if cfg.Backend.BaseURL == "" {
		return &ValidationError{Component: "backend", Field: "base_url", Err: ErrMissingRequiredField}
	}
	if cfg.Backend.APIKey == "" {
		return &ValidationError{Component: "backend", Field: "api_key",
			Err: fmt.Errorf("%w: set %s", ErrMissingRequiredField, cfg.Backend.APIKeyEnv)}
	}
	if cfg.Turn.MaxIterations < 1 {
		return &ValidationError{Component: "turn", Field: "max_iterations",
			Err: fmt.Errorf("%w: must be at least 1", ErrInvalidValue)}
	}
	if cfg.Provider.CallTimeout <= 0 {
		return &ValidationError{Component: "provider", Field: "timeout",
			Err: fmt.Errorf("%w: must be positive", ErrInvalidValue)}
	}
	if cfg.Backend.CallTimeout <= 0 {
		return &ValidationError{Component: "backend", Field: "timeout",
			Err: fmt.Errorf("%w: must be positive", ErrInvalidValue)}
	}
	return nil
}
