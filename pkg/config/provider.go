package config

import "time"

// ProviderConfig holds the upstream model-provider connection settings.
type ProviderConfig struct {
	// BaseURL of the OpenRouter-compatible chat-completions API.
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	// The key itself never appears in YAML.
	APIKeyEnv string `yaml:"api_key_env"`

	// HTTPTimeout is the transport-level timeout; per-turn deadlines
	// are tighter and carried on the request context.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// MaxTokens and Temperature applied to completion requests.
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// DefaultProviderConfig returns the built-in provider defaults.
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		BaseURL:     "https://openrouter.ai/api/v1",
		APIKeyEnv:   "OPENROUTER_API_KEY",
		HTTPTimeout: 120 * time.Second,
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// RetentionConfig controls cleanup of finished sessions.
type RetentionConfig struct {
	Enabled bool `yaml:"enabled"`

	// MaxAge is how long finished sessions are kept.
	MaxAge time.Duration `yaml:"max_age"`

	// SweepInterval is how often the cleanup pass runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:       true,
		MaxAge:        30 * 24 * time.Hour,
		SweepInterval: 12 * time.Hour,
	}
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// ShutdownTimeout is the grace period for in-flight requests.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:            "0.0.0.0",
		Port:            8080,
		ShutdownTimeout: 10 * time.Second,
	}
}
