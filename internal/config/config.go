// Package config loads application configuration from defaults, an optional
// YAML file and the environment. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/promptenhancer/internal/enhance"
	"github.com/renato0307/promptenhancer/internal/logging"
	"github.com/renato0307/promptenhancer/internal/ui"
)

// AppName is used for the config directory and log file names
const AppName = "promptenhancer"

// Environment variables
const (
	EnvAPIKey       = "PROMPTENHANCER_API_KEY"
	EnvModel        = "PROMPTENHANCER_MODEL"
	EnvBaseURL      = "PROMPTENHANCER_BASE_URL"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// Config is the full application configuration
type Config struct {
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
	BaseURL  string `json:"baseURL,omitempty"`
	// APIKey is normally taken from the environment; a value in the file
	// is honored but environment variables win.
	APIKey string `json:"apiKey,omitempty"`

	Theme string `json:"theme"`
	// LightMode starts the UI with light-background colors
	LightMode bool `json:"lightMode,omitempty"`

	Log LogConfig `json:"log"`
}

// LogConfig configures the log file. An empty File disables logging.
type LogConfig struct {
	File       string `json:"file,omitempty"`
	Level      string `json:"level"`
	Format     string `json:"format"`
	MaxSizeMB  int    `json:"maxSizeMB,omitempty"`
	MaxBackups int    `json:"maxBackups,omitempty"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Provider: enhance.ProviderGemini,
		Theme:    ui.DefaultThemeName,
		Log: LogConfig{
			Level:  "info",
			Format: string(logging.FormatText),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/promptenhancer/config.yaml (or the
// platform equivalent). Empty if no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// Load reads defaults, then the YAML file at path, then the environment.
// A missing file is only an error when required is true (the user passed
// --config explicitly).
func Load(path string, required bool, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
			// optional file
		default:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if getenv == nil {
		getenv = os.Getenv
	}
	cfg.ApplyEnv(getenv)

	return cfg, nil
}

// ApplyEnv overlays environment variables. The provider-specific key
// variable is consulted after the provider is known, so call it after any
// provider override from the file.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvModel); v != "" {
		c.Model = v
	}
	if v := getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}

	switch {
	case getenv(EnvAPIKey) != "":
		c.APIKey = getenv(EnvAPIKey)
	case c.Provider == enhance.ProviderOpenAI && getenv(EnvOpenAIAPIKey) != "":
		c.APIKey = getenv(EnvOpenAIAPIKey)
	case (c.Provider == enhance.ProviderGemini || c.Provider == "") && getenv(EnvGeminiAPIKey) != "":
		c.APIKey = getenv(EnvGeminiAPIKey)
	}
}

// WithProvider switches to another provider. The key, model and endpoint
// configured so far belong to the previous provider, so they are dropped
// and the environment is consulted again for the new one. Selecting the
// current provider changes nothing.
func (c *Config) WithProvider(provider string, getenv func(string) string) {
	if provider == c.Provider {
		return
	}
	c.Provider = provider
	c.APIKey = ""
	c.Model = ""
	c.BaseURL = ""
	c.ApplyEnv(getenv)
}

// Validate rejects settings that would make the app unusable. A missing API
// key is accepted: it shows up as a failed enhancement at call time.
func (c Config) Validate() error {
	switch c.Provider {
	case enhance.ProviderGemini, enhance.ProviderOpenAI, enhance.ProviderMock:
	default:
		return fmt.Errorf("invalid provider %q: must be one of %s, %s, %s",
			c.Provider, enhance.ProviderGemini, enhance.ProviderOpenAI, enhance.ProviderMock)
	}

	switch c.Log.Format {
	case string(logging.FormatText), string(logging.FormatJSON), "":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Log.Format)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.Log.Level)
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return errors.New("log rotation settings must not be negative")
	}
	return nil
}

// EnhanceConfig returns the client configuration
func (c Config) EnhanceConfig() enhance.Config {
	return enhance.Config{
		Provider: c.Provider,
		Model:    c.Model,
		APIKey:   c.APIKey,
		BaseURL:  c.BaseURL,
	}
}

// LoggingConfig returns the logger configuration
func (c Config) LoggingConfig() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}
