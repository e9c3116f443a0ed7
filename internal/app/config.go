package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"regiontrip/internal/console"
	"regiontrip/internal/districts"
	"regiontrip/internal/navigator"
)

// Environment variables read by ApplyEnv.
const (
	EnvAppKey   = "REGIONTRIP_APPKEY"
	EnvLanguage = "REGIONTRIP_LANG"
)

// ErrMissingAppKey is returned when an API call is needed but no app key was given.
var ErrMissingAppKey = errors.New("app key required")

// Config holds runtime wiring options for building the app.
type Config struct {
	AppKey   string `yaml:"app_key"`
	Language string `yaml:"language"` // ko, en
	Dataset  string `yaml:"dataset"`  // optional regions YAML replacing the embedded one

	API        APIConfig        `yaml:"api"`
	Navigation NavigationConfig `yaml:"navigation"`
	Log        LogConfig        `yaml:"log"`

	HTTP *http.Client `yaml:"-"` // optional; built from API.Timeout when nil
}

// APIConfig configures the districts endpoint.
type APIConfig struct {
	BaseURL  string `yaml:"base_url"`
	Type     string `yaml:"type"`
	PageSize int    `yaml:"page_size"`
	MaxPages int    `yaml:"max_pages"`
	Timeout  string `yaml:"timeout"` // Go duration; empty or 0 means none
}

// NavigationConfig configures the explorer.
type NavigationConfig struct {
	MaxDepth int `yaml:"max_depth"`
}

// LogConfig configures diagnostics on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Language: console.DefaultLanguage,
		API: APIConfig{
			BaseURL:  districts.DefaultBaseURL,
			Type:     districts.DefaultType,
			PageSize: districts.DefaultPageSize,
			MaxPages: districts.DefaultMaxPages,
		},
		Navigation: NavigationConfig{MaxDepth: navigator.DefaultMaxDepth},
		Log:        LogConfig{Level: "warn"},
	}
}

// DefaultPath returns ~/.regiontrip/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".regiontrip", "config.yaml"), nil
}

// LoadConfig overlays the YAML file at path on DefaultConfig. A missing file
// is only an error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvAppKey); v != "" {
		c.AppKey = v
	}
	if v := getenv(EnvLanguage); v != "" {
		c.Language = v
	}
}

// Validate checks the settings that can't be caught by YAML decoding.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("config: api.base_url is empty")
	}
	if c.API.PageSize <= 0 {
		return fmt.Errorf("config: api.page_size must be positive, got %d", c.API.PageSize)
	}
	if c.API.MaxPages <= 0 {
		return fmt.Errorf("config: api.max_pages must be positive, got %d", c.API.MaxPages)
	}
	if _, err := c.APITimeout(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// APITimeout parses API.Timeout.
func (c Config) APITimeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: api.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: api.timeout must not be negative, got %s", d)
	}
	return d, nil
}
