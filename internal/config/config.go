// Package config holds all dayboard configuration.
// Configuration is an explicit struct constructed at process entry and
// passed into the bootstrap sequence; nothing reads ambient globals after
// startup.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all dayboard configuration.
type Config struct {
	// AppID namespaces this installation's per-user document paths.
	AppID string `yaml:"app_id"`

	// Provider configures the external identity provider.
	Provider ProviderConfig `yaml:"provider"`

	// InitialToken is an optional pre-issued credential token supplied by
	// the hosting environment. Empty means anonymous sign-in only.
	InitialToken string `yaml:"initial_token"`

	// Store configures the per-user document store endpoint.
	Store StoreConfig `yaml:"store"`

	// Theme for the TUI ("light" or "dark", empty = auto-detect).
	Theme string `yaml:"theme"`

	// Logging controls categorized file logging.
	Logging LoggingConfig `yaml:"logging"`
}

// ProviderConfig configures the identity provider client.
// An entirely empty ProviderConfig puts the bootstrap into the blocked
// state; a partially-filled one is a validation error.
type ProviderConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url"`
	APIKey  string `yaml:"api_key" json:"api_key"`
}

// StoreConfig configures the document store client handle.
type StoreConfig struct {
	BaseURL string `yaml:"base_url"`
}

// LoggingConfig controls the logging package.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"` // debug, info, warn, error
	Dir       string `yaml:"dir"`   // log directory, default ~/.dayboard/logs
}

// IsEmpty reports whether no provider has been configured at all.
func (p ProviderConfig) IsEmpty() bool {
	return p.BaseURL == "" && p.APIKey == ""
}

// Validate checks a non-empty provider configuration for usability.
func (p ProviderConfig) Validate() error {
	if p.IsEmpty() {
		return nil
	}
	if p.BaseURL == "" {
		return fmt.Errorf("provider config: base_url is required")
	}
	if !strings.HasPrefix(p.BaseURL, "http://") && !strings.HasPrefix(p.BaseURL, "https://") {
		return fmt.Errorf("provider config: base_url %q is not an http(s) URL", p.BaseURL)
	}
	return nil
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		AppID: "dayboard",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location.
// Prefers a project-local .dayboard directory, falling back to the
// home-level one.
func DefaultPath() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ".dayboard", "config.yaml")
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dayboard", "config.yaml"), nil
}

// Load reads the configuration from the given path, applying defaults and
// environment overrides. A missing file is not an error: defaults plus
// environment are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults + env only.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnvOverrides layers environment variables over file values.
// DAYBOARD_PROVIDER_CONFIG carries the whole provider configuration as one
// serialized JSON value, matching how the hosting environment injects it.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("DAYBOARD_APP_ID"); v != "" {
		c.AppID = v
	}
	if v := os.Getenv("DAYBOARD_PROVIDER_CONFIG"); v != "" {
		var pc ProviderConfig
		if err := json.Unmarshal([]byte(v), &pc); err != nil {
			return fmt.Errorf("parse DAYBOARD_PROVIDER_CONFIG: %w", err)
		}
		c.Provider = pc
	}
	if v := os.Getenv("DAYBOARD_PROVIDER_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("DAYBOARD_PROVIDER_KEY"); v != "" {
		c.Provider.APIKey = v
	}
	if v := os.Getenv("DAYBOARD_INITIAL_TOKEN"); v != "" {
		c.InitialToken = v
	}
	if v := os.Getenv("DAYBOARD_STORE_URL"); v != "" {
		c.Store.BaseURL = v
	}
	if v := os.Getenv("DAYBOARD_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("DAYBOARD_DEBUG"); v == "1" || strings.EqualFold(v, "true") {
		c.Logging.DebugMode = true
	}
	return nil
}

// Save writes the configuration to the given path, creating the directory
// if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
