// Package config loads tool configuration from ~/.nakala/config.yaml
// and the environment. Resolution order, weakest first: built-in
// defaults, config file, NAKALA_* environment variables, command-line
// flags (applied by the caller).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"nakala/client"
	"nakala/profile"
)

// Environment variables recognized by Load.
const (
	EnvAPIURL    = "NAKALA_API_URL"
	EnvAPIKey    = "NAKALA_API_KEY"
	EnvRateLimit = "NAKALA_RATE_LIMIT"
)

// Config is the tool configuration.
type Config struct {
	// APIURL is the NAKALA instance base URL. Defaults to the test
	// instance.
	APIURL string `yaml:"api_url,omitempty"`

	// APIKey authenticates every call. Defaults to the public test key,
	// which only works against the test instance.
	APIKey string `yaml:"api_key,omitempty"`

	// RateLimit is the pause between consecutive API calls, in seconds.
	RateLimit float64 `yaml:"rate_limit,omitempty"`

	// DefaultLang is the language tag assumed for untagged metadata
	// values in manifests.
	DefaultLang string `yaml:"default_lang,omitempty"`
}

// Default returns the built-in configuration: the test instance with
// the public test key.
func Default() *Config {
	return &Config{
		APIURL:    client.DefaultBaseURL,
		APIKey:    client.TestAPIKey,
		RateLimit: client.DefaultDelay.Seconds(),
	}
}

// Path returns the config file location under the config directory.
func Path() (string, error) {
	dir, err := profile.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file if present and applies environment
// overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		if secs, err := strconv.ParseFloat(v, 64); err == nil && secs >= 0 {
			c.RateLimit = secs
		}
	}
}

// Save writes the configuration to the config file, creating the config
// directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Client builds a NAKALA API client from the configuration.
func (c *Config) Client() *client.Client {
	cl := client.New(c.APIURL, c.APIKey)
	cl.Delay = time.Duration(c.RateLimit * float64(time.Second))
	return cl
}

// UsingTestKey reports whether the configuration still carries the
// public test key. Commands warn on this when targeting the production
// instance.
func (c *Config) UsingTestKey() bool {
	return c.APIKey == client.TestAPIKey
}
