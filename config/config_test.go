package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"nakala/client"
	"nakala/profile"
)

func TestLoadDefaults(t *testing.T) {
	profile.SetConfigDir(t.TempDir())
	defer profile.SetConfigDir("")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != client.DefaultBaseURL {
		t.Errorf("got APIURL %q, want %q", cfg.APIURL, client.DefaultBaseURL)
	}
	if !cfg.UsingTestKey() {
		t.Error("default config should carry the test key")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	profile.SetConfigDir(dir)
	defer profile.SetConfigDir("")

	content := "api_url: https://api.nakala.fr\napi_key: file-key\nrate_limit: 2.5\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://api.nakala.fr" {
		t.Errorf("got APIURL %q from file", cfg.APIURL)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("env override lost: got %q", cfg.APIKey)
	}
	if cfg.RateLimit != 2.5 {
		t.Errorf("got rate limit %v, want 2.5", cfg.RateLimit)
	}

	cl := cfg.Client()
	if cl.Delay != 2500*time.Millisecond {
		t.Errorf("got delay %v, want 2.5s", cl.Delay)
	}
	if cl.APIKey != "env-key" {
		t.Errorf("client got key %q", cl.APIKey)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	profile.SetConfigDir(dir)
	defer profile.SetConfigDir("")

	cfg := Default()
	cfg.APIKey = "saved-key"
	cfg.DefaultLang = "fr"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.APIKey != "saved-key" || loaded.DefaultLang != "fr" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}
