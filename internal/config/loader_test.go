package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	t.Setenv(EnvFrontAPIKey, "front-key")
	t.Setenv(EnvFrontAppSecret, "front-secret")
	t.Setenv(EnvGeminiAPIKey, "gemini-key")
}

func TestLoadDefaults(t *testing.T) {
	setTestSecrets(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Listen != DefaultListen {
		t.Errorf("Listen = %q, want %q", cfg.Listen, DefaultListen)
	}
	if cfg.Front.BaseURL != DefaultFrontBaseURL {
		t.Errorf("Front.BaseURL = %q, want %q", cfg.Front.BaseURL, DefaultFrontBaseURL)
	}
	if cfg.LLM.Model != DefaultLLMModel {
		t.Errorf("LLM.Model = %q, want %q", cfg.LLM.Model, DefaultLLMModel)
	}
	if cfg.Secrets.FrontAppSecret != "front-secret" {
		t.Errorf("Secrets.FrontAppSecret = %q, want env value", cfg.Secrets.FrontAppSecret)
	}
}

func TestLoadFile(t *testing.T) {
	setTestSecrets(t)

	path := filepath.Join(t.TempDir(), "axis.yaml")
	content := `
service:
  name: axis-test
  log_level: DEBUG
listen: "127.0.0.1:9999"
front:
  base_url: http://localhost:8081
llm:
  model: gemini-test
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Name != "axis-test" {
		t.Errorf("Service.Name = %q, want axis-test", cfg.Service.Name)
	}
	if cfg.Listen != "127.0.0.1:9999" {
		t.Errorf("Listen = %q, want 127.0.0.1:9999", cfg.Listen)
	}
	if cfg.LLM.Model != "gemini-test" {
		t.Errorf("LLM.Model = %q, want gemini-test", cfg.LLM.Model)
	}
	// Unset fields still get defaults
	if cfg.State.Path != DefaultStatePath {
		t.Errorf("State.Path = %q, want default", cfg.State.Path)
	}
}

func TestLoadMissingSecrets(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing front api key", EnvFrontAPIKey},
		{"missing front app secret", EnvFrontAppSecret},
		{"missing gemini key", EnvGeminiAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTestSecrets(t)
			t.Setenv(tt.unset, "")

			_, err := Load("")
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.unset) {
				t.Errorf("error %q should name %s", err, tt.unset)
			}
		})
	}
}

func TestLoadBadFile(t *testing.T) {
	setTestSecrets(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() on missing file expected error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() on malformed yaml expected error")
	}
}
