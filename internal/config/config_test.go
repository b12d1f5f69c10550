package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DECKGEN_ADDR", "DECKGEN_LOG_LEVEL", "DECKGEN_CONCURRENCY", "DECKGEN_HTTP_TIMEOUT", "DECKGEN_CATALOG", "DECKGEN_CORS_ORIGINS", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":8080" || cfg.LogLevel != "info" || cfg.Concurrency != 1 || cfg.HTTPTimeout != 120*time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.CatalogPath != "" || len(cfg.CORSOrigins) != 0 {
		t.Errorf("unexpected optional defaults: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "" || cfg.AnthropicAPIKey != "" {
		t.Error("no credentials should be present")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DECKGEN_ADDR", "127.0.0.1:9000")
	t.Setenv("DECKGEN_LOG_LEVEL", "debug")
	t.Setenv("DECKGEN_CONCURRENCY", "4")
	t.Setenv("DECKGEN_HTTP_TIMEOUT", "30s")
	t.Setenv("DECKGEN_CATALOG", "/etc/deckgen/catalog.yaml")
	t.Setenv("DECKGEN_CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_API_KEY", "ant-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		Addr:            "127.0.0.1:9000",
		LogLevel:        "debug",
		Concurrency:     4,
		HTTPTimeout:     30 * time.Second,
		CatalogPath:     "/etc/deckgen/catalog.yaml",
		CORSOrigins:     []string{"http://a.example", "http://b.example"},
		OpenAIAPIKey:    "sk-test",
		AnthropicAPIKey: "ant-test",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
	if cfg.NewLogger().GetLevel() != logrus.DebugLevel {
		t.Error("logger should be at debug level")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero concurrency", "DECKGEN_CONCURRENCY", "0"},
		{"negative timeout", "DECKGEN_HTTP_TIMEOUT", "-1s"},
		{"unknown log level", "DECKGEN_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadEnv_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("DECKGEN_TEST_WALK=found\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	wd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DECKGEN_TEST_WALK", "")
	os.Unsetenv("DECKGEN_TEST_WALK")

	LoadEnv()

	if got := os.Getenv("DECKGEN_TEST_WALK"); got != "found" {
		t.Errorf("DECKGEN_TEST_WALK = %q, want %q", got, "found")
	}
}
