// Package config loads runtime settings for the deck generator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	Addr        string        `mapstructure:"addr"`
	LogLevel    string        `mapstructure:"log_level"`
	Concurrency int           `mapstructure:"concurrency"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	CatalogPath string        `mapstructure:"catalog"`
	CORSOrigins []string      `mapstructure:"cors_origins"`

	// Credentials are opaque strings passed to the providers that need them.
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
}

// LoadEnv searches for a .env file starting from the current directory
// and walking up the directory tree. It loads the first .env file found.
// If no .env file is found, it silently continues (using system env vars).
// Variables already set in the environment win over the file.
func LoadEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// Load resolves configuration from DECKGEN_* environment variables, with
// defaults for anything unset. Provider keys use their conventional
// unprefixed names.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DECKGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for key, env := range map[string]string{
		"openai_api_key":    "OPENAI_API_KEY",
		"anthropic_api_key": "ANTHROPIC_API_KEY",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Comma-separated env values arrive as a single element.
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("concurrency", 1)
	v.SetDefault("http_timeout", "120s")
	v.SetDefault("catalog", "")
	v.SetDefault("cors_origins", []string{})
}

func (c *Config) validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("DECKGEN_CONCURRENCY must be at least 1, got %d", c.Concurrency)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("DECKGEN_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("DECKGEN_LOG_LEVEL: %w", err)
	}
	return nil
}

// NewLogger builds a logrus logger at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
