// Package app assembles the deck generator from configuration.
package app

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/haowjy/meridian-deckgen"
	"github.com/haowjy/meridian-deckgen/internal/config"
	"github.com/haowjy/meridian-deckgen/pipeline"
	"github.com/haowjy/meridian-deckgen/providers/anthropic"
	"github.com/haowjy/meridian-deckgen/providers/lorem"
	"github.com/haowjy/meridian-deckgen/providers/openai"
)

// App holds the long-lived pieces shared by every request.
type App struct {
	Service  *pipeline.Service
	Registry *prometheus.Registry
	Catalog  *deckgen.Catalog
}

// New builds the provider registry, catalog, metrics and pipeline.
func New(cfg *config.Config, logger logrus.FieldLogger) (*App, error) {
	catalog := deckgen.DefaultCatalog()
	if cfg.CatalogPath != "" {
		c, err := deckgen.LoadCatalogFromFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		catalog = c
	}

	providers, err := NewProviderRegistry(cfg, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := pipeline.NewRecorder(registry)
	if err != nil {
		return nil, err
	}

	svc := pipeline.New(catalog, deckgen.NewProviderCompleter(providers),
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(recorder),
		pipeline.WithConcurrency(cfg.Concurrency),
	)

	return &App{Service: svc, Registry: registry, Catalog: catalog}, nil
}

// NewProviderRegistry registers a provider for every configured credential.
// The lorem provider needs none and is always available.
func NewProviderRegistry(cfg *config.Config, logger logrus.FieldLogger) (*deckgen.ProviderRegistry, error) {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	registry := deckgen.NewProviderRegistry()

	if cfg.OpenAIAPIKey != "" {
		p, err := openai.NewProvider(cfg.OpenAIAPIKey, openai.WithHTTPClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("openai provider: %w", err)
		}
		registry.Register(p)
	} else {
		logger.Warn("OPENAI_API_KEY not set; gpt-* models are unavailable")
	}

	if cfg.AnthropicAPIKey != "" {
		p, err := anthropic.NewProvider(cfg.AnthropicAPIKey, anthropic.WithHTTPClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("anthropic provider: %w", err)
		}
		registry.Register(p)
	} else {
		logger.Warn("ANTHROPIC_API_KEY not set; claude-* models are unavailable")
	}

	registry.Register(lorem.NewProvider(lorem.WithLogger(logger)))

	return registry, nil
}
