package deckgen

import (
	"fmt"
	"sync"
)

// ProviderID represents a unique provider identifier.
// Using a typed constant prevents typos and provides compile-time safety.
type ProviderID string

// Known provider identifiers
const (
	// ProviderAnthropic is Anthropic's Claude API
	ProviderAnthropic ProviderID = "anthropic"

	// ProviderOpenAI is OpenAI's Chat Completions API
	ProviderOpenAI ProviderID = "openai"

	// ProviderLorem is the offline Lorem provider for development and tests
	ProviderLorem ProviderID = "lorem"
)

// String returns the string representation of the provider ID
func (p ProviderID) String() string {
	return string(p)
}

// IsValid returns true if the provider ID is a known provider
func (p ProviderID) IsValid() bool {
	switch p {
	case ProviderAnthropic, ProviderOpenAI, ProviderLorem:
		return true
	default:
		return false
	}
}

// ProviderRegistry routes a model name to the provider that serves it.
// Providers are consulted in registration order.
type ProviderRegistry struct {
	providers []Provider
	mu        sync.RWMutex
}

// NewProviderRegistry creates a registry holding the given providers.
func NewProviderRegistry(providers ...Provider) *ProviderRegistry {
	r := &ProviderRegistry{}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds a provider. A provider registered under an existing name
// replaces the earlier one.
func (r *ProviderRegistry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.providers {
		if existing.Name() == p.Name() {
			r.providers[i] = p
			return
		}
	}
	r.providers = append(r.providers, p)
}

// Get returns the provider registered under id.
func (r *ProviderRegistry) Get(id ProviderID) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.Name() == id {
			return p, true
		}
	}
	return nil, false
}

// ForModel returns the first provider that supports model.
func (r *ProviderRegistry) ForModel(model string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.SupportsModel(model) {
			return p, nil
		}
	}
	return nil, &ModelError{
		Model:    model,
		Provider: "none",
		Reason:   fmt.Sprintf("no registered provider supports this model (%d registered)", len(r.providers)),
		Err:      ErrInvalidModel,
	}
}

// Names lists registered provider IDs in registration order.
func (r *ProviderRegistry) Names() []ProviderID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]ProviderID, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name())
	}
	return names
}
