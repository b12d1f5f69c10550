package deckgen

import (
	"context"
)

// Provider defines the interface that all LLM providers must implement.
// Deck generation only needs blocking, single-turn completions, so the
// interface is limited to GenerateResponse plus model routing.
//
// Types used by this interface:
//   - GenerateRequest, Message: defined in request.go
//   - GenerateResponse: defined in response.go
type Provider interface {
	// GenerateResponse generates a complete response from the LLM provider (blocking).
	// It takes conversation context (messages) and returns content blocks.
	GenerateResponse(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Name returns the provider identifier (e.g., "anthropic", "openai", "lorem")
	Name() ProviderID

	// SupportsModel returns true if the provider supports the given model.
	SupportsModel(model string) bool
}
