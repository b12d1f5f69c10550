package deckgen

import (
	"context"
	"fmt"
)

// TextCompleter is the single capability content generation needs from a
// language model: one prompt in, one block of text out.
type TextCompleter interface {
	Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error)
}

// CompleterFunc adapts a function to TextCompleter.
type CompleterFunc func(ctx context.Context, model, prompt string, maxTokens int) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	return f(ctx, model, prompt, maxTokens)
}

// ProviderCompleter implements TextCompleter on top of a ProviderRegistry.
// The provider is chosen per call from the model name.
type ProviderCompleter struct {
	registry *ProviderRegistry
}

// NewProviderCompleter creates a completer backed by registry.
func NewProviderCompleter(registry *ProviderRegistry) *ProviderCompleter {
	return &ProviderCompleter{registry: registry}
}

// Complete sends prompt as a single user turn and returns the text of the
// first choice.
func (c *ProviderCompleter) Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	provider, err := c.registry.ForModel(model)
	if err != nil {
		return "", err
	}

	req := NewPromptRequest(model, prompt, maxTokens)
	if err := ValidateRequestParams(req.Params); err != nil {
		return "", err
	}

	resp, err := provider.GenerateResponse(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s completion: %w", provider.Name(), err)
	}
	return resp.FirstText(), nil
}
