package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/haowjy/meridian-deckgen"
)

// Provider implements the deckgen.Provider interface for Anthropic (Claude) models.
type Provider struct {
	client *anthropic.Client
}

// Option customizes the underlying SDK client.
type Option func(*[]option.RequestOption)

// WithBaseURL points the client at a different API host.
func WithBaseURL(url string) Option {
	return func(opts *[]option.RequestOption) {
		*opts = append(*opts, option.WithBaseURL(url))
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *[]option.RequestOption) {
		*opts = append(*opts, option.WithHTTPClient(client))
	}
}

// NewProvider creates a new Anthropic provider with the given API key.
// The SDK's automatic retries are disabled; a failed call fails the deck.
func NewProvider(apiKey string, opts ...Option) (*Provider, error) {
	if apiKey == "" {
		return nil, deckgen.ErrInvalidAPIKey
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	for _, opt := range opts {
		opt(&reqOpts)
	}

	client := anthropic.NewClient(reqOpts...)

	return &Provider{
		client: &client,
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() deckgen.ProviderID {
	return deckgen.ProviderAnthropic
}

// SupportsModel returns true if this provider supports the given model.
// Anthropic models start with "claude-"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "claude-")
}

// GenerateResponse generates a response from Claude.
func (p *Provider) GenerateResponse(ctx context.Context, req *deckgen.GenerateRequest) (*deckgen.GenerateResponse, error) {
	// Validate model
	if !p.SupportsModel(req.Model) {
		return nil, &deckgen.ModelError{
			Model:    req.Model,
			Provider: p.Name().String(),
			Reason:   "model not supported by Anthropic (must start with 'claude-')",
			Err:      deckgen.ErrInvalidModel,
		}
	}

	apiParams, err := buildMessageParams(req)
	if err != nil {
		return nil, err
	}

	message, err := p.client.Messages.New(ctx, apiParams)
	if err != nil {
		return nil, p.mapError(ctx, err)
	}

	return convertFromAnthropicResponse(message), nil
}

// mapError translates SDK failures into the deckgen error taxonomy.
func (p *Provider) mapError(ctx context.Context, err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return deckgen.ProviderErrorFromStatus(p.Name(), apiErr.StatusCode, apiErr.Error())
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("anthropic API call aborted: %w", ctxErr)
	}
	return &deckgen.ProviderError{
		Provider:  p.Name().String(),
		Message:   err.Error(),
		Retryable: true,
		Err:       deckgen.ErrProviderUnavailable,
	}
}
