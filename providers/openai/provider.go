package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/haowjy/meridian-deckgen"
)

// DefaultBaseURL is the public OpenAI API root.
const DefaultBaseURL = "https://api.openai.com/v1"

// Provider implements the deckgen.Provider interface for OpenAI's Chat
// Completions API. Only the first choice of each completion is used.
type Provider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides the API root, e.g. for a compatible proxy.
func WithBaseURL(url string) Option {
	return func(p *Provider) {
		p.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// NewProvider creates a new OpenAI provider with the given API key.
func NewProvider(apiKey string, opts ...Option) (*Provider, error) {
	if apiKey == "" {
		return nil, deckgen.ErrInvalidAPIKey
	}

	p := &Provider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() deckgen.ProviderID {
	return deckgen.ProviderOpenAI
}

// SupportsModel returns true if this provider supports the given model.
// OpenAI chat models start with "gpt-".
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "gpt-")
}

// GenerateResponse generates a non-streaming response from OpenAI.
func (p *Provider) GenerateResponse(ctx context.Context, req *deckgen.GenerateRequest) (*deckgen.GenerateResponse, error) {
	// Validate model
	if !p.SupportsModel(req.Model) {
		return nil, &deckgen.ModelError{
			Model:    req.Model,
			Provider: p.Name().String(),
			Reason:   "model not supported by OpenAI (must start with 'gpt-')",
			Err:      deckgen.ErrInvalidModel,
		}
	}

	chatReq, err := buildChatCompletionRequest(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := p.buildHTTPRequest(ctx, chatReq)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("openai HTTP request aborted: %w", ctxErr)
		}
		return nil, &deckgen.ProviderError{
			Provider:  p.Name().String(),
			Message:   err.Error(),
			Retryable: true,
			Err:       deckgen.ErrProviderUnavailable,
		}
	}
	defer resp.Body.Close()

	// Handle error responses
	if resp.StatusCode != http.StatusOK {
		return nil, p.handleErrorResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var chatResp ChatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return convertFromChatCompletionResponse(&chatResp)
}

// buildHTTPRequest creates an HTTP request for the Chat Completions endpoint.
func (p *Provider) buildHTTPRequest(ctx context.Context, req *ChatCompletionRequest) (*http.Request, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	// Set headers
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}

// handleErrorResponse parses error responses from OpenAI.
func (p *Provider) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	// Try to parse structured error
	var errResp struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    any    `json:"code"`
		} `json:"error"`
	}

	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	return deckgen.ProviderErrorFromStatus(p.Name(), resp.StatusCode, message)
}
