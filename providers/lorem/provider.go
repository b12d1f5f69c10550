package lorem

import (
	"context"
	"strings"
	"sync"
	"time"

	loremgen "github.com/bozaro/golorem"
	"github.com/sirupsen/logrus"

	"github.com/haowjy/meridian-deckgen"
)

// Provider is a mock LLM provider that generates lorem ipsum text.
// Used for offline decks and tests without requiring real API keys.
//
// Replies are shaped like the real models' answers to the deck prompts:
// large caps get one paragraph, smaller caps get one sentence per line.
type Provider struct {
	// mu guards generator, whose random source is not safe for concurrent use.
	mu        sync.Mutex
	generator *loremgen.Lorem
	delay     time.Duration
	logger    logrus.FieldLogger
}

// Option configures a Provider.
type Option func(*Provider)

// WithDelay simulates network latency before each reply.
func WithDelay(d time.Duration) Option {
	return func(p *Provider) {
		p.delay = d
	}
}

// WithLogger sets the logger for per-call debug output.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		generator: loremgen.New(),
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider identifier.
func (p *Provider) Name() deckgen.ProviderID {
	return deckgen.ProviderLorem
}

// SupportsModel returns true if the model name starts with "lorem-".
// Example models: "lorem-fast", "lorem-cutoff"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "lorem-")
}

// paragraphThreshold is the max_tokens value at and above which a single
// paragraph is returned instead of a list of lines.
const paragraphThreshold = 500

// maxLines bounds list-shaped replies.
const maxLines = 8

// GenerateResponse generates a complete lorem ipsum response after the
// configured delay.
func (p *Provider) GenerateResponse(ctx context.Context, req *deckgen.GenerateRequest) (*deckgen.GenerateResponse, error) {
	// Validate model
	if !p.SupportsModel(req.Model) {
		return nil, &deckgen.ModelError{
			Model:    req.Model,
			Provider: p.Name().String(),
			Reason:   "model not supported by Lorem provider (must start with 'lorem-')",
			Err:      deckgen.ErrInvalidModel,
		}
	}

	maxTokens := req.Params.GetMaxTokens(paragraphThreshold)

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	text := p.reply(maxTokens)

	stopReason := "end_turn"
	if isCutoffModel(req.Model) {
		stopReason = "max_tokens"
	}

	outputTokens := len(strings.Fields(text)) // Word count as proxy

	p.logger.WithFields(logrus.Fields{
		"model":         req.Model,
		"max_tokens":    maxTokens,
		"output_tokens": outputTokens,
	}).Debug("lorem reply generated")

	return &deckgen.GenerateResponse{
		Blocks:       []*deckgen.Block{deckgen.NewTextBlock(0, text, deckgen.ProviderLorem)},
		Model:        req.Model,
		InputTokens:  estimateTokens(req.Messages),
		OutputTokens: outputTokens,
		StopReason:   stopReason,
		ResponseMetadata: map[string]interface{}{
			"mock":     true,
			"provider": "lorem",
		},
	}, nil
}

// isCutoffModel returns true if the model should report a max_tokens stop.
func isCutoffModel(model string) bool {
	return strings.Contains(model, "cutoff")
}

// lineCount assumes roughly 25 tokens per generated line.
func lineCount(maxTokens int) int {
	n := maxTokens / 25
	if n < 1 {
		return 1
	}
	if n > maxLines {
		return maxLines
	}
	return n
}

func (p *Provider) reply(maxTokens int) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if maxTokens >= paragraphThreshold {
		return p.generator.Paragraph(3, 5)
	}
	return p.generateLines(lineCount(maxTokens))
}

// generateLines returns n newline-separated sentences of 5-15 words.
// The caller holds p.mu.
func (p *Provider) generateLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = p.generator.Sentence(5, 15)
	}
	return strings.Join(lines, "\n")
}

// estimateTokens estimates the token count for a list of messages.
// Uses word count as a rough approximation.
func estimateTokens(messages []deckgen.Message) int {
	totalWords := 0
	for _, msg := range messages {
		for _, block := range msg.Blocks {
			if block.TextContent != nil {
				totalWords += len(strings.Fields(*block.TextContent))
			}
		}
	}
	return totalWords
}
