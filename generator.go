package deckgen

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ContentGenerator turns a GenerationRequest into SlideContent by issuing
// a fixed sequence of completions: introduction, index, then one per
// subtopic. It holds no per-request state and may be shared.
type ContentGenerator struct {
	completer   TextCompleter
	logger      logrus.FieldLogger
	concurrency int
}

// GeneratorOption configures a ContentGenerator.
type GeneratorOption func(*ContentGenerator)

// WithLogger sets the logger used for per-call debug output.
func WithLogger(logger logrus.FieldLogger) GeneratorOption {
	return func(g *ContentGenerator) {
		g.logger = logger
	}
}

// WithConcurrency bounds how many subtopic completions may be in flight at
// once. Values below 1 mean sequential. Output order never changes.
func WithConcurrency(n int) GeneratorOption {
	return func(g *ContentGenerator) {
		if n < 1 {
			n = 1
		}
		g.concurrency = n
	}
}

// NewContentGenerator creates a generator on top of completer.
func NewContentGenerator(completer TextCompleter, opts ...GeneratorOption) *ContentGenerator {
	g := &ContentGenerator{
		completer:   completer,
		logger:      logrus.StandardLogger(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces req.SlideCount+2 slides. Any completion failure aborts
// the whole generation with a *GenerationError and no content.
// The request is assumed to be validated already.
func (g *ContentGenerator) Generate(ctx context.Context, req GenerationRequest) (SlideContent, error) {
	content := make(SlideContent, req.ExpectedSlides())

	intro, err := g.complete(ctx, req.Model, introductionPrompt(req.Topic), IntroductionMaxTokens, StageIntroduction, 0)
	if err != nil {
		return nil, err
	}
	content[0] = SlideLines{strings.TrimSpace(intro)}

	index, err := g.complete(ctx, req.Model, indexPrompt(req.Topic), IndexMaxTokens, StageIndex, 1)
	if err != nil {
		return nil, err
	}
	// The index is deliberately not capped.
	content[1] = splitLines(index)

	if err := g.generateSubtopics(ctx, req, content); err != nil {
		return nil, err
	}

	return content, nil
}

// generateSubtopics fills content[2:]. Each goroutine writes only its own
// slot, so no locking is needed and order follows slide number.
func (g *ContentGenerator) generateSubtopics(ctx context.Context, req GenerationRequest, content SlideContent) error {
	if g.concurrency <= 1 {
		for i := 1; i <= req.SlideCount; i++ {
			lines, err := g.subtopic(ctx, req, i)
			if err != nil {
				return err
			}
			content[i+1] = lines
		}
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i := 1; i <= req.SlideCount; i++ {
		eg.Go(func() error {
			lines, err := g.subtopic(egCtx, req, i)
			if err != nil {
				return err
			}
			content[i+1] = lines
			return nil
		})
	}
	return eg.Wait()
}

func (g *ContentGenerator) subtopic(ctx context.Context, req GenerationRequest, slide int) (SlideLines, error) {
	text, err := g.complete(ctx, req.Model, subtopicPrompt(req.Topic, slide, req.BulletCount), SubtopicMaxTokens, StageSubtopic, slide+1)
	if err != nil {
		return nil, err
	}
	return truncateLines(splitLines(text), req.BulletCount), nil
}

func (g *ContentGenerator) complete(ctx context.Context, model, prompt string, maxTokens int, stage string, position int) (string, error) {
	entry := g.logger.WithFields(logrus.Fields{
		"model": model,
		"stage": stage,
		"slide": position,
	})
	entry.Debug("requesting completion")

	text, err := g.completer.Complete(ctx, model, prompt, maxTokens)
	if err != nil {
		entry.WithError(err).Warn("completion failed")
		return "", &GenerationError{Stage: stage, Slide: position, Err: err}
	}

	entry.WithField("chars", len(text)).Debug("completion received")
	return text, nil
}
