// Package pipeline runs one deck request end to end: validation, content
// generation, layout and serialization.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/haowjy/meridian-deckgen"
	"github.com/haowjy/meridian-deckgen/deck"
)

// Service turns validated form input into a downloadable deck. It is safe
// for concurrent use; each call is independent.
type Service struct {
	catalog   *deckgen.Catalog
	generator *deckgen.ContentGenerator
	validator *deckgen.ValidationEngine
	metrics   *Recorder
	logger    logrus.FieldLogger
}

type options struct {
	logger      logrus.FieldLogger
	metrics     *Recorder
	concurrency int
}

// Option configures a Service.
type Option func(*options)

// WithLogger sets the logger. Each run logs under its own run_id.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records runs and completions on r.
func WithMetrics(r *Recorder) Option {
	return func(o *options) {
		o.metrics = r
	}
}

// WithConcurrency bounds parallel subtopic completions.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// New creates a Service that validates against catalog and generates text
// through completer.
func New(catalog *deckgen.Catalog, completer deckgen.TextCompleter, opts ...Option) *Service {
	o := options{
		logger:      logrus.StandardLogger(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Service{
		catalog: catalog,
		generator: deckgen.NewContentGenerator(
			o.metrics.instrument(completer),
			deckgen.WithLogger(o.logger),
			deckgen.WithConcurrency(o.concurrency),
		),
		validator: deckgen.NewValidationEngine(catalog),
		metrics:   o.metrics,
		logger:    o.logger,
	}
}

// Catalog returns the catalog the service validates against.
func (s *Service) Catalog() *deckgen.Catalog {
	return s.catalog
}

// Generate validates req, generates every slide's text and builds the
// deck. Nothing is generated for an invalid request, and nothing is built
// unless every completion succeeded.
func (s *Service) Generate(ctx context.Context, req deckgen.GenerationRequest, style deckgen.StyleOptions) (*deck.Download, error) {
	start := time.Now()
	log := s.logger.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"topic":  req.Topic,
		"model":  req.Model,
		"slides": req.SlideCount,
	})

	if err := req.Validate(s.catalog); err != nil {
		log.WithError(err).Info("rejected generation request")
		s.metrics.ObserveGeneration(StatusInvalid, time.Since(start))
		return nil, err
	}

	warnings := s.validator.Validate(req, style)
	for _, w := range deckgen.FilterWarningsBySeverity(warnings, deckgen.SeverityWarning) {
		warningEntry(log, w).Warn(w.Message)
	}
	for _, w := range deckgen.FilterWarningsBySeverity(warnings, deckgen.SeverityInfo) {
		warningEntry(log, w).Info(w.Message)
	}

	log.Info("generating deck content")
	content, err := s.generator.Generate(ctx, req)
	if err != nil {
		log.WithError(err).Error("content generation failed")
		s.metrics.ObserveGeneration(StatusGenerationFailed, time.Since(start))
		return nil, err
	}

	data, err := deck.Build(req.Topic, content, style)
	if err != nil {
		log.WithError(err).Error("deck build failed")
		s.metrics.ObserveGeneration(StatusBuildFailed, time.Since(start))
		return nil, err
	}

	s.metrics.ObserveGeneration(StatusOK, time.Since(start))
	log.WithFields(logrus.Fields{
		"bytes":    len(data),
		"duration": time.Since(start).String(),
	}).Info("deck ready")

	return deck.NewDownload(data, len(content)), nil
}

func warningEntry(log *logrus.Entry, w deckgen.ValidationWarning) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"code":     w.Code,
		"field":    w.Field,
		"severity": w.Severity,
	})
}

// StatusOf classifies an error returned by Generate.
func StatusOf(err error) string {
	var genErr *deckgen.GenerationError
	var buildErr *deckgen.BuildError
	switch {
	case err == nil:
		return StatusOK
	case errors.As(err, &genErr):
		return StatusGenerationFailed
	case errors.As(err, &buildErr):
		return StatusBuildFailed
	default:
		return StatusInvalid
	}
}
