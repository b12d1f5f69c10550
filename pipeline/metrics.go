package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/haowjy/meridian-deckgen"
)

// Generation outcomes used as the status label.
const (
	StatusOK               = "ok"
	StatusInvalid          = "invalid"
	StatusGenerationFailed = "generation_failed"
	StatusBuildFailed      = "build_failed"
)

// Recorder reports pipeline metrics using Prometheus primitives.
type Recorder struct {
	generations *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	completions *prometheus.CounterVec
}

// NewRecorder creates the pipeline collectors and registers them.
func NewRecorder(registry prometheus.Registerer) (*Recorder, error) {
	if registry == nil {
		return nil, fmt.Errorf("prometheus registry is nil")
	}

	r := &Recorder{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "deckgen_generation_total",
			Help: "Total number of deck generations by outcome",
		}, []string{"status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "deckgen_generation_duration_seconds",
			Help:    "End-to-end deck generation latency in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"status"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "deckgen_completion_total",
			Help: "Total language-model completions by model and outcome",
		}, []string{"model", "status"}),
	}

	for _, collector := range []prometheus.Collector{r.generations, r.durations, r.completions} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

// ObserveGeneration records one pipeline run.
func (r *Recorder) ObserveGeneration(status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(status).Inc()
	r.durations.WithLabelValues(status).Observe(duration.Seconds())
}

// ObserveCompletion records one completion call.
func (r *Recorder) ObserveCompletion(model string, err error) {
	if r == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.completions.WithLabelValues(model, status).Inc()
}

// instrument counts every completion that passes through c.
func (r *Recorder) instrument(c deckgen.TextCompleter) deckgen.TextCompleter {
	if r == nil {
		return c
	}
	return deckgen.CompleterFunc(func(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
		text, err := c.Complete(ctx, model, prompt, maxTokens)
		r.ObserveCompletion(model, err)
		return text, err
	})
}
