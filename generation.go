package deckgen

import (
	"fmt"
	"strings"
)

// GenerationRequest is one validated user request for a deck.
// It is built once per button press and consumed by a single generation.
type GenerationRequest struct {
	Topic       string
	SlideCount  int // Number of subtopic slides
	BulletCount int // Maximum lines per subtopic slide
	Model       string
}

// NewGenerationRequest validates the inputs against the catalog limits.
func NewGenerationRequest(c *Catalog, topic string, slideCount, bulletCount int, model string) (GenerationRequest, error) {
	req := GenerationRequest{
		Topic:       topic,
		SlideCount:  slideCount,
		BulletCount: bulletCount,
		Model:       model,
	}
	if err := req.Validate(c); err != nil {
		return GenerationRequest{}, err
	}
	return req, nil
}

// Validate checks the request. The topic is checked first so an empty
// topic is always reported as ErrEmptyTopic.
func (r GenerationRequest) Validate(c *Catalog) error {
	if strings.TrimSpace(r.Topic) == "" {
		return &ValidationError{
			Field:  "topic",
			Value:  r.Topic,
			Reason: "Please enter a topic for the presentation.",
			Err:    ErrEmptyTopic,
		}
	}

	if !c.Limits.SlideCount.Contains(r.SlideCount) {
		return &ValidationError{
			Field:  "slide_count",
			Value:  r.SlideCount,
			Reason: fmt.Sprintf("must be between %d and %d", c.Limits.SlideCount.Min, c.Limits.SlideCount.Max),
			Err:    ErrInvalidRequest,
		}
	}

	if !c.Limits.BulletCount.Contains(r.BulletCount) {
		return &ValidationError{
			Field:  "bullet_count",
			Value:  r.BulletCount,
			Reason: fmt.Sprintf("must be between %d and %d", c.Limits.BulletCount.Min, c.Limits.BulletCount.Max),
			Err:    ErrInvalidRequest,
		}
	}

	if strings.TrimSpace(r.Model) == "" {
		return &ValidationError{
			Field:  "model",
			Value:  r.Model,
			Reason: "model is required",
			Err:    ErrInvalidRequest,
		}
	}

	return nil
}

// ExpectedSlides is the number of content slides a generation produces:
// introduction, index, then one per subtopic.
func (r GenerationRequest) ExpectedSlides() int {
	return r.SlideCount + 2
}
