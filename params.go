package deckgen

import (
	"fmt"
)

// RequestParams represents the LLM request parameters deck generation uses.
// All fields are optional pointers to distinguish "not set" from "set to zero value".
type RequestParams struct {
	// MaxTokens sets the maximum number of tokens to generate
	MaxTokens *int `json:"max_tokens,omitempty"`

	// Temperature controls randomness (0.0-2.0)
	Temperature *float64 `json:"temperature,omitempty"`

	// TopP (nucleus sampling) - cumulative probability cutoff (0.0-1.0)
	TopP *float64 `json:"top_p,omitempty"`

	// Stop sequences - generation stops if any of these are generated
	Stop []string `json:"stop,omitempty"`

	// System prompt
	System *string `json:"system,omitempty"`
}

// ValidateRequestParams validates request parameters
func ValidateRequestParams(params *RequestParams) error {
	if params == nil {
		return nil // nil params is valid
	}

	if params.Temperature != nil {
		if *params.Temperature < 0.0 || *params.Temperature > 2.0 {
			return &ValidationError{
				Field:  "temperature",
				Value:  *params.Temperature,
				Reason: "must be between 0.0 and 2.0",
				Err:    ErrInvalidRequest,
			}
		}
	}

	if params.TopP != nil {
		if *params.TopP < 0.0 || *params.TopP > 1.0 {
			return &ValidationError{
				Field:  "top_p",
				Value:  *params.TopP,
				Reason: "must be between 0.0 and 1.0",
				Err:    ErrInvalidRequest,
			}
		}
	}

	if params.MaxTokens != nil {
		if *params.MaxTokens < 1 {
			return &ValidationError{
				Field:  "max_tokens",
				Value:  *params.MaxTokens,
				Reason: fmt.Sprintf("must be positive, got %d", *params.MaxTokens),
				Err:    ErrInvalidRequest,
			}
		}
	}

	return nil
}

// GetMaxTokens returns max_tokens with default fallback
func (rp *RequestParams) GetMaxTokens(defaultValue int) int {
	if rp != nil && rp.MaxTokens != nil {
		return *rp.MaxTokens
	}
	return defaultValue
}

// GetTemperature returns temperature with default fallback
func (rp *RequestParams) GetTemperature(defaultValue float64) float64 {
	if rp != nil && rp.Temperature != nil {
		return *rp.Temperature
	}
	return defaultValue
}
