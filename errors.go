package deckgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
// These can be checked with errors.Is().
var (
	// ErrInvalidModel indicates the requested model is not supported by any provider.
	ErrInvalidModel = errors.New("deckgen: invalid or unsupported model")

	// ErrInvalidAPIKey indicates the API key is missing, malformed, or unauthorized.
	ErrInvalidAPIKey = errors.New("deckgen: invalid API key")

	// ErrRateLimited indicates the provider's rate limit has been exceeded.
	ErrRateLimited = errors.New("deckgen: rate limit exceeded")

	// ErrInvalidRequest indicates the request parameters are invalid.
	ErrInvalidRequest = errors.New("deckgen: invalid request")

	// ErrEmptyTopic indicates the presentation topic was blank.
	ErrEmptyTopic = errors.New("deckgen: topic is required")

	// ErrProviderUnavailable indicates the provider service is down or unreachable.
	ErrProviderUnavailable = errors.New("deckgen: provider unavailable")

	// ErrEmptyResponse indicates the provider returned no choices at all.
	ErrEmptyResponse = errors.New("deckgen: provider returned no choices")
)

// ModelError represents an error related to model validation or availability.
type ModelError struct {
	Model    string // The model that was requested
	Provider string // The provider name
	Reason   string // Human-readable explanation
	Err      error  // Wrapped error (usually ErrInvalidModel)
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model '%s' for provider '%s': %s (%v)", e.Model, e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("model '%s' for provider '%s': %s", e.Model, e.Provider, e.Reason)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// ValidationError represents an error in user input or request parameter validation.
type ValidationError struct {
	Field  string // The field that failed validation
	Value  any    // The invalid value
	Reason string // Human-readable explanation
	Err    error  // Wrapped error (ErrInvalidRequest or ErrEmptyTopic)
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation failed for '%s' (value: %v): %s (%v)", e.Field, e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("validation failed for '%s' (value: %v): %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ProviderError represents an error from the underlying provider API.
type ProviderError struct {
	Provider   string // The provider name
	StatusCode int    // HTTP status code (if applicable)
	Message    string // Error message from provider
	Retryable  bool   // Whether this error is potentially retryable
	Err        error  // Wrapped sentinel error (ErrRateLimited, ErrProviderUnavailable, etc.)
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider '%s' error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider '%s' error: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Generation stages, in the order they are issued.
const (
	StageIntroduction = "introduction"
	StageIndex        = "index"
	StageSubtopic     = "subtopic"
)

// GenerationError reports the completion call that aborted content generation.
// No partial content accompanies it.
type GenerationError struct {
	Stage string // StageIntroduction, StageIndex or StageSubtopic
	Slide int    // Position of the slide being generated (0-indexed)
	Err   error  // The completer error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s (slide %d): %v", e.Stage, e.Slide, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// BuildError reports a failure while assembling or serializing the deck.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build deck: %v", e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error is potentially retryable.
// Nothing in this module retries; callers may use it for messaging.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}

	if errors.Is(err, ErrRateLimited) {
		return true
	}

	if errors.Is(err, ErrProviderUnavailable) {
		return true
	}

	return false
}

// IsInvalidRequest checks if an error indicates invalid request parameters.
// These errors are not retryable and require request changes.
func IsInvalidRequest(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrEmptyTopic) {
		return true
	}

	if errors.Is(err, ErrInvalidModel) {
		return true
	}

	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthError checks if an error is related to authentication.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrInvalidAPIKey) {
		return true
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		// HTTP 401/403 indicate auth issues
		return providerErr.StatusCode == 401 || providerErr.StatusCode == 403
	}

	return false
}

// ProviderErrorFromStatus maps an HTTP status from a provider API onto the
// error taxonomy. Shared by the HTTP-based providers.
func ProviderErrorFromStatus(provider ProviderID, statusCode int, message string) error {
	switch statusCode {
	case 401, 403:
		return &ProviderError{
			Provider:   provider.String(),
			StatusCode: statusCode,
			Message:    message,
			Err:        ErrInvalidAPIKey,
		}
	case 429:
		return &ProviderError{
			Provider:   provider.String(),
			StatusCode: statusCode,
			Message:    message,
			Retryable:  true,
			Err:        ErrRateLimited,
		}
	case 400, 404, 422:
		return &ProviderError{
			Provider:   provider.String(),
			StatusCode: statusCode,
			Message:    message,
			Err:        ErrInvalidRequest,
		}
	default:
		return &ProviderError{
			Provider:   provider.String(),
			StatusCode: statusCode,
			Message:    message,
			Retryable:  statusCode >= 500,
			Err:        ErrProviderUnavailable,
		}
	}
}
