package deckgen

import (
	"errors"
	"fmt"
	"testing"
)

func TestProviderErrorFromStatus(t *testing.T) {
	tests := []struct {
		status        int
		wantSentinel  error
		wantRetryable bool
		wantAuth      bool
	}{
		{401, ErrInvalidAPIKey, false, true},
		{403, ErrInvalidAPIKey, false, true},
		{429, ErrRateLimited, true, false},
		{400, ErrInvalidRequest, false, false},
		{404, ErrInvalidRequest, false, false},
		{500, ErrProviderUnavailable, true, false},
		{503, ErrProviderUnavailable, true, false},
		{418, ErrProviderUnavailable, false, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			err := ProviderErrorFromStatus(ProviderOpenAI, tt.status, "message")

			if !errors.Is(err, tt.wantSentinel) {
				t.Errorf("error should wrap %v, got %v", tt.wantSentinel, err)
			}
			if got := IsRetryable(err); got != tt.wantRetryable {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.wantRetryable)
			}
			if got := IsAuthError(err); got != tt.wantAuth {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.wantAuth)
			}

			var providerErr *ProviderError
			if !errors.As(err, &providerErr) {
				t.Fatalf("expected *ProviderError, got %T", err)
			}
			if providerErr.Provider != "openai" || providerErr.StatusCode != tt.status {
				t.Errorf("unexpected provider error fields: %+v", providerErr)
			}
		})
	}
}

func TestErrorClassifiers(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		retryable   bool
		invalidReq  bool
		authFailure bool
	}{
		{"nil", nil, false, false, false},
		{"empty topic", &ValidationError{Field: "topic", Err: ErrEmptyTopic}, false, true, false},
		{"invalid model", &ModelError{Model: "x", Err: ErrInvalidModel}, false, true, false},
		{"rate limited sentinel", fmt.Errorf("wrapped: %w", ErrRateLimited), true, false, false},
		{"unavailable sentinel", ErrProviderUnavailable, true, false, false},
		{"api key sentinel", ErrInvalidAPIKey, false, false, true},
		{"plain error", errors.New("other"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.retryable)
			}
			if got := IsInvalidRequest(tt.err); got != tt.invalidReq {
				t.Errorf("IsInvalidRequest() = %v, want %v", got, tt.invalidReq)
			}
			if got := IsAuthError(tt.err); got != tt.authFailure {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.authFailure)
			}
		})
	}
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := ProviderErrorFromStatus(ProviderAnthropic, 429, "slow down")
	err := fmt.Errorf("pipeline: %w", &GenerationError{Stage: StageIndex, Slide: 1, Err: cause})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatal("expected GenerationError in chain")
	}
	if genErr.Error() != "generate index (slide 1): provider 'anthropic' error (status 429): slow down" {
		t.Errorf("Error() = %q", genErr.Error())
	}
	if !IsRetryable(err) {
		t.Error("rate limit should stay retryable through GenerationError")
	}
}

func TestBuildError_Unwrap(t *testing.T) {
	cause := errors.New("zip failure")
	err := &BuildError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("BuildError should unwrap to its cause")
	}
	if err.Error() != "build deck: zip failure" {
		t.Errorf("Error() = %q", err.Error())
	}
}
