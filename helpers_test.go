package deckgen

import (
	"context"
	"strings"
	"sync"
)

// Test helper functions shared across test files

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func float64Ptr(f float64) *float64 {
	return &f
}

// recordedCall is one Complete invocation seen by scriptedCompleter.
type recordedCall struct {
	Model     string
	Prompt    string
	MaxTokens int
}

// scriptedCompleter answers each prompt via respond and records every call.
type scriptedCompleter struct {
	mu      sync.Mutex
	calls   []recordedCall
	respond func(call int, prompt string) (string, error)
}

func (s *scriptedCompleter) Complete(_ context.Context, model, prompt string, maxTokens int) (string, error) {
	s.mu.Lock()
	n := len(s.calls)
	s.calls = append(s.calls, recordedCall{Model: model, Prompt: prompt, MaxTokens: maxTokens})
	s.mu.Unlock()
	return s.respond(n, prompt)
}

func (s *scriptedCompleter) Calls() []recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedCall(nil), s.calls...)
}

// fakeProvider serves models with a fixed prefix and echoes a canned reply.
type fakeProvider struct {
	name   ProviderID
	prefix string
	reply  string
	err    error
	last   *GenerateRequest
}

func (p *fakeProvider) GenerateResponse(_ context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	p.last = req
	if p.err != nil {
		return nil, p.err
	}
	return &GenerateResponse{
		Blocks: []*Block{NewTextBlock(0, p.reply, p.name)},
		Model:  req.Model,
	}, nil
}

func (p *fakeProvider) Name() ProviderID {
	return p.name
}

func (p *fakeProvider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, p.prefix)
}
