package deckgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestContentGenerator_QuantumComputing(t *testing.T) {
	completer := &scriptedCompleter{
		respond: func(call int, prompt string) (string, error) {
			switch {
			case strings.HasPrefix(prompt, "Write a brief introduction"):
				return "  Quantum computers use qubits.  \n", nil
			case strings.HasPrefix(prompt, "List the main sections"):
				return "Basics\nAlgorithms\nHardware\nApplications\nOutlook", nil
			default:
				return "Point A\nPoint B\nPoint C\nPoint D\nPoint E", nil
			}
		},
	}
	gen := NewContentGenerator(completer, WithLogger(quietLogger()))

	req := GenerationRequest{Topic: "Quantum Computing", SlideCount: 2, BulletCount: 3, Model: "gpt-3.5-turbo"}
	content, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := SlideContent{
		{"Quantum computers use qubits."},
		{"Basics", "Algorithms", "Hardware", "Applications", "Outlook"},
		{"Point A", "Point B", "Point C"},
		{"Point A", "Point B", "Point C"},
	}
	if !reflect.DeepEqual(content, want) {
		t.Errorf("Generate() = %#v, want %#v", content, want)
	}

	calls := completer.Calls()
	wantCalls := []recordedCall{
		{Model: "gpt-3.5-turbo", Prompt: "Write a brief introduction for a presentation on Quantum Computing.", MaxTokens: IntroductionMaxTokens},
		{Model: "gpt-3.5-turbo", Prompt: "List the main sections or subtopics for a presentation on Quantum Computing.", MaxTokens: IndexMaxTokens},
		{Model: "gpt-3.5-turbo", Prompt: "Generate up to 3 bullet points for slide 1 of a presentation about Quantum Computing.", MaxTokens: SubtopicMaxTokens},
		{Model: "gpt-3.5-turbo", Prompt: "Generate up to 3 bullet points for slide 2 of a presentation about Quantum Computing.", MaxTokens: SubtopicMaxTokens},
	}
	if !reflect.DeepEqual(calls, wantCalls) {
		t.Errorf("calls = %#v, want %#v", calls, wantCalls)
	}
}

func TestContentGenerator_LengthAndCaps(t *testing.T) {
	tests := []struct {
		name        string
		slideCount  int
		bulletCount int
		reply       string
		wantLines   int
	}{
		{"fewer lines than cap", 3, 5, "one\ntwo", 2},
		{"exactly cap", 1, 2, "one\ntwo", 2},
		{"over cap is truncated", 4, 1, "one\ntwo\nthree", 1},
		{"max slides", 20, 10, strings.Repeat("x\n", 15), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := CompleterFunc(func(_ context.Context, _, _ string, _ int) (string, error) {
				return tt.reply, nil
			})
			gen := NewContentGenerator(completer, WithLogger(quietLogger()))

			req := GenerationRequest{Topic: "Go", SlideCount: tt.slideCount, BulletCount: tt.bulletCount, Model: "m"}
			content, err := gen.Generate(context.Background(), req)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(content) != tt.slideCount+2 {
				t.Fatalf("len(content) = %d, want %d", len(content), tt.slideCount+2)
			}
			if len(content[0]) != 1 {
				t.Errorf("introduction has %d lines, want 1", len(content[0]))
			}
			for i := 2; i < len(content); i++ {
				if len(content[i]) != tt.wantLines {
					t.Errorf("slide %d has %d lines, want %d", i, len(content[i]), tt.wantLines)
				}
			}
		})
	}
}

func TestContentGenerator_IndexIsNotCapped(t *testing.T) {
	index := strings.TrimSpace(strings.Repeat("section\n", 12))
	completer := &scriptedCompleter{
		respond: func(call int, _ string) (string, error) {
			if call == 1 {
				return index, nil
			}
			return "a\nb\nc", nil
		},
	}
	gen := NewContentGenerator(completer, WithLogger(quietLogger()))

	content, err := gen.Generate(context.Background(), GenerationRequest{Topic: "Go", SlideCount: 1, BulletCount: 1, Model: "m"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(content[1]) != 12 {
		t.Errorf("index has %d lines, want 12", len(content[1]))
	}
	if len(content[2]) != 1 {
		t.Errorf("subtopic has %d lines, want 1", len(content[2]))
	}
}

func TestContentGenerator_EmptyResponses(t *testing.T) {
	completer := CompleterFunc(func(_ context.Context, _, _ string, _ int) (string, error) {
		return "", nil
	})
	gen := NewContentGenerator(completer, WithLogger(quietLogger()))

	content, err := gen.Generate(context.Background(), GenerationRequest{Topic: "Go", SlideCount: 2, BulletCount: 3, Model: "m"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i, lines := range content {
		if !reflect.DeepEqual(lines, SlideLines{""}) {
			t.Errorf("slide %d = %#v, want a single empty line", i, lines)
		}
	}
}

func TestContentGenerator_ErrorAbortsWithoutContent(t *testing.T) {
	serviceErr := errors.New("service unavailable")

	tests := []struct {
		name      string
		failOn    int
		wantStage string
		wantSlide int
		wantCalls int
	}{
		{"introduction fails", 0, StageIntroduction, 0, 1},
		{"index fails", 1, StageIndex, 1, 2},
		{"second subtopic fails", 3, StageSubtopic, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &scriptedCompleter{
				respond: func(call int, _ string) (string, error) {
					if call == tt.failOn {
						return "", serviceErr
					}
					return "text", nil
				},
			}
			gen := NewContentGenerator(completer, WithLogger(quietLogger()))

			content, err := gen.Generate(context.Background(), GenerationRequest{Topic: "Go", SlideCount: 3, BulletCount: 2, Model: "m"})
			if content != nil {
				t.Errorf("expected no content on failure, got %#v", content)
			}
			if !errors.Is(err, serviceErr) {
				t.Fatalf("error should wrap the completer error, got %v", err)
			}

			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected *GenerationError, got %T", err)
			}
			if genErr.Stage != tt.wantStage || genErr.Slide != tt.wantSlide {
				t.Errorf("GenerationError = {%s %d}, want {%s %d}", genErr.Stage, genErr.Slide, tt.wantStage, tt.wantSlide)
			}
			if got := len(completer.Calls()); got != tt.wantCalls {
				t.Errorf("completer called %d times, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestContentGenerator_ConcurrentPreservesOrder(t *testing.T) {
	var inFlight, peak atomic.Int32
	completer := CompleterFunc(func(_ context.Context, _, prompt string, _ int) (string, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}

		var slide int
		if _, err := fmt.Sscanf(prompt, "Generate up to 2 bullet points for slide %d", &slide); err != nil {
			return "header", nil
		}
		// Later slides finish first.
		time.Sleep(time.Duration(10-slide) * time.Millisecond)
		return fmt.Sprintf("slide %d line 1\nslide %d line 2", slide, slide), nil
	})
	gen := NewContentGenerator(completer, WithConcurrency(4), WithLogger(quietLogger()))

	content, err := gen.Generate(context.Background(), GenerationRequest{Topic: "Go", SlideCount: 8, BulletCount: 2, Model: "m"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := 2; i < len(content); i++ {
		want := fmt.Sprintf("slide %d line 1", i-1)
		if content[i][0] != want {
			t.Errorf("content[%d][0] = %q, want %q", i, content[i][0], want)
		}
	}
	if peak.Load() > 4 {
		t.Errorf("peak concurrency = %d, want <= 4", peak.Load())
	}
}

func TestContentGenerator_ConcurrentError(t *testing.T) {
	serviceErr := errors.New("boom")
	completer := CompleterFunc(func(_ context.Context, _, prompt string, _ int) (string, error) {
		if strings.Contains(prompt, "slide 3 ") {
			return "", serviceErr
		}
		return "ok", nil
	})
	gen := NewContentGenerator(completer, WithConcurrency(3), WithLogger(quietLogger()))

	content, err := gen.Generate(context.Background(), GenerationRequest{Topic: "Go", SlideCount: 5, BulletCount: 2, Model: "m"})
	if content != nil {
		t.Errorf("expected no content, got %#v", content)
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != StageSubtopic || genErr.Slide != 4 {
		t.Errorf("unexpected error %v", err)
	}
}

func TestWithConcurrency_ClampsToOne(t *testing.T) {
	gen := NewContentGenerator(nil, WithConcurrency(0))
	if gen.concurrency != 1 {
		t.Errorf("concurrency = %d, want 1", gen.concurrency)
	}
}
