package openai

import (
	"fmt"

	"github.com/haowjy/meridian-deckgen"
)

// ChatCompletionRequest represents an OpenAI chat completion request.
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	TopP        *float64  `json:"top_p,omitempty"`
	Stop        []string  `json:"stop,omitempty"`
	N           int       `json:"n,omitempty"`
}

// Message represents a message in the conversation.
type Message struct {
	Role    string  `json:"role"` // "system", "user", "assistant"
	Content *string `json:"content"`
}

// ChatCompletionResponse represents a chat completion response.
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"` // "chat.completion"
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice represents a completion choice in the response.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason *string `json:"finish_reason"` // "stop", "length", "content_filter"
}

// Usage reports token counts for a completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// buildChatCompletionRequest converts a GenerateRequest into the wire format.
// A system prompt becomes a leading system message. Exactly one choice is
// requested.
func buildChatCompletionRequest(req *deckgen.GenerateRequest) (*ChatCompletionRequest, error) {
	messages, err := convertToOpenAIMessages(req.Messages)
	if err != nil {
		return nil, fmt.Errorf("failed to convert messages: %w", err)
	}

	// Extract params or use defaults
	params := req.Params
	if params == nil {
		params = &deckgen.RequestParams{}
	}

	if params.System != nil {
		system := *params.System
		messages = append([]Message{{Role: "system", Content: &system}}, messages...)
	}

	chatReq := &ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
		TopP:        params.TopP,
		N:           1,
	}

	// Stop sequences
	if len(params.Stop) > 0 {
		chatReq.Stop = params.Stop
	}

	return chatReq, nil
}
