package openai

import (
	"fmt"
	"strings"

	"github.com/haowjy/meridian-deckgen"
)

// convertToOpenAIMessages flattens each message's text blocks into a single
// string content.
func convertToOpenAIMessages(messages []deckgen.Message) ([]Message, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("request has no messages: %w", deckgen.ErrInvalidRequest)
	}

	result := make([]Message, 0, len(messages))
	for i, msg := range messages {
		if msg.Role != "user" && msg.Role != "assistant" {
			return nil, fmt.Errorf("message %d: unsupported role %q: %w", i, msg.Role, deckgen.ErrInvalidRequest)
		}

		parts := make([]string, 0, len(msg.Blocks))
		for j, block := range msg.Blocks {
			if block.BlockType != deckgen.BlockTypeText || block.TextContent == nil {
				return nil, fmt.Errorf("message %d, block %d: only text blocks are supported: %w", i, j, deckgen.ErrInvalidRequest)
			}
			parts = append(parts, *block.TextContent)
		}

		content := strings.Join(parts, "\n")
		result = append(result, Message{Role: msg.Role, Content: &content})
	}
	return result, nil
}

// convertFromChatCompletionResponse keeps the first choice only. A choice
// with null content yields an empty text block rather than an error.
func convertFromChatCompletionResponse(resp *ChatCompletionResponse) (*deckgen.GenerateResponse, error) {
	if len(resp.Choices) == 0 {
		return nil, deckgen.ErrEmptyResponse
	}

	choice := resp.Choices[0]

	var text string
	if choice.Message.Content != nil {
		text = *choice.Message.Content
	}

	// Map finish_reason to library stop_reason
	stopReason := ""
	if choice.FinishReason != nil {
		stopReason = mapFinishReason(*choice.FinishReason)
	}

	// Build response metadata
	responseMetadata := make(map[string]interface{})
	responseMetadata["total_tokens"] = resp.Usage.TotalTokens
	responseMetadata["response_id"] = resp.ID

	return &deckgen.GenerateResponse{
		Blocks:           []*deckgen.Block{deckgen.NewTextBlock(0, text, deckgen.ProviderOpenAI)},
		Model:            resp.Model,
		InputTokens:      resp.Usage.PromptTokens,
		OutputTokens:     resp.Usage.CompletionTokens,
		StopReason:       stopReason,
		ResponseMetadata: responseMetadata,
	}, nil
}

func mapFinishReason(finishReason string) string {
	switch finishReason {
	case "stop":
		return "end_turn"
	case "length":
		return "max_tokens"
	case "content_filter":
		return "stop_sequence"
	default:
		return finishReason
	}
}
