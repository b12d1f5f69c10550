package anthropic

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/haowjy/meridian-deckgen"
)

// convertToAnthropicMessages converts library messages to Anthropic SDK format.
// Only text blocks are sent.
func convertToAnthropicMessages(messages []deckgen.Message) ([]anthropic.MessageParam, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("request has no messages: %w", deckgen.ErrInvalidRequest)
	}

	result := make([]anthropic.MessageParam, 0, len(messages))

	for i, msg := range messages {
		blocks := make([]anthropic.ContentBlockParamUnion, 0, len(msg.Blocks))

		for j, block := range msg.Blocks {
			if block.BlockType != deckgen.BlockTypeText {
				return nil, fmt.Errorf("message %d, block %d: unsupported block type %q: %w", i, j, block.BlockType, deckgen.ErrInvalidRequest)
			}
			if block.TextContent == nil {
				return nil, fmt.Errorf("message %d, block %d: text block missing text_content: %w", i, j, deckgen.ErrInvalidRequest)
			}
			blocks = append(blocks, anthropic.NewTextBlock(*block.TextContent))
		}

		switch msg.Role {
		case "user":
			result = append(result, anthropic.NewUserMessage(blocks...))
		case "assistant":
			result = append(result, anthropic.NewAssistantMessage(blocks...))
		default:
			return nil, fmt.Errorf("message %d: unsupported role %q: %w", i, msg.Role, deckgen.ErrInvalidRequest)
		}
	}

	return result, nil
}

// convertFromAnthropicResponse keeps the text blocks of a Claude reply.
// Non-text content (thinking, tool use) is dropped.
func convertFromAnthropicResponse(msg *anthropic.Message) *deckgen.GenerateResponse {
	blocks := make([]*deckgen.Block, 0, len(msg.Content))

	for i, content := range msg.Content {
		if content.Type != deckgen.BlockTypeText {
			continue
		}
		blocks = append(blocks, deckgen.NewTextBlock(i, content.Text, deckgen.ProviderAnthropic))
	}

	// Build response metadata with provider-specific data
	responseMetadata := make(map[string]interface{})

	if msg.ID != "" {
		responseMetadata["id"] = msg.ID
	}

	// Add stop sequence if present
	if msg.StopSequence != "" {
		responseMetadata["stop_sequence"] = msg.StopSequence
	}

	return &deckgen.GenerateResponse{
		Blocks:           blocks,
		Model:            string(msg.Model),
		InputTokens:      int(msg.Usage.InputTokens),
		OutputTokens:     int(msg.Usage.OutputTokens),
		StopReason:       string(msg.StopReason),
		ResponseMetadata: responseMetadata,
	}
}
