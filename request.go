package deckgen

// GenerateRequest contains the parameters for an LLM generation request.
type GenerateRequest struct {
	// Messages contains the conversation history.
	// Deck generation always sends a single user turn.
	Messages []Message

	// Model is the model identifier (e.g., "gpt-3.5-turbo", "claude-haiku-4-5")
	Model string

	// Params contains request parameters (max_tokens, temperature, ...).
	// Provider adapters extract what they support from this unified struct.
	Params *RequestParams
}

// Message represents a single message in the conversation.
type Message struct {
	// Role is either "user" or "assistant"
	Role string

	// Blocks is the list of content blocks for this message
	Blocks []*Block
}

// NewPromptRequest builds a single-turn request carrying one user prompt
// and a response-size cap.
func NewPromptRequest(model, prompt string, maxTokens int) *GenerateRequest {
	return &GenerateRequest{
		Model: model,
		Messages: []Message{
			{
				Role: "user",
				Blocks: []*Block{
					{
						BlockType:   BlockTypeText,
						Sequence:    0,
						TextContent: &prompt,
					},
				},
			},
		},
		Params: &RequestParams{
			MaxTokens: &maxTokens,
		},
	}
}

// PromptText joins the text blocks of all user messages.
// Providers that take a flat prompt string use this instead of walking blocks.
func (r *GenerateRequest) PromptText() string {
	var text string
	for _, msg := range r.Messages {
		if msg.Role != "user" {
			continue
		}
		for _, block := range msg.Blocks {
			if block.BlockType == BlockTypeText && block.TextContent != nil {
				if text != "" {
					text += "\n"
				}
				text += *block.TextContent
			}
		}
	}
	return text
}
