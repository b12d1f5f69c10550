package deckgen

// GenerateResponse contains the LLM provider's response.
type GenerateResponse struct {
	// Blocks is the list of content blocks returned by the provider
	Blocks []*Block

	// Model is the model that was used (may differ from request if aliased)
	Model string

	// InputTokens is the number of tokens in the input
	InputTokens int

	// OutputTokens is the number of tokens in the output
	OutputTokens int

	// StopReason indicates why generation stopped (e.g., "end_turn", "max_tokens")
	StopReason string

	// ResponseMetadata contains provider-specific response data
	ResponseMetadata map[string]interface{}
}

// FirstText returns the text of the first text block, or "" when the
// response carries no text. Only the first choice is ever consulted.
func (r *GenerateResponse) FirstText() string {
	if r == nil {
		return ""
	}
	for _, block := range r.Blocks {
		if block.BlockType == BlockTypeText && block.TextContent != nil {
			return *block.TextContent
		}
	}
	return ""
}
