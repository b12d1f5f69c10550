package deckgen

// Block type constants
const (
	BlockTypeText = "text"
)

// Block represents a content block in a request or response.
// Deck generation only exchanges text, so every block is a text block;
// the type field is kept so providers can skip anything else they receive.
type Block struct {
	// BlockType indicates the type of block
	BlockType string `json:"block_type"`

	// Sequence indicates the position of this block in the turn (0-indexed)
	Sequence int `json:"sequence"`

	// TextContent contains the text for text blocks
	TextContent *string `json:"text_content,omitempty"`

	// Provider identifies which LLM provider generated this block
	Provider *string `json:"provider,omitempty"`
}

// NewTextBlock returns a text block at the given position.
func NewTextBlock(sequence int, text string, provider ProviderID) *Block {
	block := &Block{
		BlockType:   BlockTypeText,
		Sequence:    sequence,
		TextContent: &text,
	}
	if provider != "" {
		name := provider.String()
		block.Provider = &name
	}
	return block
}

// IsFromProvider returns true if this block was created by the specified provider
func (b *Block) IsFromProvider(provider ProviderID) bool {
	return b.Provider != nil && *b.Provider == provider.String()
}
