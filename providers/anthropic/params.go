package anthropic

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/haowjy/meridian-deckgen"
)

// defaultMaxTokens applies when the request carries no cap; the Messages
// API requires one.
const defaultMaxTokens = 1024

// buildMessageParams constructs Anthropic API parameters from a GenerateRequest.
func buildMessageParams(req *deckgen.GenerateRequest) (anthropic.MessageNewParams, error) {
	messages, err := convertToAnthropicMessages(req.Messages)
	if err != nil {
		return anthropic.MessageNewParams{}, fmt.Errorf("failed to convert messages: %w", err)
	}

	// Extract params or use defaults
	params := req.Params
	if params == nil {
		params = &deckgen.RequestParams{}
	}

	apiParams := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		Messages:  messages,
		MaxTokens: int64(params.GetMaxTokens(defaultMaxTokens)),
	}

	// Temperature
	if params.Temperature != nil {
		apiParams.Temperature = anthropic.Float(*params.Temperature)
	}

	// Top-P
	if params.TopP != nil {
		apiParams.TopP = anthropic.Float(*params.TopP)
	}

	// Stop sequences
	if len(params.Stop) > 0 {
		apiParams.StopSequences = params.Stop
	}

	// System prompt
	if params.System != nil {
		apiParams.System = []anthropic.TextBlockParam{
			{
				Text: *params.System,
			},
		}
	}

	return apiParams, nil
}
