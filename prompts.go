package deckgen

import "fmt"

// Response-size caps per completion, in tokens.
const (
	IntroductionMaxTokens = 1000
	IndexMaxTokens        = 100
	SubtopicMaxTokens     = 150
)

func introductionPrompt(topic string) string {
	return fmt.Sprintf("Write a brief introduction for a presentation on %s.", topic)
}

func indexPrompt(topic string) string {
	return fmt.Sprintf("List the main sections or subtopics for a presentation on %s.", topic)
}

// subtopicPrompt numbers slides from 1.
func subtopicPrompt(topic string, slide, bulletCount int) string {
	return fmt.Sprintf("Generate up to %d bullet points for slide %d of a presentation about %s.", bulletCount, slide, topic)
}
