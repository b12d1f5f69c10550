package deckgen

import "strings"

// SlideLines is the ordered text of one slide.
type SlideLines []string

// SlideContent is the ordered text of a whole deck. Position encodes role:
// index 0 is the introduction, index 1 the index of topics, the rest are
// subtopics.
type SlideContent []SlideLines

// SlideRole identifies what a slide position is for.
type SlideRole int

const (
	RoleIntroduction SlideRole = iota
	RoleIndex
	RoleSubtopic
)

func (r SlideRole) String() string {
	switch r {
	case RoleIntroduction:
		return "introduction"
	case RoleIndex:
		return "index"
	default:
		return "subtopic"
	}
}

// Fixed titles for the two leading slides.
const (
	IntroductionTitle = "Introduction"
	IndexTitle        = "Index of Topics"
)

// RoleAt returns the role of the slide at position i.
func RoleAt(i int) SlideRole {
	switch i {
	case 0:
		return RoleIntroduction
	case 1:
		return RoleIndex
	default:
		return RoleSubtopic
	}
}

// SlideTitle returns the title for position i. Subtopic slides reuse the
// topic verbatim.
func SlideTitle(i int, topic string) string {
	switch RoleAt(i) {
	case RoleIntroduction:
		return IntroductionTitle
	case RoleIndex:
		return IndexTitle
	default:
		return topic
	}
}

// splitLines trims the response and splits it on newlines. Blank lines in
// the middle are kept; an empty response yields a single empty line.
func splitLines(text string) SlideLines {
	return strings.Split(strings.TrimSpace(text), "\n")
}

// truncateLines keeps at most n lines.
func truncateLines(lines SlideLines, n int) SlideLines {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
