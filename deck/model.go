// Package deck builds PowerPoint decks from generated slide content.
//
// Building happens in two steps: Compose lays the content out as a plain
// value (Deck) with no rendering library involved, and Bytes serializes
// that value to .pptx. Tests inspect the Deck; only Bytes touches GoPPT.
package deck

import (
	"math"

	"github.com/haowjy/meridian-deckgen"
)

// EMU (English Metric Units) are the native PresentationML unit.
const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700
)

// Inches converts inches to EMU, rounding to the nearest unit.
func Inches(in float64) int64 {
	return int64(math.Round(in * EMUPerInch))
}

// Points converts points to EMU, rounding to the nearest unit.
func Points(pt float64) int64 {
	return int64(math.Round(pt * EMUPerPoint))
}

// Deck is the declarative model of a presentation.
type Deck struct {
	Title   string
	Creator string
	Slides  []Slide
}

// Slide is one rendered slide. Shapes are listed back to front.
type Slide struct {
	Title  string
	Shapes []Shape
}

// ShapeKind distinguishes decoration from text.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeOutline
	ShapeTextBox
)

// Frame is a shape's position and size in EMU.
type Frame struct {
	X, Y, Width, Height int64
}

// Shape is a rectangle, an outline or a text box.
type Shape struct {
	Name  string
	Kind  ShapeKind
	Frame Frame

	// Fill is set for ShapeRect.
	Fill *deckgen.RGB

	// Line is set for ShapeOutline. Outlines have no fill.
	Line *Line

	// WordWrap and Paragraphs are used by ShapeTextBox.
	WordWrap   bool
	Paragraphs []Paragraph
}

// Line is an outline stroke.
type Line struct {
	Color    deckgen.RGB
	WidthEMU int64
}

// Alignment is a paragraph's horizontal alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Paragraph is a single run of text with uniform formatting.
type Paragraph struct {
	Text  string
	Font  Font
	Align Alignment

	// Level is the outline level. Nil means the paragraph is not a list item.
	Level *int
}

// Font describes how a paragraph's text is drawn.
type Font struct {
	Family    string
	SizePt    int
	Bold      bool
	Underline bool
	Color     deckgen.RGB
}

// TextBoxes returns the slide's text boxes in order.
func (s Slide) TextBoxes() []Shape {
	var boxes []Shape
	for _, shape := range s.Shapes {
		if shape.Kind == ShapeTextBox {
			boxes = append(boxes, shape)
		}
	}
	return boxes
}
