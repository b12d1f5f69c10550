package deck

import (
	"github.com/haowjy/meridian-deckgen"
)

// Layout of every slide, in EMU. The page is 10in x 7.5in.
var (
	pageFrame    = Frame{X: 0, Y: 0, Width: Inches(10), Height: Inches(7.5)}
	insetFrame   = Frame{X: Inches(0.2), Y: Inches(0.2), Width: Inches(9.6), Height: Inches(7.1)}
	titleFrame   = Frame{X: Inches(0.5), Y: Inches(0.3), Width: Inches(9), Height: Inches(1)}
	contentFrame = Frame{X: Inches(0.5), Y: Inches(1.5), Width: Inches(9), Height: Inches(5)}
)

// Decoration colors.
var (
	backgroundColor = deckgen.RGB{R: 220, G: 220, B: 255}
	insetColor      = deckgen.RGB{R: 200, G: 200, B: 240}
	borderColor     = deckgen.RGB{}
)

const (
	titleSizePt   = 32
	borderWidthPt = 2
	creator       = "meridian-deckgen"
)

// Compose lays out one slide per content entry. It never fails and does
// not second-guess style: whatever values it is given are carried through.
// Identical arguments yield identical decks.
func Compose(topic string, content deckgen.SlideContent, style deckgen.StyleOptions) *Deck {
	d := &Deck{
		Title:   topic,
		Creator: creator,
		Slides:  make([]Slide, 0, len(content)),
	}
	for i, lines := range content {
		d.Slides = append(d.Slides, composeSlide(deckgen.SlideTitle(i, topic), lines, style))
	}
	return d
}

func composeSlide(title string, lines deckgen.SlideLines, style deckgen.StyleOptions) Slide {
	background := backgroundColor
	inset := insetColor

	return Slide{
		Title: title,
		Shapes: []Shape{
			{Name: "background", Kind: ShapeRect, Frame: pageFrame, Fill: &background},
			{Name: "inset", Kind: ShapeRect, Frame: insetFrame, Fill: &inset},
			{Name: "border", Kind: ShapeOutline, Frame: insetFrame, Line: &Line{Color: borderColor, WidthEMU: Points(borderWidthPt)}},
			{
				Name:     "title",
				Kind:     ShapeTextBox,
				Frame:    titleFrame,
				WordWrap: true,
				Paragraphs: []Paragraph{{
					Text:  title,
					Align: AlignCenter,
					Font: Font{
						Family:    style.FontFamily,
						SizePt:    titleSizePt,
						Bold:      true,
						Underline: true,
						Color:     style.AccentColor,
					},
				}},
			},
			{
				Name:       "content",
				Kind:       ShapeTextBox,
				Frame:      contentFrame,
				WordWrap:   true,
				Paragraphs: contentParagraphs(lines, style),
			},
		},
	}
}

func contentParagraphs(lines deckgen.SlideLines, style deckgen.StyleOptions) []Paragraph {
	paragraphs := make([]Paragraph, 0, len(lines))
	for _, line := range lines {
		p := Paragraph{
			Text: line,
			Font: Font{
				Family: style.FontFamily,
				SizePt: style.FontSizePt,
				Color:  style.AccentColor,
			},
		}
		if style.UseBullets {
			level := 0
			p.Level = &level
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs
}
