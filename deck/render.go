package deck

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/haowjy/meridian-deckgen"
)

const bulletChar = "•"

// Build composes and serializes a deck in one step.
func Build(topic string, content deckgen.SlideContent, style deckgen.StyleOptions) ([]byte, error) {
	return Compose(topic, content, style).Bytes()
}

// Bytes serializes the deck as a PowerPoint 2007+ (.pptx) document.
// Failures are reported as *deckgen.BuildError.
func (d *Deck) Bytes() ([]byte, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Creator

	for i, s := range d.Slides {
		// A new presentation already holds one empty slide.
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		for _, shape := range s.Shapes {
			renderShape(slide, shape)
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, &deckgen.BuildError{Err: fmt.Errorf("create writer: %w", err)}
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, &deckgen.BuildError{Err: fmt.Errorf("write pptx: %w", err)}
	}
	return buf.Bytes(), nil
}

func renderShape(slide *ppt.Slide, shape Shape) {
	switch shape.Kind {
	case ShapeRect:
		renderRect(slide, shape.Frame, *shape.Fill)
	case ShapeOutline:
		renderOutline(slide, shape.Frame, *shape.Line)
	case ShapeTextBox:
		renderTextBox(slide, shape)
	}
}

func placed(slide *ppt.Slide, f Frame) *ppt.RichTextShape {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(f.X).SetOffsetY(f.Y)
	shape.SetWidth(f.Width).SetHeight(f.Height)
	return shape
}

func renderRect(slide *ppt.Slide, f Frame, fill deckgen.RGB) {
	shape := placed(slide, f)
	shape.SetFill(solidFill(fill))
}

// renderOutline strokes a frame with an unfilled shape, so the interior
// stays visible.
func renderOutline(slide *ppt.Slide, f Frame, line Line) {
	shape := placed(slide, f)
	shape.SetBorder(ppt.NewBorder().SetSolidFill(ppt.NewColor(line.Color.ARGB())).SetWidth(int(line.WidthEMU)))
}

// renderTextBox writes one paragraph per model paragraph. Text boxes wrap
// by default in PresentationML, so WordWrap needs no explicit setting.
func renderTextBox(slide *ppt.Slide, shape Shape) {
	box := placed(slide, shape.Frame)

	for i, para := range shape.Paragraphs {
		if i > 0 {
			box.CreateParagraph()
		}
		run := box.CreateTextRun(para.Text)
		font := run.GetFont()
		font.SetSize(para.Font.SizePt).SetBold(para.Font.Bold).SetColor(ppt.NewColor(para.Font.Color.ARGB()))
		if para.Font.Family != "" {
			font.SetName(para.Font.Family)
		}
		if para.Font.Underline {
			font.SetUnderline(ppt.UnderlineSingle)
		}

		active := box.GetActiveParagraph()
		if align := paragraphAlignment(para); align != nil {
			active.SetAlignment(align)
		}
		if para.Level != nil {
			active.SetBullet(ppt.NewBullet().SetCharBullet(bulletChar))
		}
	}
}

// paragraphAlignment returns nil when the defaults already apply.
func paragraphAlignment(p Paragraph) *ppt.Alignment {
	if p.Align != AlignCenter && (p.Level == nil || *p.Level == 0) {
		return nil
	}
	align := ppt.NewAlignment()
	if p.Align == AlignCenter {
		align.SetHorizontal(ppt.HorizontalCenter)
	}
	if p.Level != nil && *p.Level > 0 {
		align.Level = *p.Level
	}
	return align
}

func solidFill(c deckgen.RGB) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.ARGB()))
}
