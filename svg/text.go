package svg

import (
	"strconv"
	"strings"
)

// TSpan is a differently styled run inside a Text element
type TSpan struct {
	Style   string `xml:"style,attr"`
	Content string `xml:",chardata"`
}

// Text is an SVG text element
type Text struct {
	ID         string  `xml:"id,attr"`
	Class      string  `xml:"class,attr"`
	Transform  string  `xml:"transform,attr"`
	Style      string  `xml:"style,attr"`
	X          string  `xml:"x,attr"`
	Y          string  `xml:"y,attr"`
	TextAnchor string  `xml:"text-anchor,attr"`
	FontSize   string  `xml:"font-size,attr"`
	Fill       string  `xml:"fill,attr"`
	Content    string  `xml:",chardata"`
	Spans      []TSpan `xml:"tspan"`

	group *Group
}

// String returns the text as displayed, spans included.
func (t *Text) String() string {
	var b strings.Builder
	b.WriteString(t.Content)
	for _, s := range t.Spans {
		b.WriteString(s.Content)
	}
	return b.String()
}

// FontSizes returns the font size of every span, read from their style.
func (t *Text) FontSizes() []float64 {
	sizes := make([]float64, 0, len(t.Spans))
	for _, s := range t.Spans {
		if v, ok := parseLength(splitStyle(s.Style)["font-size"]); ok {
			sizes = append(sizes, v)
		}
	}
	return sizes
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface
func (t *Text) ParseDrawingInstructions() chan *DrawingInstruction {
	instructions := make(chan *DrawingInstruction, 2)
	defer close(instructions)

	x, _ := strconv.ParseFloat(t.X, 64)
	y, _ := strconv.ParseFloat(t.Y, 64)
	transform := elementTransform(t.group, t.Transform)
	x, y = transform.Apply(x, y)
	instructions <- &DrawingInstruction{
		Kind: TextInstruction,
		M:    &Tuple{x, y},
		Text: t.String(),
	}
	instructions <- paint(t.Style, "", "0", t.Fill, ownerScale(t.group))
	return instructions
}
