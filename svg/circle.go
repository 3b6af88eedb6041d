package svg

import (
	"fmt"
	"strconv"
)

// Circle is an SVG circle element
type Circle struct {
	ID          string `xml:"id,attr"`
	Class       string `xml:"class,attr"`
	Transform   string `xml:"transform,attr"`
	Style       string `xml:"style,attr"`
	Cx          string `xml:"cx,attr"`
	Cy          string `xml:"cy,attr"`
	Radius      string `xml:"r,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
	Fill        string `xml:"fill,attr"`

	group *Group
}

// Centre returns the centre and the radius of the circle.
func (c *Circle) Centre() (Tuple, float64, error) {
	var t Tuple
	values := []string{c.Cx, c.Cy, c.Radius}
	parsed := make([]float64, len(values))
	for i, v := range values {
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return t, 0, fmt.Errorf("circle %q: %w", c.ID, err)
		}
		parsed[i] = n
	}
	return Tuple{parsed[0], parsed[1]}, parsed[2], nil
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. A circle with unreadable attributes yields nothing.
func (c *Circle) ParseDrawingInstructions() chan *DrawingInstruction {
	instructions := make(chan *DrawingInstruction, 2)
	defer close(instructions)

	centre, r, err := c.Centre()
	if err != nil {
		return instructions
	}
	transform := elementTransform(c.group, c.Transform)
	x, y := transform.Apply(centre[0], centre[1])
	scale := ownerScale(c.group)
	instructions <- &DrawingInstruction{
		Kind:   CircleInstruction,
		M:      &Tuple{x, y},
		Radius: &Tuple{r * scale, r * scale},
	}
	instructions <- paint(c.Style, c.Stroke, c.StrokeWidth, c.Fill, scale)
	return instructions
}
