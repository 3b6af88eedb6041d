package gauge

import (
	"math"
	"strings"
)

// Arc describes a section of a circle around the origin.
type Arc struct {
	// Radius as a fraction of the dial radius.
	Radius float64
	// StartAngle in degrees, counter clockwise from the positive x axis.
	StartAngle float64
	// Degrees is the signed sweep; negative sweeps run clockwise.
	Degrees float64
	// Slice closes the arc through the origin into a pie slice.
	Slice bool
	ID    string
}

// PushArc adds an arc on top of those pushed before. The styles are
// merged over DefaultArcStyle.
func (p *Painter) PushArc(arc Arc, styles ...Style) {
	style := MergeStyles(append([]Style{p.DefaultArcStyle()}, styles...)...)
	if math.Abs(arc.Degrees) >= 360 {
		p.arcs = append(p.arcs, p.circleElement(arc, style))
		return
	}
	p.arcs = append(p.arcs, p.pathElement(arc, style))
}

// circleElement avoids an arc whose start and end points coincide, which
// SVG renderers skip.
func (p *Painter) circleElement(arc Arc, style Style) string {
	centre := p.CartesianToSVG(Tuple{0, 0})
	var b strings.Builder
	b.WriteString("<circle ")
	writeID(&b, arc.ID)
	b.WriteString(`cx="` + formatCoordinate(centre[0]) + `" cy="` + formatCoordinate(centre[1]) + `" `)
	b.WriteString(`r="` + formatCoordinate(arc.Radius*p.scale) + `" `)
	writeStyle(&b, style)
	b.WriteString("/>")
	return b.String()
}

func (p *Painter) pathElement(arc Arc, style Style) string {
	var b strings.Builder
	b.WriteString("<path ")
	writeID(&b, arc.ID)
	b.WriteString(`d="` + p.moveTo(arc) + " " + p.arcTo(arc))
	if arc.Slice {
		b.WriteString(" " + p.lineToCentre() + " z")
	}
	b.WriteString(`" `)
	writeStyle(&b, style)
	b.WriteString("/>")
	return b.String()
}

func (p *Painter) moveTo(arc Arc) string {
	start := p.CartesianToSVG(polar(arc.Radius, arc.StartAngle))
	return "M " + formatTuple(start)
}

func (p *Painter) arcTo(arc Arc) string {
	r := formatCoordinate(arc.Radius * p.scale)
	large := "0"
	if math.Abs(arc.Degrees) > 180 {
		large = "1"
	}
	sweep := "0"
	if arc.Degrees < 0 {
		sweep = "1"
	}
	end := p.CartesianToSVG(polar(arc.Radius, arc.StartAngle+arc.Degrees))
	return "A " + r + " " + r + " 0 " + large + " " + sweep + " " + formatTuple(end)
}

func (p *Painter) lineToCentre() string {
	return "L " + formatTuple(p.CartesianToSVG(Tuple{0, 0}))
}

func writeID(b *strings.Builder, id string) {
	if id != "" {
		b.WriteString(`id="` + escape(id) + `" `)
	}
}

func writeStyle(b *strings.Builder, style Style) {
	if attrs := style.Attributes(); attrs != "" {
		b.WriteString(attrs + " ")
	}
}
