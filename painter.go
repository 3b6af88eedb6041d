// Package gauge renders a circular dial as an SVG document.
//
// Geometry is given in a cartesian system where the dial is the unit
// circle around the origin with y pointing up. A Painter maps it onto a
// canvas of diameter pixels.
package gauge

import (
	"math"
	"strings"
)

const (
	baseFontToScaleRatio  = 1.0 / 3
	smallFontToBaseRatio  = 3.0 / 4
	svgNamespace          = "http://www.w3.org/2000/svg"
	defaultTextFontFamily = "'Helvetica Neue', Cambria, Arial, Roboto, sans-serif"
)

// Painter collects arcs and a central display for one rendering and
// serialises them with ToSVG. Use a new Painter for every rendering.
type Painter struct {
	scale  float64
	width  float64
	height float64

	arcs  []string
	texts []string
}

// NewPainter creates a Painter for a dial of diameter pixels. A width or
// height of 0 defaults to the diameter; a larger canvas offsets the dial
// but never stretches it.
func NewPainter(diameter, width, height float64) *Painter {
	if width <= 0 {
		width = diameter
	}
	if height <= 0 {
		height = diameter
	}
	return &Painter{
		scale:  diameter / 2,
		width:  width,
		height: height,
	}
}

// Scale is the number of pixels of one cartesian unit.
func (p *Painter) Scale() float64 {
	return p.scale
}

// DefaultArcStyle is the style every arc starts from.
func (p *Painter) DefaultArcStyle() Style {
	return Style{
		"stroke":         "#eeeeee",
		"fill":           "none",
		"stroke-linecap": "round",
		"stroke-width":   formatPixels(math.Round(p.scale/10 + 1)),
	}
}

// DefaultTextStyle is the style the central display starts from.
func (p *Painter) DefaultTextStyle() Style {
	return Style{
		"fill":         "cornflowerblue",
		"stroke-width": "0",
		"font-family":  defaultTextFontFamily,
	}
}

func (p *Painter) baseFontSize() float64 {
	return math.Round(baseFontToScaleRatio * p.scale)
}

func (p *Painter) smallFontSize() float64 {
	return math.Round(smallFontToBaseRatio * p.baseFontSize())
}

// ToSVG returns the SVG document of everything pushed so far.
func (p *Painter) ToSVG() string {
	w, h := formatPixels(p.width), formatPixels(p.height)

	var b strings.Builder
	b.WriteString(`<svg xmlns="` + svgNamespace + `" viewBox="0 0 ` + w + ` ` + h + `" width="` + w + `" height="` + h + `">`)
	for _, a := range p.arcs {
		b.WriteString(a)
	}
	for _, t := range p.texts {
		b.WriteString(t)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
