package gauge

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
)

// Coordinates are printed with this many decimals.
const precision = 2

// Tuple is an X,Y coordinate
type Tuple [2]float64

// CartesianToSVG maps a point of the unit circle system (origin at the
// centre of the dial, y up) to SVG pixels.
func (p *Painter) CartesianToSVG(c Tuple) Tuple {
	return Tuple{
		p.scale + c[0]*p.scale,
		p.scale - c[1]*p.scale,
	}
}

// polar returns the cartesian point at angle degrees on a circle of the
// given radius.
func polar(radius, degrees float64) Tuple {
	rad := degrees * math.Pi / 180
	return Tuple{math.Cos(rad) * radius, math.Sin(rad) * radius}
}

func formatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

func formatTuple(t Tuple) string {
	return formatCoordinate(t[0]) + " " + formatCoordinate(t[1])
}

func formatPixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var b bytes.Buffer
	// writes to a bytes.Buffer do not fail
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
