package gauge

import (
	"math"
	"strconv"
	"strings"
)

// CentralDisplay shows value in the middle of the dial, replacing what a
// previous call showed. Decimals are printed in a smaller font after
// decimalPoint ("." if empty). A non empty label goes below the value.
// NaN and infinite values show nothing.
func (p *Painter) CentralDisplay(value float64, decimalPlaces int, decimalPoint, label string, styles ...Style) {
	p.texts = nil
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}
	if decimalPoint == "" {
		decimalPoint = "."
	}
	style := MergeStyles(append([]Style{p.DefaultTextStyle()}, styles...)...)

	p.texts = append(p.texts, p.valueText(value, decimalPlaces, decimalPoint, style))
	if label != "" {
		p.texts = append(p.texts, p.labelText(label, style))
	}
}

// splitValue formats value with decimalPlaces decimals and returns the
// integral and fractional digits.
func splitValue(value float64, decimalPlaces int) (integral, fraction string) {
	formatted := strconv.FormatFloat(value, 'f', decimalPlaces, 64)
	if i := strings.IndexByte(formatted, '.'); i >= 0 {
		return formatted[:i], formatted[i+1:]
	}
	return formatted, ""
}

func (p *Painter) valueText(value float64, decimalPlaces int, decimalPoint string, style Style) string {
	centre := p.CartesianToSVG(Tuple{0, 0})
	integral, fraction := splitValue(value, decimalPlaces)

	var b strings.Builder
	b.WriteString(`<text x="` + formatCoordinate(centre[0]) + `" y="` + formatCoordinate(centre[1]) + `" text-anchor="middle" `)
	writeStyle(&b, style)
	b.WriteString(">")
	b.WriteString(`<tspan style="font-size:` + formatPixels(p.baseFontSize()) + `">` + escape(integral) + `</tspan>`)
	if decimalPlaces > 0 {
		b.WriteString(`<tspan style="font-size:` + formatPixels(p.smallFontSize()) + `">` + escape(decimalPoint+fraction) + `</tspan>`)
	}
	b.WriteString("</text>")
	return b.String()
}

func (p *Painter) labelText(label string, style Style) string {
	centre := p.CartesianToSVG(Tuple{0, 0})
	small := p.smallFontSize()

	var b strings.Builder
	b.WriteString(`<text x="` + formatCoordinate(centre[0]) + `" y="` + formatCoordinate(centre[1]+small) + `" text-anchor="middle" `)
	b.WriteString(`font-size="` + formatPixels(small) + `" `)
	writeStyle(&b, style)
	b.WriteString(">" + escape(label) + "</text>")
	return b.String()
}
