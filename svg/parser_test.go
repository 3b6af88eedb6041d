package svg

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/vasalvit/gauge"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">
<title>speed</title>
<circle id="ring" cx="50.00" cy="50.00" r="45.00" stroke="#eeeeee" stroke-width="6" fill="none" />
<desc>ignored</desc>
<g id="needle" transform="translate(10, 5)">
<path d="M 0 0 L 10 0" stroke="red"/>
</g>
<text x="50.00" y="50.00" text-anchor="middle" fill="cornflowerblue"><tspan style="font-size:17">42</tspan><tspan style="font-size:13">.5</tspan></text>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg, "test", 0)
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(svg.Title, "speed")
	is.Equal(svg.ViewBox, "0 0 100 100")
	is.Equal(svg.Width, "100")
	is.Equal(len(svg.Elements), 2)
	is.Equal(len(svg.Groups), 1)
	is.Equal(svg.Groups[0].ID, "needle")

	text, ok := svg.Elements[1].(*Text)
	is.True(ok)
	is.Equal(text.String(), "42.5")
	is.Equal(text.FontSizes(), []float64{17, 13})

	svg, err = ParseSvgFromReader(strings.NewReader(testSvg), "test", 0)
	is.NoErr(err)
	is.NotNil(svg)
}

func TestParseRejectsBrokenMarkup(t *testing.T) {
	is := is.New(t)

	_, err := ParseSvg(`<svg><path d="M 0 0"></svg>`, "broken", 0)
	is.Err(err)
}

func TestParseGaugeMarkup(t *testing.T) {
	is := is.New(t)

	cfg := gauge.DefaultConfig()
	cfg.Label = "km/h"
	g, err := gauge.New(cfg)
	is.NoErr(err)

	svg, err := ParseSvg(g.Render(50), "gauge", 0)
	is.NoErr(err)
	is.Equal(len(svg.Elements), 4)

	dial, ok := svg.Elements[0].(*Path)
	is.True(ok)
	is.Equal(dial.Class, "gaugeDial")
	is.Equal(dial.Stroke, "lightgrey")

	value, ok := svg.Elements[1].(*Path)
	is.True(ok)
	is.Equal(value.Class, "gaugeValue")

	number, ok := svg.Elements[2].(*Text)
	is.True(ok)
	is.Equal(number.String(), "50")

	label, ok := svg.Elements[3].(*Text)
	is.True(ok)
	is.Equal(label.String(), "km/h")
	is.Equal(label.FontSize, "13")
}
