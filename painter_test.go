package gauge

import (
	"encoding/xml"
	"math"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartesianToSVG(t *testing.T) {
	is := is.New(t)
	p := NewPainter(100, 0, 0)

	is.Equal(p.CartesianToSVG(Tuple{0, 0}), Tuple{50, 50})
	is.Equal(p.CartesianToSVG(Tuple{1, 0}), Tuple{100, 50})
	is.Equal(p.CartesianToSVG(Tuple{0, 1}), Tuple{50, 0})
	is.Equal(p.CartesianToSVG(Tuple{-1, -1}), Tuple{0, 100})
}

func TestCanvasSize(t *testing.T) {
	svg := NewPainter(100, 0, 0).ToSVG()
	require.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100"></svg>`, svg)

	// a wider canvas keeps the dial scale
	p := NewPainter(100, 300, 120)
	require.Equal(t, 50.0, p.Scale())
	require.Contains(t, p.ToSVG(), `viewBox="0 0 300 120" width="300" height="120"`)
}

func TestPushArc(t *testing.T) {
	tests := []struct {
		Description string
		Arc         Arc
		Want        string
	}{
		{
			"full circle",
			Arc{Radius: 1, StartAngle: 0, Degrees: 360},
			`<circle cx="50.00" cy="50.00" r="50.00" fill="none" stroke="#eeeeee" stroke-linecap="round" stroke-width="6" />`,
		},
		{
			"more than a full circle",
			Arc{Radius: 0.5, StartAngle: 10, Degrees: -400, ID: "ring"},
			`<circle id="ring" cx="50.00" cy="50.00" r="25.00" fill="none" stroke="#eeeeee" stroke-linecap="round" stroke-width="6" />`,
		},
		{
			"large clockwise dial",
			Arc{Radius: 0.9, StartAngle: 225, Degrees: -270},
			`<path d="M 18.18 81.82 A 45.00 45.00 0 1 1 81.82 81.82" fill="none" stroke="#eeeeee" stroke-linecap="round" stroke-width="6" />`,
		},
		{
			"small counter clockwise arc",
			Arc{Radius: 1, StartAngle: 0, Degrees: 90},
			`<path d="M 100.00 50.00 A 50.00 50.00 0 0 0 50.00 0.00" fill="none" stroke="#eeeeee" stroke-linecap="round" stroke-width="6" />`,
		},
		{
			"half circle is not large",
			Arc{Radius: 1, StartAngle: 180, Degrees: -180},
			`<path d="M 0.00 50.00 A 50.00 50.00 0 0 1 100.00 50.00" fill="none" stroke="#eeeeee" stroke-linecap="round" stroke-width="6" />`,
		},
		{
			"slice",
			Arc{Radius: 1, StartAngle: 0, Degrees: 90, Slice: true, ID: "q1"},
			`<path id="q1" d="M 100.00 50.00 A 50.00 50.00 0 0 0 50.00 0.00 L 50.00 50.00 z" fill="none" stroke="#eeeeee" stroke-linecap="round" stroke-width="6" />`,
		},
		{
			"zero radius",
			Arc{Radius: 0, StartAngle: 30, Degrees: 120},
			`<path d="M 50.00 50.00 A 0.00 0.00 0 0 0 50.00 50.00" fill="none" stroke="#eeeeee" stroke-linecap="round" stroke-width="6" />`,
		},
		{
			"zero sweep",
			Arc{Radius: 1, StartAngle: 0, Degrees: 0},
			`<path d="M 100.00 50.00 A 50.00 50.00 0 0 0 100.00 50.00" fill="none" stroke="#eeeeee" stroke-linecap="round" stroke-width="6" />`,
		},
		{
			"unbounded angles",
			Arc{Radius: 1, StartAngle: 720, Degrees: -90},
			`<path d="M 100.00 50.00 A 50.00 50.00 0 0 1 50.00 100.00" fill="none" stroke="#eeeeee" stroke-linecap="round" stroke-width="6" />`,
		},
	}

	for _, test := range tests {
		p := NewPainter(100, 0, 0)
		p.PushArc(test.Arc)
		svg := p.ToSVG()
		require.True(t, strings.HasPrefix(svg, "<svg "), test.Description)
		assert.Contains(t, svg, test.Want, test.Description)
	}
}

func TestPushArcFlags(t *testing.T) {
	p := NewPainter(100, 0, 0)
	p.PushArc(Arc{Radius: 0.9, StartAngle: 225, Degrees: -270})
	svg := p.ToSVG()
	require.Contains(t, svg, " A 45.00 45.00 0 1 1 ")
	require.NotContains(t, svg, "<circle")
}

func TestPushArcStyleOverrides(t *testing.T) {
	p := NewPainter(200, 0, 0)
	p.PushArc(Arc{Radius: 1, Degrees: 360}, Style{"stroke": "red"}, nil, Style{"class": "dial", "stroke-width": "3"})
	svg := p.ToSVG()

	require.Contains(t, svg, `class="dial" fill="none" stroke="red" stroke-linecap="round" stroke-width="3" />`)
}

func TestArcsKeepPushOrder(t *testing.T) {
	p := NewPainter(100, 0, 0)
	p.PushArc(Arc{Radius: 1, Degrees: 360, ID: "first"})
	p.PushArc(Arc{Radius: 1, Degrees: 90, ID: "second"})
	svg := p.ToSVG()

	require.Less(t, strings.Index(svg, `id="first"`), strings.Index(svg, `id="second"`))
}

func TestDefaultStrokeWidthFollowsScale(t *testing.T) {
	require.Equal(t, "6", NewPainter(100, 0, 0).DefaultArcStyle()["stroke-width"])
	require.Equal(t, "11", NewPainter(200, 0, 0).DefaultArcStyle()["stroke-width"])
	require.Equal(t, "2", NewPainter(10, 0, 0).DefaultArcStyle()["stroke-width"])
}

func TestCentralDisplay(t *testing.T) {
	p := NewPainter(100, 0, 0)
	p.CentralDisplay(42.5, 1, ".", "")
	svg := p.ToSVG()

	require.Contains(t, svg, `<text x="50.00" y="50.00" text-anchor="middle" `)
	require.Contains(t, svg, `<tspan style="font-size:17">42</tspan><tspan style="font-size:13">.5</tspan></text>`)
	require.Equal(t, 1, strings.Count(svg, "<text"))
}

func TestCentralDisplayWithoutDecimals(t *testing.T) {
	p := NewPainter(100, 0, 0)
	p.CentralDisplay(42.5, 0, ".", "")
	svg := p.ToSVG()

	require.Contains(t, svg, `<tspan style="font-size:17">42</tspan></text>`)
	require.Equal(t, 1, strings.Count(svg, "<tspan"))
}

func TestCentralDisplayDecimalPoint(t *testing.T) {
	p := NewPainter(100, 0, 0)
	p.CentralDisplay(-3.14159, 2, ",", "km/h")
	svg := p.ToSVG()

	require.Contains(t, svg, `>-3</tspan><tspan style="font-size:13">,14</tspan>`)
	require.Contains(t, svg, `<text x="50.00" y="63.00" text-anchor="middle" font-size="13" `)
	require.Contains(t, svg, `>km/h</text>`)
	require.Less(t, strings.Index(svg, "-3"), strings.Index(svg, "km/h"))
}

func TestCentralDisplayReplacesText(t *testing.T) {
	p := NewPainter(100, 0, 0)
	p.CentralDisplay(1, 0, "", "first")
	p.CentralDisplay(2, 0, "", "")
	svg := p.ToSVG()

	require.NotContains(t, svg, "first")
	require.Equal(t, 1, strings.Count(svg, "<text"))

	p.CentralDisplay(math.NaN(), 0, "", "label")
	require.NotContains(t, p.ToSVG(), "<text")

	p.CentralDisplay(math.Inf(1), 0, "", "")
	require.NotContains(t, p.ToSVG(), "<text")
}

func TestCentralDisplayEscapesLabel(t *testing.T) {
	p := NewPainter(100, 0, 0)
	p.CentralDisplay(1, 0, "", "<b>&")
	require.Contains(t, p.ToSVG(), "&lt;b&gt;&amp;</text>")
}

func TestToSVGIsIdempotent(t *testing.T) {
	p := NewPainter(100, 0, 0)
	p.PushArc(Arc{Radius: 0.9, StartAngle: 225, Degrees: -270})
	p.PushArc(Arc{Radius: 0.9, StartAngle: 225, Degrees: -135}, Style{"stroke": "blue"})
	p.CentralDisplay(50, 0, ".", "speed")

	first := p.ToSVG()
	require.Equal(t, first, p.ToSVG())
}

func TestFontFamilyKeepsMultiWordNames(t *testing.T) {
	p := NewPainter(100, 0, 0)
	p.CentralDisplay(1, 0, ".", "")

	var doc struct {
		Text struct {
			FontFamily string `xml:"font-family,attr"`
		} `xml:"text"`
	}
	require.NoError(t, xml.Unmarshal([]byte(p.ToSVG()), &doc))
	require.Equal(t, "'Helvetica Neue', Cambria, Arial, Roboto, sans-serif", doc.Text.FontFamily)
}
