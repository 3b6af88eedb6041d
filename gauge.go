package gauge

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/vasalvit/gauge/animation"
)

// Gauge turns values into SVG according to a Config.
type Gauge struct {
	cfg   Config
	ease  animation.EasingFunc
	blend bool
	low   colorful.Color
	high  colorful.Color
}

// New validates cfg and creates a Gauge.
func New(cfg Config) (*Gauge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Gauge{cfg: cfg}
	// Validate has checked the easing name and both colours
	g.ease, _ = animation.Easing(cfg.Easing)
	if cfg.LowColor != "" {
		g.blend = true
		g.low, _ = colorful.Hex(cfg.LowColor)
		g.high, _ = colorful.Hex(cfg.HighColor)
	}
	return g, nil
}

// Config returns the config the gauge was created with.
func (g *Gauge) Config() Config {
	return g.cfg
}

// Clamp limits v to [Min, Max]. NaN stays NaN.
func (g *Gauge) Clamp(v float64) float64 {
	return math.Max(g.cfg.Min, math.Min(v, g.cfg.Max))
}

// Portion is the position of v between Min and Max, in [0, 1].
func (g *Gauge) Portion(v float64) float64 {
	return (g.Clamp(v) - g.cfg.Min) / (g.cfg.Max - g.cfg.Min)
}

// Span is the sweep of the value arc for v, in degrees.
func (g *Gauge) Span(v float64) float64 {
	return g.cfg.DialDegrees * g.Portion(v)
}

func (g *Gauge) dial() Arc {
	return Arc{
		Radius:     g.cfg.Radius,
		StartAngle: g.cfg.DialStartAngle,
		Degrees:    g.cfg.DialDegrees,
	}
}

func (g *Gauge) value(v float64) Arc {
	return Arc{
		Radius:     g.cfg.Radius,
		StartAngle: g.cfg.DialStartAngle,
		Degrees:    g.Span(v),
	}
}

// GaugeColor is the stroke of the value arc for v.
func (g *Gauge) GaugeColor(v float64) string {
	if !g.blend || math.IsNaN(v) {
		return g.cfg.GaugeColor
	}
	return g.low.BlendHcl(g.high, g.Portion(v)).Clamped().Hex()
}

func withClass(style Style, class string) Style {
	if class != "" {
		style["class"] = class
	}
	return style
}

// Render draws the dial and, unless v is NaN, the value arc and central
// display for v.
func (g *Gauge) Render(v float64) string {
	cfg := g.cfg
	p := NewPainter(cfg.Diameter, cfg.Width, cfg.Height)
	p.PushArc(g.dial(), withClass(Style{"stroke": cfg.DialColor}, cfg.DialClass))
	if !math.IsNaN(v) {
		p.PushArc(g.value(v), withClass(Style{"stroke": g.GaugeColor(v)}, cfg.GaugeClass))
		if cfg.ShowCentralDisplay {
			p.CentralDisplay(v, cfg.DecimalPlaces, cfg.DecimalPoint, cfg.Label,
				withClass(Style{"fill": cfg.ValueColor}, cfg.ValueClass))
		}
	}
	return p.ToSVG()
}

// Animate moves the gauge from `from` to `to`, clamped to the range, with
// e. onFrame gets the markup and value of every frame, onDone the clamped
// target once the last frame was drawn. A NaN from starts at Min.
//
// Animate panics if onFrame is nil.
func (g *Gauge) Animate(e *animation.Engine, from, to float64, onFrame func(svg string, v float64), onDone func(target float64)) {
	if onFrame == nil {
		panic("animation: no frame callback to redraw the animated value")
	}
	if math.IsNaN(from) {
		from = g.cfg.Min
	}
	target := g.Clamp(to)
	e.Animate(from, target, g.cfg.AnimationSeconds,
		func(v float64) {
			onFrame(g.Render(v), v)
		},
		func() {
			if onDone != nil {
				onDone(target)
			}
		},
		g.ease)
}
