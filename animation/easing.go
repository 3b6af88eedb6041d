package animation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// EasingFunc maps the elapsed fraction of an animation, in [0, 1], to the
// fraction of the distance covered, also in [0, 1].
type EasingFunc func(t float64) float64

// ErrUnknownEasing is returned by Easing for names not in the catalogue.
var ErrUnknownEasing = errors.New("unknown easing")

// AcceleratedMotion starts slow, is fastest half way and slows down again
// towards the end.
func AcceleratedMotion(t float64) float64 {
	return accelerated(0.5, t)
}

// Accelerated returns an accelerated motion curve that reaches its maximum
// speed at peak. Peaks outside (0, 1) fall back to 0.5.
func Accelerated(peak float64) EasingFunc {
	if !(peak > 0 && peak < 1) {
		peak = 0.5
	}
	return func(t float64) float64 {
		return accelerated(peak, t)
	}
}

func accelerated(peak, t float64) float64 {
	if t <= peak {
		return t * t / peak
	}
	return 1 - (1-t)*(1-t)/(1-peak)
}

// Only curves that stay inside [0, 1] belong here. Elastic and back
// curves overshoot the target.
var easings = map[string]EasingFunc{
	"accelerated":  AcceleratedMotion,
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
}

// Easing looks up an easing curve by name. The empty name selects
// AcceleratedMotion.
func Easing(name string) (EasingFunc, error) {
	if name == "" {
		return AcceleratedMotion, nil
	}
	f, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return f, nil
}

// EasingNames lists the catalogue in alphabetical order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
